package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSafeLocationKind(t *testing.T) {
	cases := map[string]SafeLocationKind{
		"":            "",
		"police":      KindPolice,
		" POLICE ":    KindPolice,
		"Pink_Booth":  KindPinkBooth,
		"\tsafe_zone": KindSafeZone,
		"SAFE_ZONE\n": KindSafeZone,
	}
	for in, want := range cases {
		got, err := ParseSafeLocationKind(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseSafeLocationKind("hospital")
	assert.ErrorIs(t, err, ErrInvalidKind)
}
