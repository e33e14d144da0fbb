package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/safetravel/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url, secret string, retries int) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: retries,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWorker(nil, logger, cfg)
}

func TestDeliver_SignsPayload(t *testing.T) {
	const payload = `{"user_id":"user-1"}`
	var gotSignature, gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "s3cret", 3)

	ok := w.deliver(context.Background(), AlertEvent{UserID: "user-1"}, payload)

	require.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "", 3)

	ok := w.deliver(context.Background(), AlertEvent{UserID: "user-2"}, `{}`)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "", 2)

	ok := w.deliver(context.Background(), AlertEvent{UserID: "user-3"}, `{}`)

	assert.False(t, ok)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_SkipsWithoutURL(t *testing.T) {
	w := newTestWorker("", "", 3)
	assert.False(t, w.deliver(context.Background(), AlertEvent{}, `{}`))
}

func TestGenerateHMACSHA256(t *testing.T) {
	// RFC 4231, test case 2
	got := generateHMACSHA256("what do ya want for nothing?", "Jefe")
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}
