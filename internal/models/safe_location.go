package models

import (
	"fmt"
	"strings"
)

// SafeLocationKind - тип безопасного места
type SafeLocationKind string

const (
	KindPolice    SafeLocationKind = "police"
	KindPinkBooth SafeLocationKind = "pink_booth"
	KindSafeZone  SafeLocationKind = "safe_zone"
)

// ParseSafeLocationKind разбирает тип безопасного места; пустая строка означает "любой"
func ParseSafeLocationKind(s string) (SafeLocationKind, error) {
	switch k := SafeLocationKind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindPolice, KindPinkBooth, KindSafeZone:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// SafeLocation представляет статичную точку помощи (участок полиции, пост, безопасная зона)
type SafeLocation struct {
	Name      string           `json:"name"`
	Kind      SafeLocationKind `json:"kind"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
}

func (s SafeLocation) Location() Point {
	return Point{Lat: s.Latitude, Lon: s.Longitude}
}
