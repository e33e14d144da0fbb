package models

import (
	"fmt"
	"strings"
	"time"
)

// Severity - уровень опасности инцидента
type Severity string

const (
	SeverityNone   Severity = ""
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// ParseSeverity разбирает уровень опасности без учета регистра; пустая строка означает отсутствие уровня
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(strings.ToUpper(strings.TrimSpace(s))); sev {
	case SeverityNone, SeverityLow, SeverityMedium, SeverityHigh:
		return sev, nil
	}
	return SeverityNone, fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
}

// Source - происхождение записи
type Source string

const (
	SourceMock      Source = "mock"
	SourceCommunity Source = "community"
)

// ParseSource разбирает источник; пустая строка означает "любой"
func ParseSource(s string) (Source, error) {
	switch src := Source(strings.ToLower(strings.TrimSpace(s))); src {
	case "", SourceMock, SourceCommunity:
		return src, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSource, s)
}

// Incident - запись о происшествии (сгенерированная или присланная пользователем)
type Incident struct {
	ID          string    `json:"id"`
	User        string    `json:"user,omitempty"`
	Category    string    `json:"category"`
	Area        string    `json:"area"`
	Severity    Severity  `json:"severity,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Verified    bool      `json:"verified"`
	Source      Source    `json:"source"`
	ReportCount int       `json:"report_count,omitempty"`
	Urgency     int       `json:"urgency,omitempty"`
}

// Location возвращает координаты инцидента
func (i Incident) Location() Point {
	return Point{Lat: i.Latitude, Lon: i.Longitude}
}
