package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/safetravel/internal/models"
)

// ReportLog - долговременный журнал сообщений об инцидентах, в который можно только дописывать
type ReportLog interface {
	// Load читает все записи журнала. Битые записи пропускаются и учитываются в Skipped.
	Load(ctx context.Context) (LoadResult, error)
	// Append дописывает одну запись и возвращает управление только после сброса данных на диск.
	Append(ctx context.Context, incident models.Incident) error
}

var (
	_ ReportLog = (*FileReportLog)(nil)
	_ ReportLog = (*PostgresReportLog)(nil)
	_ ReportLog = (*SQLiteReportLog)(nil)
)

// LoadResult - результат чтения журнала
type LoadResult struct {
	Incidents []models.Incident
	Skipped   int
}

// Форматы времени, которые понимает загрузчик. Первый используется при записи.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for i, layout := range timestampLayouts {
		var (
			t   time.Time
			err error
		)
		if i == 0 {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad timestamp %q", models.ErrMalformedRecord, s)
}

// validateRecord проверяет обязательные поля записи журнала
func validateRecord(inc models.Incident) error {
	if strings.TrimSpace(inc.ID) == "" {
		return fmt.Errorf("%w: empty id", models.ErrMalformedRecord)
	}
	if strings.TrimSpace(inc.Category) == "" {
		return fmt.Errorf("%w: empty category", models.ErrMalformedRecord)
	}
	if inc.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing timestamp", models.ErrMalformedRecord)
	}
	if err := inc.Location().Validate(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedRecord, err)
	}
	return nil
}
