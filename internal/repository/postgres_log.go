package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safetravel/internal/models"
	"github.com/sirupsen/logrus"
)

// PostgresReportLog хранит журнал сообщений в таблице incident_reports
type PostgresReportLog struct {
	db     *pgxpool.Pool
	logger *logrus.Logger
}

func NewPostgresReportLog(db *pgxpool.Pool, logger *logrus.Logger) *PostgresReportLog {
	return &PostgresReportLog{
		db:     db,
		logger: logger,
	}
}

// Append сохраняет сообщение; повторная вставка того же id игнорируется
func (r *PostgresReportLog) Append(ctx context.Context, incident models.Incident) error {
	query := `
		INSERT INTO incident_reports (id, user_name, category, area, description, created_at, verified, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING;
	`
	_, err := r.db.Exec(ctx, query,
		incident.ID,
		incident.User,
		incident.Category,
		incident.Area,
		incident.Description,
		incident.CreatedAt,
		incident.Verified,
		incident.Latitude,
		incident.Longitude,
	)
	if err != nil {
		return fmt.Errorf("failed to insert incident report: %w", err)
	}
	return nil
}

// Load возвращает сообщения в порядке записи
func (r *PostgresReportLog) Load(ctx context.Context) (LoadResult, error) {
	query := `
		SELECT
			id,
			user_name,
			category,
			area,
			description,
			created_at,
			verified,
			latitude,
			longitude
		FROM incident_reports
		ORDER BY seq;
	`
	var res LoadResult
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return res, fmt.Errorf("failed to load incident reports: %w", err)
	}
	defer rows.Close()

	log := r.logger.WithFields(logrus.Fields{
		"repository": "report_log",
		"method":     "Load",
		"driver":     "postgres",
	})

	for rows.Next() {
		// Nullable-поля сканируем в указатели, чтобы пустые значения не прерывали чтение
		var (
			id, user, category, area, description *string
			createdAt                             *time.Time
			verified                              *bool
			lat, lon                              *float64
		)
		if err := rows.Scan(&id, &user, &category, &area, &description, &createdAt, &verified, &lat, &lon); err != nil {
			return res, fmt.Errorf("failed to scan incident report row: %w", err)
		}

		incident, err := nullableRecord(id, user, category, area, description, createdAt, verified, lat, lon)
		if err != nil {
			log.WithError(err).Warn("Skipping malformed incident report row")
			res.Skipped++
			continue
		}
		res.Incidents = append(res.Incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return res, fmt.Errorf("error incident report iteration: %w", err)
	}
	return res, nil
}

// nullableRecord собирает инцидент из nullable-колонок SQL журнала
func nullableRecord(id, user, category, area, description *string, createdAt *time.Time, verified *bool, lat, lon *float64) (models.Incident, error) {
	if lat == nil || lon == nil {
		return models.Incident{}, fmt.Errorf("%w: missing coordinates", models.ErrMalformedRecord)
	}
	incident := models.Incident{
		ID:          deref(id),
		User:        deref(user),
		Category:    deref(category),
		Area:        deref(area),
		Description: deref(description),
		Verified:    verified != nil && *verified,
		Latitude:    *lat,
		Longitude:   *lon,
		Source:      models.SourceCommunity,
	}
	if createdAt != nil {
		incident.CreatedAt = *createdAt
	}
	if err := validateRecord(incident); err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
