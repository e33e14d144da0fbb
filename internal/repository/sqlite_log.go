package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shenikar/safetravel/internal/models"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS incident_reports (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT NOT NULL UNIQUE,
		user_name   TEXT,
		category    TEXT,
		area        TEXT,
		description TEXT,
		created_at  TEXT,
		verified    INTEGER NOT NULL DEFAULT 0,
		latitude    REAL,
		longitude   REAL
	);
`

// SQLiteReportLog хранит журнал сообщений во встроенной базе SQLite
type SQLiteReportLog struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewSQLiteReportLog открывает (или создает) файл базы и таблицу журнала
func NewSQLiteReportLog(ctx context.Context, path string, logger *logrus.Logger) (*SQLiteReportLog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite report log: %w", err)
	}
	// Один писатель: SQLite все равно сериализует записи
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA synchronous = FULL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure sqlite report log: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create sqlite report log schema: %w", err)
	}
	return &SQLiteReportLog{db: db, logger: logger}, nil
}

func (r *SQLiteReportLog) Close() error {
	return r.db.Close()
}

func (r *SQLiteReportLog) Append(ctx context.Context, incident models.Incident) error {
	query := `
		INSERT OR IGNORE INTO incident_reports (id, user_name, category, area, description, created_at, verified, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		incident.ID,
		incident.User,
		incident.Category,
		incident.Area,
		incident.Description,
		formatTimestamp(incident.CreatedAt),
		incident.Verified,
		incident.Latitude,
		incident.Longitude,
	)
	if err != nil {
		return fmt.Errorf("failed to insert incident report: %w", err)
	}
	return nil
}

func (r *SQLiteReportLog) Load(ctx context.Context) (LoadResult, error) {
	query := `
		SELECT id, user_name, category, area, description, created_at, verified, latitude, longitude
		FROM incident_reports
		ORDER BY seq;
	`
	var res LoadResult
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return res, fmt.Errorf("failed to load incident reports: %w", err)
	}
	defer rows.Close()

	log := r.logger.WithFields(logrus.Fields{
		"repository": "report_log",
		"method":     "Load",
		"driver":     "sqlite",
	})

	for rows.Next() {
		var (
			id, user, category, area, description, createdAt *string
			verified                                         *bool
			lat, lon                                         *float64
		)
		if err := rows.Scan(&id, &user, &category, &area, &description, &createdAt, &verified, &lat, &lon); err != nil {
			log.WithError(err).Warn("Skipping unreadable incident report row")
			res.Skipped++
			continue
		}

		var ts *time.Time
		if createdAt != nil {
			parsed, err := parseTimestamp(*createdAt)
			if err != nil {
				log.WithError(err).Warn("Skipping malformed incident report row")
				res.Skipped++
				continue
			}
			ts = &parsed
		}

		incident, err := nullableRecord(id, user, category, area, description, ts, verified, lat, lon)
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
