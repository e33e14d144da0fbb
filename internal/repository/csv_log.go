package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shenikar/safetravel/internal/models"
	"github.com/sirupsen/logrus"
)

var csvHeader = []string{"id", "user", "category", "area", "description", "created_at", "verified", "latitude", "longitude"}

// Синонимы названий колонок из старых журналов
var columnAliases = map[string]string{
	"crime_type": "category",
	"timestamp":  "created_at",
	"lat":        "latitude",
	"lon":        "longitude",
}

// layout - расположение полей в строке журнала
type layout struct {
	index map[string]int
	width int
}

var defaultLayout = newLayout(csvHeader)

func newLayout(names []string) layout {
	l := layout{index: make(map[string]int, len(names)), width: len(names)}
	for i, name := range names {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if alias, ok := columnAliases[name]; ok {
			name = alias
		}
		if _, dup := l.index[name]; !dup {
			l.index[name] = i
		}
	}
	return l
}

// headerLayout распознает строку заголовка; для строки данных ok == false
func headerLayout(record []string) (layout, bool) {
	l := newLayout(record)
	_, hasID := l.index["id"]
	_, hasTime := l.index["created_at"]
	if !hasID || !hasTime {
		return layout{}, false
	}
	return l, true
}

func (l layout) field(record []string, name string) (string, bool) {
	i, ok := l.index[name]
	if !ok || i >= len(record) {
		return "", false
	}
	return record[i], true
}

// FileReportLog хранит сообщения в CSV файле, по одной записи на строку.
// Колонки определяются заголовком файла. Рассчитан на единственный процесс-писатель.
type FileReportLog struct {
	path   string
	logger *logrus.Logger
	sync   func(*os.File) error
}

func NewFileReportLog(path string, logger *logrus.Logger) *FileReportLog {
	return &FileReportLog{
		path:   path,
		logger: logger,
		sync:   (*os.File).Sync,
	}
}

// Load читает журнал; отсутствующий файл означает пустой журнал
func (l *FileReportLog) Load(ctx context.Context) (LoadResult, error) {
	var res LoadResult
	if err := ctx.Err(); err != nil {
		return res, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, nil
		}
		return res, fmt.Errorf("failed to open report log: %w", err)
	}
	defer f.Close()

	log := l.logger.WithFields(logrus.Fields{
		"repository": "report_log",
		"method":     "Load",
		"path":       l.path,
	})

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	cols := defaultLayout
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return res, fmt.Errorf("failed to read report log: %w", err)
			}
			log.WithError(err).Warn("Skipping unreadable report log row")
			res.Skipped++
			first = false
			continue
		}

		line, _ := r.FieldPos(0)
		if first {
			first = false
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
			if header, ok := headerLayout(record); ok {
				cols = header
				continue
			}
		}

		incident, err := parseRecord(cols, record)
		if err != nil {
			log.WithError(err).WithField("line", line).Warn("Skipping malformed report log row")
			res.Skipped++
			continue
		}
		res.Incidents = append(res.Incidents, incident)
	}
	return res, nil
}

// Append дописывает строку в раскладке заголовка файла и вызывает fsync до возврата.
// При ошибке файл обрезается до прежнего размера.
func (l *FileReportLog) Append(ctx context.Context, incident models.Incident) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open report log: %w", err)
	}

	if err := l.writeRecord(f, incident); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report log: %w", err)
	}
	return nil
}

func (l *FileReportLog) writeRecord(f *os.File, incident models.Incident) (err error) {
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat report log: %w", err)
	}
	size := info.Size()

	cols := defaultLayout
	if size > 0 {
		if cols, err = fileLayout(f, size); err != nil {
			return err
		}
	}

	defer func() {
		if err == nil {
			return
		}
		if terr := f.Truncate(size); terr != nil {
			l.logger.WithError(terr).WithField("path", l.path).Error("Failed to roll back report log")
		}
	}()

	// Оборванная прошлая запись не должна склеиться с новой
	if size > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, size-1); err != nil {
			return fmt.Errorf("failed to inspect report log tail: %w", err)
		}
		if last[0] != '\n' {
			if _, err := f.Write([]byte{'\n'}); err != nil {
				return fmt.Errorf("failed to terminate torn report log row: %w", err)
			}
		}
	}

	w := csv.NewWriter(f)
	if size == 0 {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write report log header: %w", err)
		}
	}
	if err := w.Write(formatRecord(cols, incident)); err != nil {
		return fmt.Errorf("failed to write report log row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush report log: %w", err)
	}
	if err := l.sync(f); err != nil {
		return fmt.Errorf("failed to sync report log: %w", err)
	}
	return nil
}

// fileLayout читает заголовок существующего файла; без заголовка - раскладка по умолчанию
func fileLayout(f *os.File, size int64) (layout, error) {
	r := csv.NewReader(io.NewSectionReader(f, 0, size))
	r.FieldsPerRecord = -1
	record, err := r.Read()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) || errors.Is(err, io.EOF) {
			return defaultLayout, nil
		}
		return layout{}, fmt.Errorf("failed to read report log header: %w", err)
	}
	if header, ok := headerLayout(record); ok {
		return header, nil
	}
	return defaultLayout, nil
}

// formatRecord раскладывает запись по колонкам; колонки, которых нет в заголовке, не сохраняются
func formatRecord(cols layout, inc models.Incident) []string {
	values := map[string]string{
		"id":          inc.ID,
		"user":        inc.User,
		"category":    inc.Category,
		"area":        inc.Area,
		"description": inc.Description,
		"created_at":  formatTimestamp(inc.CreatedAt),
		"verified":    strconv.FormatBool(inc.Verified),
		"latitude":    strconv.FormatFloat(inc.Latitude, 'f', -1, 64),
		"longitude":   strconv.FormatFloat(inc.Longitude, 'f', -1, 64),
	}
	record := make([]string, cols.width)
	for name, i := range cols.index {
		record[i] = values[name]
	}
	return record
}

// parseRecord разбирает строку журнала. Лишние поля игнорируются,
// отсутствующие user, area, description и verified дают пустые значения.
func parseRecord(cols layout, record []string) (models.Incident, error) {
	required := make(map[string]string, 5)
	for _, name := range []string{"id", "category", "created_at", "latitude", "longitude"} {
		v, ok := cols.field(record, name)
		if !ok {
			return models.Incident{}, fmt.Errorf("%w: missing %s field", models.ErrMalformedRecord, name)
		}
		required[name] = v
	}
	user, _ := cols.field(record, "user")
	area, _ := cols.field(record, "area")
	description, _ := cols.field(record, "description")
	rawVerified, _ := cols.field(record, "verified")

	createdAt, err := parseTimestamp(required["created_at"])
	if err != nil {
		return models.Incident{}, err
	}

	verified := false
	if v := strings.TrimSpace(rawVerified); v != "" {
		if verified, err = strconv.ParseBool(v); err != nil {
			return models.Incident{}, fmt.Errorf("%w: bad verified flag %q", models.ErrMalformedRecord, v)
		}
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(required["latitude"]), 64)
	if err != nil {
		return models.Incident{}, fmt.Errorf("%w: bad latitude %q", models.ErrMalformedRecord, required["latitude"])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(required["longitude"]), 64)
	if err != nil {
		return models.Incident{}, fmt.Errorf("%w: bad longitude %q", models.ErrMalformedRecord, required["longitude"])
	}

	incident := models.Incident{
		ID:          required["id"],
		User:        user,
		Category:    required["category"],
		Area:        area,
		Description: description,
		CreatedAt:   createdAt,
		Verified:    verified,
		Latitude:    lat,
		Longitude:   lon,
		Source:      models.SourceCommunity,
	}
	if err := validateRecord(incident); err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}
