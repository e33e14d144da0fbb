package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/safetravel/internal/models"
	"github.com/shenikar/safetravel/internal/observability"
	"github.com/sirupsen/logrus"
)

// IncidentStore держит инциденты в памяти и дублирует пользовательские сообщения в ReportLog.
// Идентификатор уникален: повторная вставка того же id ничего не меняет.
type IncidentStore struct {
	mu        sync.RWMutex
	log       ReportLog
	logger    *logrus.Logger
	metrics   *observability.Metrics
	incidents []models.Incident
	index     map[string]int
}

func NewIncidentStore(log ReportLog, logger *logrus.Logger, metrics *observability.Metrics) *IncidentStore {
	return &IncidentStore{
		log:     log,
		logger:  logger,
		metrics: metrics,
		index:   make(map[string]int),
	}
}

// OpenIncidentStore создает хранилище из начальных данных и затем подмешивает записи журнала.
// При совпадении id побеждает запись, попавшая в память первой.
func OpenIncidentStore(ctx context.Context, log ReportLog, seed []models.Incident, logger *logrus.Logger, metrics *observability.Metrics) (*IncidentStore, error) {
	s := NewIncidentStore(log, logger, metrics)
	s.Seed(seed)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Seed добавляет записи только в память и возвращает число добавленных
func (s *IncidentStore) Seed(incidents []models.Incident) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, inc := range incidents {
		if s.insertLocked(inc) {
			added++
		}
	}
	s.metrics.StoreSize.Set(float64(len(s.incidents)))
	return added
}

// Load подмешивает в память записи журнала, которых еще нет по id
func (s *IncidentStore) Load(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"repository": "incident_store",
		"method":     "Load",
	})

	res, err := s.log.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read report log")
		return fmt.Errorf("failed to load report log: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := 0
	for _, inc := range res.Incidents {
		if s.insertLocked(inc) {
			merged++
		}
	}
	s.metrics.MalformedRecords.Add(float64(res.Skipped))
	s.metrics.StoreSize.Set(float64(len(s.incidents)))

	if res.Skipped > 0 {
		log.WithField("skipped", res.Skipped).Warn("Report log contained malformed records")
	}
	log.WithFields(logrus.Fields{
		"read":   len(res.Incidents),
		"merged": merged,
		"total":  len(s.incidents),
	}).Info("Report log merged")
	return nil
}

// Append добавляет инцидент. Для уже известного id возвращает (false, nil).
// Запись без id, категории, времени или с неверными координатами отклоняется с ErrMalformedRecord.
// Запись в журнал выполняется до вставки в память: при ошибке записи память не меняется.
func (s *IncidentStore) Append(ctx context.Context, incident models.Incident) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"repository":  "incident_store",
		"method":      "Append",
		"incident_id": incident.ID,
	})

	// В память попадает только то, что журнал сможет прочитать обратно
	if err := validateRecord(incident); err != nil {
		log.WithError(err).Warn("Rejected incident that cannot be stored")
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[incident.ID]; exists {
		log.Debug("Incident already stored, skipping")
		s.metrics.DuplicateReports.Inc()
		return false, nil
	}

	if err := s.log.Append(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to append incident to report log")
		s.metrics.DurableWriteFailures.Inc()
		return false, fmt.Errorf("%w: %w", models.ErrDurableWrite, err)
	}

	s.insertLocked(incident)
	s.metrics.ReportsAppended.Inc()
	s.metrics.StoreSize.Set(float64(len(s.incidents)))
	return true, nil
}

// All возвращает копию всех инцидентов. Порядок не гарантируется.
func (s *IncidentStore) All() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Incident, len(s.incidents))
	copy(out, s.incidents)
	return out
}

// Get возвращает инцидент по id
func (s *IncidentStore) Get(id string) (models.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Incident{}, false
	}
	return s.incidents[i], true
}

func (s *IncidentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.incidents)
}

func (s *IncidentStore) insertLocked(inc models.Incident) bool {
	if _, exists := s.index[inc.ID]; exists {
		return false
	}
	s.index[inc.ID] = len(s.incidents)
	s.incidents = append(s.incidents, inc)
	return true
}
