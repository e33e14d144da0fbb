package repository_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/shenikar/safetravel/internal/models"
	"github.com/shenikar/safetravel/internal/observability"
	"github.com/shenikar/safetravel/internal/repository"
	"github.com/shenikar/safetravel/internal/repository/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func report(id string) models.Incident {
	return models.Incident{
		ID:        id,
		User:      "anonymous",
		Category:  "Theft",
		Area:      "Aliganj",
		CreatedAt: time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC),
		Latitude:  26.8489,
		Longitude: 80.9387,
		Source:    models.SourceCommunity,
	}
}

func storeIDs(s *repository.IncidentStore) map[string]struct{} {
	out := make(map[string]struct{})
	for _, inc := range s.All() {
		out[inc.ID] = struct{}{}
	}
	return out
}

func TestIncidentStore_AppendDuplicateIsNoop(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	logMock := mocks.NewMockReportLog(ctrl)
	store := repository.NewIncidentStore(logMock, newLogger(), observability.NewMetricsForTesting())
	ctx := context.Background()

	// Ожидания: в журнал пишется ровно одна запись
	logMock.EXPECT().Append(ctx, report("x")).Return(nil).Times(1)

	// Действие
	added, err := store.Append(ctx, report("x"))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Append(ctx, report("x"))

	// Проверки
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, store.Len())
	assert.Len(t, store.All(), 1)
}

func TestIncidentStore_DurableWriteFailureRollsBack(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	logMock := mocks.NewMockReportLog(ctrl)
	store := repository.NewIncidentStore(logMock, newLogger(), observability.NewMetricsForTesting())
	store.Seed([]models.Incident{report("seed")})
	ctx := context.Background()
	diskErr := errors.New("no space left on device")

	// Ожидания
	logMock.EXPECT().Append(ctx, gomock.Any()).Return(diskErr).Times(1)

	// Действие
	added, err := store.Append(ctx, report("new"))

	// Проверки
	require.Error(t, err)
	assert.False(t, added)
	assert.ErrorIs(t, err, models.ErrDurableWrite)
	assert.ErrorIs(t, err, diskErr)
	assert.Equal(t, 1, store.Len())
	_, found := store.Get("new")
	assert.False(t, found)
}

func TestIncidentStore_LoadMergesFirstSeenWins(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	logMock := mocks.NewMockReportLog(ctrl)
	ctx := context.Background()

	seeded := report("shared")
	seeded.Description = "from seed"
	logged := report("shared")
	logged.Description = "from log"

	// Ожидания
	logMock.EXPECT().Load(ctx).Return(repository.LoadResult{
		Incidents: []models.Incident{logged, report("only-log"), report("only-log")},
		Skipped:   2,
	}, nil).Times(1)

	// Действие
	store, err := repository.OpenIncidentStore(ctx, logMock, []models.Incident{seeded, report("only-seed")}, newLogger(), observability.NewMetricsForTesting())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())
	got, ok := store.Get("shared")
	require.True(t, ok)
	assert.Equal(t, "from seed", got.Description)
}

func TestIncidentStore_LoadErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	logMock := mocks.NewMockReportLog(ctrl)
	ctx := context.Background()

	logMock.EXPECT().Load(ctx).Return(repository.LoadResult{}, errors.New("permission denied")).Times(1)

	_, err := repository.OpenIncidentStore(ctx, logMock, nil, newLogger(), observability.NewMetricsForTesting())

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load report log")
}

func TestIncidentStore_RoundTripThroughFileLog(t *testing.T) {
	// Подготовка
	path := filepath.Join(t.TempDir(), "reports.csv")
	ctx := context.Background()
	seed := []models.Incident{report("seed-1"), report("seed-2")}

	store, err := repository.OpenIncidentStore(ctx, repository.NewFileReportLog(path, newLogger()), seed, newLogger(), observability.NewMetricsForTesting())
	require.NoError(t, err)

	const n = 25
	want := map[string]struct{}{"seed-1": {}, "seed-2": {}}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("report-%02d", i)
		added, err := store.Append(ctx, report(id))
		require.NoError(t, err)
		require.True(t, added)
		want[id] = struct{}{}
	}

	// Действие: перезапуск с теми же начальными данными
	reloaded, err := repository.OpenIncidentStore(ctx, repository.NewFileReportLog(path, newLogger()), seed, newLogger(), observability.NewMetricsForTesting())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, want, storeIDs(reloaded))
	assert.Equal(t, n+len(seed), reloaded.Len())
}

func TestIncidentStore_IDsRoundTripExactly(t *testing.T) {
	// Подготовка
	path := filepath.Join(t.TempDir(), "reports.csv")
	ctx := context.Background()

	store, err := repository.OpenIncidentStore(ctx, repository.NewFileReportLog(path, newLogger()), nil, newLogger(), observability.NewMetricsForTesting())
	require.NoError(t, err)

	// Действие
	for _, id := range []string{" x", "x", "x ", "\tx"} {
		added, err := store.Append(ctx, report(id))
		require.NoError(t, err)
		require.True(t, added, "id %q", id)
	}
	added, err := store.Append(ctx, report("  "))

	// Проверки: пустой id отклонен, остальные переживают перезапуск без изменений
	require.ErrorIs(t, err, models.ErrMalformedRecord)
	assert.False(t, added)
	require.Equal(t, 4, store.Len())

	reloaded, err := repository.OpenIncidentStore(ctx, repository.NewFileReportLog(path, newLogger()), nil, newLogger(), observability.NewMetricsForTesting())
	require.NoError(t, err)
	assert.Equal(t, storeIDs(store), storeIDs(reloaded))
	assert.Equal(t, 4, reloaded.Len())
}

func TestIncidentStore_InvalidRecordNeverReachesLog(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	logMock := mocks.NewMockReportLog(ctrl)
	store := repository.NewIncidentStore(logMock, newLogger(), observability.NewMetricsForTesting())

	noCategory := report("no-category")
	noCategory.Category = " "
	badPoint := report("bad-point")
	badPoint.Latitude = 91

	// Ожидания
	logMock.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

	// Действие + Проверки
	for _, inc := range []models.Incident{report(""), report("   "), noCategory, badPoint} {
		added, err := store.Append(context.Background(), inc)
		assert.ErrorIs(t, err, models.ErrMalformedRecord, "id %q", inc.ID)
		assert.False(t, added)
	}
	assert.Zero(t, store.Len())
}

func TestIncidentStore_AllReturnsSnapshot(t *testing.T) {
	store := repository.NewIncidentStore(nil, newLogger(), observability.NewMetricsForTesting())
	store.Seed([]models.Incident{report("a")})

	snapshot := store.All()
	snapshot[0].Description = "mutated"

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Empty(t, got.Description)
}
