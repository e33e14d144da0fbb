package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safetravel/internal/analysis"
)

const (
	alertQueueKey = "safetravel:alerts"
)

// AlertEvent - оповещение об опасных инцидентах рядом с пользователем
type AlertEvent struct {
	UserID       string                    `json:"user_id"`
	Latitude     float64                   `json:"latitude"`
	Longitude    float64                   `json:"longitude"`
	RadiusMeters float64                   `json:"radius_meters"`
	Timestamp    time.Time                 `json:"timestamp"`
	Incidents    []analysis.NearbyIncident `json:"incidents"`
}

// AlertPublisher - интерфейс для публикации оповещений
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая очередь Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда оповещения выключены
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, AlertEvent) error { return nil }
