package events

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/oshokin/safeband/internal/domain/session"
)

// Publisher emits session lifecycle events.
type Publisher interface {
	// PublishPhaseChange records that the session entered a new phase.
	PublishPhaseChange(ctx context.Context, s *session.Session) error
	// Close releases the underlying connection.
	Close() error
}

// NopPublisher discards every event. Used when no Redis address is configured.
type NopPublisher struct{}

// PublishPhaseChange discards the event.
func (NopPublisher) PublishPhaseChange(_ context.Context, _ *session.Session) error {
	return nil
}

// Close does nothing.
func (NopPublisher) Close() error {
	return nil
}

// RedisPublisher XADDs phase-change events onto a Redis stream.
type RedisPublisher struct {
	// client is the Redis connection.
	client *redis.Client
	// stream is the destination stream key.
	stream string
}

// NewRedisPublisher connects to Redis at the given address and publishes to
// the given stream key.
func NewRedisPublisher(address, stream string) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: address,
	})

	return &RedisPublisher{
		client: client,
		stream: stream,
	}
}

// Ping verifies the Redis connection is reachable.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	return nil
}

// PublishPhaseChange appends the session snapshot to the stream.
func (p *RedisPublisher) PublishPhaseChange(ctx context.Context, s *session.Session) error {
	values := map[string]interface{}{
		"event_id":          uuid.NewString(),
		"session_id":        s.ID,
		"phase":             s.Phase.String(),
		"remaining_seconds": strconv.FormatFloat(s.RemainingTime, 'f', -1, 64),
		"fall_detected":     strconv.FormatBool(s.FallDetected),
		"contact_shown":     strconv.FormatBool(s.ContactShown),
		"degraded":          strconv.FormatBool(s.Degraded),
		"timestamp":         strconv.FormatInt(time.Now().Unix(), 10),
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Err(); err != nil {
		return fmt.Errorf("publish phase change: %w", err)
	}

	return nil
}

// Close shuts down the Redis connection.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
