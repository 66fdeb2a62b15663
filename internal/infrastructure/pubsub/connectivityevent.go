package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/shared/logger"
)

// ConnectivityChannel carries connectivity events to the notification service.
const ConnectivityChannel = "subcore:connectivity"

// ConnectivityMessage is the wire form of a connectivity event.
type ConnectivityMessage struct {
	EventID        string            `json:"event_id"`
	AccountNo      string            `json:"account_no"`
	Transition     string            `json:"transition"`
	Result         string            `json:"result"`
	NetworkOutcome string            `json:"network_outcome"`
	Detail         string            `json:"detail,omitempty"`
	Actor          string            `json:"actor,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Timestamp      int64             `json:"timestamp"`
}

func toMessage(event *connectivity.Event) ConnectivityMessage {
	return ConnectivityMessage{
		EventID:        event.ID,
		AccountNo:      event.AccountNo,
		Transition:     string(event.Transition),
		Result:         string(event.Result),
		NetworkOutcome: string(event.NetworkOutcome),
		Detail:         event.Detail,
		Actor:          event.Actor,
		Metadata:       event.Metadata,
		Timestamp:      event.OccurredAt.Unix(),
	}
}

// RedisConnectivityEventBus publishes connectivity events over Redis Pub/Sub.
// Consumers subscribe to ConnectivityChannel and decode ConnectivityMessage.
type RedisConnectivityEventBus struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisConnectivityEventBus creates a new Redis-based connectivity event bus
func NewRedisConnectivityEventBus(client *redis.Client, logger logger.Interface) *RedisConnectivityEventBus {
	return &RedisConnectivityEventBus{
		client: client,
		logger: logger,
	}
}

// Publish implements connectivity.Publisher.
func (b *RedisConnectivityEventBus) Publish(ctx context.Context, event *connectivity.Event) error {
	data, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := b.client.Publish(ctx, ConnectivityChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish connectivity event",
			"account_no", event.AccountNo,
			"transition", event.Transition,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("connectivity event published",
		"account_no", event.AccountNo,
		"transition", event.Transition,
		"result", event.Result,
	)
	return nil
}

// LoggingPublisher stands in for the event bus when Redis is disabled.
type LoggingPublisher struct {
	logger logger.Interface
}

func NewLoggingPublisher(logger logger.Interface) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) Publish(_ context.Context, event *connectivity.Event) error {
	p.logger.Infow("connectivity event",
		"event_id", event.ID,
		"account_no", event.AccountNo,
		"transition", event.Transition,
		"result", event.Result,
		"network_outcome", event.NetworkOutcome,
	)
	return nil
}
