package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// Handler processes one notification event. A returned error rejects the
// message without requeueing it.
type Handler func(ctx context.Context, event domain.NotificationEvent) error

// Consume connects to the broker and delivers queue messages to the handler
// until ctx is cancelled. Connection failures trigger a reconnect loop with
// exponential backoff so a broker restart does not kill the worker.
func Consume(ctx context.Context, url, queue string, handler Handler) error {
	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		conn, err := amqp.Dial(url)
		if err != nil {
			slog.Error("Failed to dial rabbitmq, retrying", "error", err, "backoff", backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(ctx, conn, queue, handler); err != nil {
			if errors.Is(err, context.Canceled) {
				conn.Close()
				return err
			}
			slog.Error("Consume loop ended, reconnecting", "error", err)
		}
		conn.Close()
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, queue string, handler Handler) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(20, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}

	deliveries, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return context.Canceled
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := handleDelivery(ctx, d.Body, handler); err != nil {
				slog.Error("Failed to handle notification message", "error", err)
				// Reject without requeue to avoid a poison-message loop
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handleDelivery(ctx context.Context, body []byte, handler Handler) error {
	var event domain.NotificationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to unmarshal notification event: %w", err)
	}
	return handler(ctx, event)
}
