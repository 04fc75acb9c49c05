package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
)

// Publisher publishes notification events to a durable RabbitMQ queue.
// It holds one connection for the life of the process; publish errors are
// returned to the caller, which treats notifications as best effort.
type Publisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

var _ portssvc.NotificationPublisher = (*Publisher)(nil)

// NewPublisher dials the broker and declares the queue. The queue is durable
// so notifications survive broker restarts.
func NewPublisher(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}

	return &Publisher{conn: conn, ch: ch, queue: queue}, nil
}

// PublishNotification marshals the event and publishes it as a persistent
// message on the default exchange.
func (p *Publisher) PublishNotification(ctx context.Context, event domain.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		slog.Error("Failed to publish notification event", "kind", event.Kind, "error", err)
		return fmt.Errorf("failed to publish notification event: %w", err)
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
