// Package rabbit publishes order lifecycle notifications to a RabbitMQ topic
// exchange. The event type doubles as the routing key, so consumers can bind
// to individual events (order.settled) or the whole stream (order.*).
package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"canteen/internal/core/ports"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Notifier implements the NotificationPublisher port over an AMQP channel.
type Notifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewNotifier dials RabbitMQ and declares the durable topic exchange used for
// lifecycle notifications.
func NewNotifier(url string, exchange string) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Notifier{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish sends one lifecycle notification, routed by its event type.
func (n *Notifier) Publish(ctx context.Context, notification ports.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return n.channel.PublishWithContext(ctx,
		n.exchange,
		notification.EventType,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		})
}

// Close releases the channel and the underlying connection.
func (n *Notifier) Close() error {
	if err := n.channel.Close(); err != nil {
		return fmt.Errorf("close rabbitmq channel: %w", err)
	}
	if err := n.conn.Close(); err != nil {
		return fmt.Errorf("close rabbitmq connection: %w", err)
	}
	return nil
}

// LogNotifier is the fallback publisher used when no broker is configured.
// It records each notification in the application log and never fails.
type LogNotifier struct{}

// NewLogNotifier creates a publisher that only logs notifications.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Publish writes the notification to the structured log.
func (n *LogNotifier) Publish(_ context.Context, notification ports.Notification) error {
	slog.Info("order notification",
		"event_type", notification.EventType,
		"order_id", notification.OrderID,
		"user_id", notification.UserID,
		"status", notification.Status,
	)
	return nil
}
