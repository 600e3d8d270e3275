package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/pkg/log"
)

const (
	exchangeKind      = "topic"
	DefaultExchange   = "event-calendar"
	DefaultRoutingKey = "event.submitted"
)

// Channel is the subset of *amqp.Channel used by the sink.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Config holds the broker connection settings.
type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
}

type implLogSink struct {
	conn       *amqp.Connection
	channel    Channel
	exchange   string
	routingKey string
	l          log.Logger
}

// New dials the broker, declares a durable topic exchange and returns a
// LogSink that publishes one message per row.
func New(ctx context.Context, cfg Config, l log.Logger) (repository.LogSink, error) {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	if cfg.RoutingKey == "" {
		cfg.RoutingKey = DefaultRoutingKey
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange, // name
		exchangeKind, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	s := newSink(ch, cfg.Exchange, cfg.RoutingKey, l)
	s.conn = conn

	l.Infof(ctx, "RabbitMQ log sink initialized: exchange=%s routing_key=%s", cfg.Exchange, cfg.RoutingKey)
	return s, nil
}

func newSink(ch Channel, exchange, routingKey string, l log.Logger) *implLogSink {
	return &implLogSink{channel: ch, exchange: exchange, routingKey: routingKey, l: l}
}

// Close closes the channel and the connection.
func (s *implLogSink) Close() error {
	if s.channel != nil {
		if err := s.channel.Close(); err != nil {
			s.l.Errorf(context.Background(), "Failed to close RabbitMQ channel: %v", err)
		}
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
