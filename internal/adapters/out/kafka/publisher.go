// Package kafka publishes order change notifications to a Kafka topic.
// Publishing is best effort: it happens after the owning transaction has
// committed, and a broker outage never fails the business operation.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"orderservice/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Publisher implements ports.EventPublisher over a Kafka writer. A publisher
// created without brokers is disabled and silently drops events, which keeps
// local development free of a broker requirement.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher creates a Kafka publisher for the given comma-separated broker
// list and topic. An empty broker list yields a disabled publisher.
func NewPublisher(brokersCSV, topic string, logger *slog.Logger) *Publisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	p := &Publisher{logger: logger.With(slog.String("component", "kafka-publisher"))}
	if len(brokers) == 0 || topic == "" {
		return p
	}

	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return p
}

// Enabled reports whether events actually reach a broker.
func (p *Publisher) Enabled() bool {
	return p.writer != nil
}

// PublishOrderChanged sends one order change event, keyed by order ID so all
// events of one order land in the same partition.
func (p *Publisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	if p.writer == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: data,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		p.logger.WarnContext(ctx, "failed to publish order change event",
			slog.Int64("order_id", event.OrderID),
			slog.String("action", event.Action),
			slog.Any("error", err))
		return err
	}

	return nil
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
