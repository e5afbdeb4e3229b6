// Package kafka publishes committed order events to a Kafka topic as JSON, keyed by order id so
// events of one order stay in one partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tailoring/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventMessage is the wire form of an order event.
type EventMessage struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	Status         string    `json:"status"`
	DeliveryStatus string    `json:"delivery_status"`
	ActorID        string    `json:"actor_id"`
	ActorRole      string    `json:"actor_role"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes order events synchronously; Publish returns once the brokers acknowledged.
type Publisher struct {
	writer messageWriter
	topic  string
	logger *zap.Logger
}

// NewPublisher creates a publisher writing to topic on the given brokers.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		Logger:       kafkaLogger{logger: logger},
		ErrorLogger:  kafkaLogger{logger: logger},
	}
	return newPublisher(writer, topic, logger)
}

func newPublisher(writer messageWriter, topic string, logger *zap.Logger) *Publisher {
	return &Publisher{writer: writer, topic: topic, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(NewEventMessage(e))
		if err != nil {
			return fmt.Errorf("encode %s event: %w", e.Type, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.OrderID.String()),
			Value: value,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte(e.Type)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d messages to %s: %w", len(msgs), p.topic, err)
	}

	p.logger.Debug("order events published", zap.String("topic", p.topic), zap.Int("count", len(msgs)))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NewEventMessage converts an order event into its wire form.
func NewEventMessage(e order.Event) EventMessage {
	return EventMessage{
		ID:             e.ID.String(),
		Type:           string(e.Type),
		OrderID:        e.OrderID.String(),
		Status:         e.Status.String(),
		DeliveryStatus: e.DeliveryStatus.String(),
		ActorID:        e.ActorID.String(),
		ActorRole:      e.ActorRole.String(),
		OccurredAt:     e.OccurredAt.UTC(),
	}
}

type kafkaLogger struct {
	logger *zap.Logger
}

func (k kafkaLogger) Printf(msg string, args ...any) {
	k.logger.Sugar().Debugf(msg, args...)
}

// NoopPublisher drops every event. It is used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ...order.Event) error {
	return nil
}
