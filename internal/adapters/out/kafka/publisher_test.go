package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func newEvent(eventType order.EventType, orderID kernel.UUID) order.Event {
	return order.Event{
		ID:             kernel.NewUUID(),
		Type:           eventType,
		OrderID:        orderID,
		Status:         order.Completed,
		DeliveryStatus: order.OutForDelivery,
		ActorID:        kernel.NewUUID(),
		ActorRole:      actor.Admin,
		OccurredAt:     time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("should write one message per event keyed by order id", func(t *testing.T) {
		writer := &recordingWriter{}
		publisher := newPublisher(writer, "order-changed", zap.NewNop())
		orderID := kernel.NewUUID()

		err := publisher.Publish(t.Context(),
			newEvent(order.EventApproved, orderID),
			newEvent(order.EventOutForDelivery, orderID),
		)

		require.NoError(t, err)
		require.Len(t, writer.messages, 2)
		assert.Equal(t, orderID.String(), string(writer.messages[0].Key))
		assert.Equal(t, "order.out_for_delivery", string(writer.messages[1].Headers[0].Value))

		var msg EventMessage
		require.NoError(t, json.Unmarshal(writer.messages[1].Value, &msg))
		assert.Equal(t, "order.out_for_delivery", msg.Type)
		assert.Equal(t, orderID.String(), msg.OrderID)
		assert.Equal(t, "Completed", msg.Status)
		assert.Equal(t, "out_for_delivery", msg.DeliveryStatus)
		assert.Equal(t, "admin", msg.ActorRole)
	})

	t.Run("should skip empty batches", func(t *testing.T) {
		writer := &recordingWriter{err: errors.New("must not be called")}
		publisher := newPublisher(writer, "order-changed", zap.NewNop())

		require.NoError(t, publisher.Publish(t.Context()))
	})

	t.Run("should wrap writer failures", func(t *testing.T) {
		cause := errors.New("leader not available")
		publisher := newPublisher(&recordingWriter{err: cause}, "order-changed", zap.NewNop())

		err := publisher.Publish(t.Context(), newEvent(order.EventPlaced, kernel.NewUUID()))

		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "order-changed")
	})

	t.Run("should close the writer", func(t *testing.T) {
		writer := &recordingWriter{}

		require.NoError(t, newPublisher(writer, "t", zap.NewNop()).Close())
		assert.True(t, writer.closed)
	})
}

func TestNoopPublisher(t *testing.T) {
	t.Run("should accept anything", func(t *testing.T) {
		require.NoError(t, NoopPublisher{}.Publish(t.Context(), newEvent(order.EventPlaced, kernel.NewUUID())))
	})
}
