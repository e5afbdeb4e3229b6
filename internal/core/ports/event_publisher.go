package ports

import (
	"context"

	"tailoring/internal/core/domain/model/order"
)

// EventPublisher hands committed order events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
