package order

import (
	"time"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
)

type EventType string

const (
	EventPlaced         EventType = "order.placed"
	EventTailorAssigned EventType = "order.tailor_assigned"
	EventWorkStarted    EventType = "order.work_started"
	EventWorkCompleted  EventType = "order.work_completed"
	EventApproved       EventType = "order.approved"
	EventOutForDelivery EventType = "order.out_for_delivery"
	EventDelivered      EventType = "order.delivered"
)

// Event records one accepted transition together with the state it produced.
type Event struct {
	ID             kernel.UUID
	Type           EventType
	OrderID        kernel.UUID
	Status         Status
	DeliveryStatus DeliveryStatus
	ActorID        kernel.UUID
	ActorRole      actor.Role
	OccurredAt     time.Time
}
