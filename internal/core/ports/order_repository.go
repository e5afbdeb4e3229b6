// Package ports defines the contracts between the tailoring core and its infrastructure:
// repositories, the unit of work and the outside collaborators (address book, tailor roster,
// event publisher).
package ports

import (
	"context"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates. Listing orders is a
// read concern and lives in the queries package.
type OrderRepository interface {
	// Add persists a newly placed order. A duplicate id is reported as a store failure.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the mutable columns of an existing order: status, assignment, delivery fields
	// and updated_at. Creation-time columns are never written again.
	// Returns ObjectNotFound when no row has the order's id.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order by id. Returns ObjectNotFound when missing and a store failure wrapping
	// ValueIsInvalid when a stored JSON column cannot be decoded.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
