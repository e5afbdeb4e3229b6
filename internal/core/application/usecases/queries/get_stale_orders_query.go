package queries

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var ErrGetStaleOrdersQueryIsNotConstructed = errors.New(
	"GetStaleOrdersQuery must be created via NewGetStaleOrdersQuery constructor",
)

// GetStaleOrdersQuery finds orders that have not moved for longer than olderThan.
type GetStaleOrdersQuery struct {
	status    order.Status
	olderThan time.Duration
	guard     guard.ConstructorGuard
}

func NewGetStaleOrdersQuery(status order.Status, olderThan time.Duration) (GetStaleOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetStaleOrdersQuery{}, err
	}
	if olderThan <= 0 {
		return GetStaleOrdersQuery{}, errs.NewValueIsOutOfRangeError("older_than", olderThan, time.Duration(1), "unbounded")
	}
	return GetStaleOrdersQuery{
		status:    status,
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleOrdersQueryIsNotConstructed)
}

func (q GetStaleOrdersQuery) Status() order.Status {
	return q.status
}

func (q GetStaleOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

type StaleOrderView struct {
	ID        kernel.UUID
	Status    order.Status
	UpdatedAt time.Time
}
