package queries

import (
	"errors"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via one of the New...Query constructors",
)

// ListOrdersQuery is one role-scoped projection of the orders table. Results are always sorted
// by creation time, newest first.
//
// Example:
//
//	query := queries.NewAdminInboxQuery()
//	if err := query.AuthorizeFor(admin); err != nil {
//	    return err
//	}
//	inbox, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	name       string
	customerID *kernel.UUID
	tailorID   *kernel.UUID
	statuses   []order.Status
	adminOnly  bool
	guard      guard.ConstructorGuard
}

// NewCustomerOrdersQuery lists every order of one customer, whatever its status.
func NewCustomerOrdersQuery(customerID kernel.UUID) (ListOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	return ListOrdersQuery{
		name:       "customer orders",
		customerID: &customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewAdminInboxQuery lists orders waiting for a tailor.
func NewAdminInboxQuery() ListOrdersQuery {
	return newStatusQuery("admin inbox", order.PendingAssignment)
}

// NewActiveBoardQuery lists orders a tailor is assigned to or working on.
func NewActiveBoardQuery() ListOrdersQuery {
	return newStatusQuery("active board", order.Assigned, order.InProgress)
}

// NewReviewQueueQuery lists orders finished by their tailor and waiting for approval.
func NewReviewQueueQuery() ListOrdersQuery {
	return newStatusQuery("review queue", order.CompletedByTailor)
}

// NewCompletedOrdersQuery lists approved orders, whatever their delivery status.
func NewCompletedOrdersQuery() ListOrdersQuery {
	return newStatusQuery("completed orders", order.Completed)
}

// NewTailorWorklistQuery lists the orders of one tailor in one status. Only statuses that carry
// a tailor are accepted.
func NewTailorWorklistQuery(tailorID kernel.UUID, status order.Status) (ListOrdersQuery, error) {
	if err := errors.Join(
		tailorID.Validate(),
		status.ValidateCanHaveTailor(true),
	); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{
		name:     "tailor worklist",
		tailorID: &tailorID,
		statuses: []order.Status{status},
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func newStatusQuery(name string, statuses ...order.Status) ListOrdersQuery {
	return ListOrdersQuery{
		name:      name,
		statuses:  statuses,
		adminOnly: true,
		guard:     guard.NewConstructorGuard(),
	}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// AuthorizeFor checks that the actor may see this projection. Admins see everything, customers
// only their own list and tailors only their own worklists.
func (q ListOrdersQuery) AuthorizeFor(by actor.Actor) error {
	if err := errors.Join(q.Validate(), by.Validate()); err != nil {
		return err
	}

	switch {
	case by.Is(actor.Admin):
		return nil
	case q.adminOnly:
	case q.customerID != nil && by.Is(actor.Customer) && by.ID().IsEqual(*q.customerID):
		return nil
	case q.tailorID != nil && by.IsTailor(*q.tailorID):
		return nil
	}
	return errs.NewActionIsForbiddenError("view " + q.name)
}

// Statuses returns the status filter, empty when every status matches.
func (q ListOrdersQuery) Statuses() []order.Status {
	return append([]order.Status(nil), q.statuses...)
}
