package commands

import (
	"errors"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/guard"
)

var ErrAssignTailorCommandIsNotConstructed = errors.New(
	"AssignTailorCommand must be created via NewAssignTailorCommand constructor",
)

// AssignTailorCommand asks to hand an order to a tailor for an agreed amount. Tailor and amount
// are optional here so that a partial request reaches the order and is rejected as an
// incomplete assignment.
type AssignTailorCommand struct { //nolint:recvcheck //using for validation
	actor    actor.Actor
	orderID  kernel.UUID
	tailorID *kernel.UUID
	amount   *kernel.Money

	guard guard.ConstructorGuard
}

func NewAssignTailorCommand(
	by actor.Actor,
	orderID kernel.UUID,
	tailorID *kernel.UUID,
	amount *kernel.Money,
) (AssignTailorCommand, error) {
	if err := errors.Join(by.Validate(), orderID.Validate()); err != nil {
		return AssignTailorCommand{}, err
	}

	cmd := AssignTailorCommand{
		actor:   by,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}
	if tailorID != nil {
		id := *tailorID
		cmd.tailorID = &id
	}
	if amount != nil {
		a := *amount
		cmd.amount = &a
	}

	return cmd, nil
}

func (c AssignTailorCommand) Validate() error {
	return c.guard.Validate(ErrAssignTailorCommandIsNotConstructed)
}

func (c AssignTailorCommand) Actor() actor.Actor   { return c.actor }
func (c AssignTailorCommand) OrderID() kernel.UUID { return c.orderID }

// TailorID returns the zero UUID when no tailor was given.
func (c AssignTailorCommand) TailorID() kernel.UUID {
	if c.tailorID == nil {
		return kernel.UUID{}
	}
	return *c.tailorID
}

// Amount returns zero when no amount was given.
func (c AssignTailorCommand) Amount() kernel.Money {
	if c.amount == nil {
		return kernel.Zero()
	}
	return *c.amount
}
