package commands

import (
	"errors"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand requests a move to a target work status. Which transition runs, and who
// may run it, is decided by the order.
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewChangeStatusCommand(by actor.Actor, orderID kernel.UUID, target order.Status) (ChangeStatusCommand, error) {
	if err := errors.Join(by.Validate(), orderID.Validate(), target.Validate()); err != nil {
		return ChangeStatusCommand{}, err
	}

	return ChangeStatusCommand{
		actor:   by,
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

func (c ChangeStatusCommand) Actor() actor.Actor   { return c.actor }
func (c ChangeStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeStatusCommand) Target() order.Status { return c.target }
