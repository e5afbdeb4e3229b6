package commands

import (
	"errors"
	"strings"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

const maxDeliveryNotesLength = 1000

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand moves a completed order along the delivery chain.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID
	target  order.DeliveryStatus
	notes   string

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryCommand(
	by actor.Actor,
	orderID kernel.UUID,
	target order.DeliveryStatus,
	notes string,
) (UpdateDeliveryCommand, error) {
	var notesErr error
	notes = strings.TrimSpace(notes)
	if len(notes) > maxDeliveryNotesLength {
		notesErr = errs.NewValueIsOutOfRangeError("delivery_notes", len(notes), 0, maxDeliveryNotesLength)
	}

	if err := errors.Join(by.Validate(), orderID.Validate(), target.Validate(), notesErr); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return UpdateDeliveryCommand{
		actor:   by,
		orderID: orderID,
		target:  target,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) Actor() actor.Actor           { return c.actor }
func (c UpdateDeliveryCommand) OrderID() kernel.UUID         { return c.orderID }
func (c UpdateDeliveryCommand) Target() order.DeliveryStatus { return c.target }
func (c UpdateDeliveryCommand) Notes() string                { return c.notes }
