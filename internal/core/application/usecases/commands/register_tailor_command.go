package commands

import (
	"errors"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/guard"
)

var ErrRegisterTailorCommandIsNotConstructed = errors.New(
	"RegisterTailorCommand must be created via NewRegisterTailorCommand constructor",
)

// RegisterTailorCommand adds a tailor to the roster. Name and phone are validated by the
// tailor aggregate.
type RegisterTailorCommand struct { //nolint:recvcheck //using for validation
	actor    actor.Actor
	tailorID kernel.UUID
	name     string
	phone    string

	guard guard.ConstructorGuard
}

func NewRegisterTailorCommand(by actor.Actor, tailorID kernel.UUID, name, phone string) (RegisterTailorCommand, error) {
	if err := errors.Join(by.Validate(), tailorID.Validate()); err != nil {
		return RegisterTailorCommand{}, err
	}

	return RegisterTailorCommand{
		actor:    by,
		tailorID: tailorID,
		name:     name,
		phone:    phone,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterTailorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTailorCommandIsNotConstructed)
}

func (c RegisterTailorCommand) Actor() actor.Actor    { return c.actor }
func (c RegisterTailorCommand) TailorID() kernel.UUID { return c.tailorID }
func (c RegisterTailorCommand) Name() string          { return c.name }
func (c RegisterTailorCommand) Phone() string         { return c.phone }
