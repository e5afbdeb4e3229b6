package commands

import (
	"context"

	"tailoring/internal/core/domain/services"
)

// ChangeStatusCommandHandler runs StartWork, CompleteWork or Approve depending on the target.
type ChangeStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      services.Clock
}

func NewChangeStatusCommandHandler(uowFactory OrderUoWFactory, clock services.Clock) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Actor(), cmd.Target(), h.clock()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
