package commands

import (
	"context"

	"tailoring/internal/core/domain/services"
)

// UpdateDeliveryCommandHandler dispatches or closes the delivery of a Completed order.
type UpdateDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      services.Clock
}

func NewUpdateDeliveryCommandHandler(uowFactory OrderUoWFactory, clock services.Clock) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
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

	if err = o.ChangeDeliveryStatus(cmd.Actor(), cmd.Target(), cmd.Notes(), h.clock()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
