package commands

import (
	"context"

	"tailoring/internal/core/domain/services"
	"tailoring/internal/core/ports"
)

// AssignTailorCommandHandler moves an order from PendingAssignment to Assigned.
//
// Example:
//
//	handler := NewAssignTailorCommandHandler(uowFactory, tailorDirectory, time.Now)
//	amount := kernel.MustMoney(700)
//	cmd, _ := NewAssignTailorCommand(admin, orderID, &tailorID, &amount)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type AssignTailorCommandHandler struct {
	uowFactory OrderUoWFactory
	tailors    ports.TailorDirectory
	clock      services.Clock
}

func NewAssignTailorCommandHandler(
	uowFactory OrderUoWFactory,
	tailors ports.TailorDirectory,
	clock services.Clock,
) AssignTailorCommandHandler {
	return AssignTailorCommandHandler{
		uowFactory: uowFactory,
		tailors:    tailors,
		clock:      clock,
	}
}

// Handle runs the transition on the loaded order first so that authorization, status and
// completeness errors win over an unknown tailor, then checks the tailor against the roster.
func (h *AssignTailorCommandHandler) Handle(ctx context.Context, cmd AssignTailorCommand) error {
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

	if err = o.AssignTailor(cmd.Actor(), cmd.TailorID(), cmd.Amount(), h.clock()); err != nil {
		return err
	}

	if _, err = h.tailors.Get(ctx, cmd.TailorID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
