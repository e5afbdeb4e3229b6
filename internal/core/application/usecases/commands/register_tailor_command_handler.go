package commands

import (
	"context"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/tailor"
	"tailoring/internal/pkg/errs"
)

// RegisterTailorCommandHandler lets an admin add a tailor to the roster.
//
// Example:
//
//	handler := NewRegisterTailorCommandHandler(uowFactory)
//	cmd, _ := NewRegisterTailorCommand(admin, kernel.NewUUID(), "Meena", "+91 98765 43212")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("tailor registration failed: %w", err)
//	}
type RegisterTailorCommandHandler struct {
	uowFactory TailorUoWFactory
}

func NewRegisterTailorCommandHandler(uowFactory TailorUoWFactory) RegisterTailorCommandHandler {
	return RegisterTailorCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterTailorCommandHandler) Handle(ctx context.Context, cmd RegisterTailorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(actor.Admin) {
		return errs.NewActionIsForbiddenError("register tailor")
	}

	t, err := tailor.NewTailor(cmd.TailorID(), cmd.Name(), cmd.Phone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TailorRepository().Add(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
