package commands

import (
	"context"

	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/services"
)

// PlaceOrderCommandHandler prices a customer's selection and stores the new order in
// PendingAssignment.
type PlaceOrderCommandHandler struct {
	uowFactory       OrderUoWFactory
	calculator       *services.PriceCalculator
	clock            services.Clock
	requireAddresses bool
}

// NewPlaceOrderCommandHandler creates the handler. With requireAddresses set, orders without a
// pickup and delivery address are rejected.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	calculator *services.PriceCalculator,
	clock services.Clock,
	requireAddresses bool,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:       uowFactory,
		calculator:       calculator,
		clock:            clock,
		requireAddresses: requireAddresses,
	}
}

// Handle checks the actor first, then the selection against the catalog, and persists the order
// with the server-side price.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := order.CanPlace(cmd.Actor()); err != nil {
		return err
	}

	if h.requireAddresses && cmd.Addresses().IsEmpty() {
		return ErrAddressesAreRequired
	}

	quote, err := h.calculator.Quote(cmd.Selection())
	if err != nil {
		return err
	}

	if err = services.CheckMeasurements(quote.Category, cmd.Measurement()); err != nil {
		return err
	}

	addOns := make([]order.AddOn, 0, len(quote.AddOns))
	for _, a := range quote.AddOns {
		addOn, addOnErr := order.NewAddOn(a.ID, a.Name, a.Price)
		if addOnErr != nil {
			return addOnErr
		}
		addOns = append(addOns, addOn)
	}

	garment, err := order.NewGarment(quote.Category.Name, quote.Design.Name, addOns)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Actor(), order.Placement{
		CustomerContact: cmd.CustomerContact(),
		Garment:         garment,
		DeliveryDate:    quote.DeliveryDate,
		Measurement:     cmd.Measurement(),
		Addresses:       cmd.Addresses(),
		Price:           quote.Price,
	}, h.clock())
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

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
