package commands

import (
	"errors"
	"strings"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/services"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrAddressesAreRequired = errs.NewValueIsRequiredErrorWithCause(
		"addresses",
		errors.New("pickup and delivery addresses are required"),
	)
)

// PlaceOrderCommand is a customer's request to place an order. Prices are never part of the
// command; the handler prices the selection from the catalog.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customer, kernel.NewUUID(), "+91 98765 43210",
//	    services.Selection{CategoryID: "blouse", DesignID: "high-neck", DeliveryDate: date},
//	    measurement, order.Addresses{})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	actor           actor.Actor
	orderID         kernel.UUID
	customerContact string
	selection       services.Selection
	measurement     order.MeasurementData
	addresses       order.Addresses

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	by actor.Actor,
	orderID kernel.UUID,
	customerContact string,
	selection services.Selection,
	measurement order.MeasurementData,
	addresses order.Addresses,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		addresses: addresses,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(by),
		cmd.setOrderID(orderID),
		cmd.setCustomerContact(customerContact),
		cmd.setSelection(selection),
		cmd.setMeasurement(measurement),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Actor() actor.Actor                 { return c.actor }
func (c PlaceOrderCommand) OrderID() kernel.UUID               { return c.orderID }
func (c PlaceOrderCommand) CustomerContact() string            { return c.customerContact }
func (c PlaceOrderCommand) Selection() services.Selection      { return c.selection }
func (c PlaceOrderCommand) Measurement() order.MeasurementData { return c.measurement }
func (c PlaceOrderCommand) Addresses() order.Addresses         { return c.addresses }

func (c *PlaceOrderCommand) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	c.actor = by
	return nil
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerContact(contact string) error {
	if strings.TrimSpace(contact) == "" {
		return order.ErrCustomerContactIsRequired
	}
	c.customerContact = strings.TrimSpace(contact)
	return nil
}

func (c *PlaceOrderCommand) setSelection(sel services.Selection) error {
	var problems []error
	if strings.TrimSpace(sel.CategoryID) == "" {
		problems = append(problems, order.ErrCategoryIsRequired)
	}
	if strings.TrimSpace(sel.DesignID) == "" {
		problems = append(problems, order.ErrDesignIsRequired)
	}
	if sel.DeliveryDate.IsZero() {
		problems = append(problems, order.ErrDeliveryDateIsRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	sel.AddOnIDs = append([]string(nil), sel.AddOnIDs...)
	c.selection = sel
	return nil
}

func (c *PlaceOrderCommand) setMeasurement(m order.MeasurementData) error {
	if m == nil {
		return order.ErrMeasurementIsRequired
	}
	if err := m.Validate(); err != nil {
		return err
	}
	c.measurement = m
	return nil
}
