package order

import (
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
)

// Addresses references the pickup and delivery addresses owned by the address collaborator.
// Either both are present or neither is. The zero value means no addresses.
type Addresses struct {
	pickupID   *kernel.UUID
	deliveryID *kernel.UUID
}

// NewAddresses accepts both ids or neither; a single id is a validation error.
func NewAddresses(pickupID, deliveryID *kernel.UUID) (Addresses, error) {
	if pickupID == nil && deliveryID == nil {
		return Addresses{}, nil
	}
	if pickupID == nil || deliveryID == nil {
		return Addresses{}, errs.NewValueIsInvalidErrorWithCause(
			"addresses",
			errors.New("pickup and delivery addresses must be given together"),
		)
	}
	if err := errors.Join(pickupID.Validate(), deliveryID.Validate()); err != nil {
		return Addresses{}, errs.NewValueIsInvalidErrorWithCause("addresses", err)
	}

	p, d := *pickupID, *deliveryID
	return Addresses{pickupID: &p, deliveryID: &d}, nil
}

// IsEmpty reports an address-less order.
func (a Addresses) IsEmpty() bool {
	return a.pickupID == nil
}

func (a Addresses) PickupID() *kernel.UUID {
	if a.pickupID == nil {
		return nil
	}
	id := *a.pickupID
	return &id
}

func (a Addresses) DeliveryID() *kernel.UUID {
	if a.deliveryID == nil {
		return nil
	}
	id := *a.deliveryID
	return &id
}
