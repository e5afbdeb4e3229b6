package ports

import (
	"context"

	"tailoring/internal/core/domain/model/kernel"
)

// Address is a postal address owned by the address service.
type Address struct {
	ID           kernel.UUID
	FullName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Pincode      string
	PhoneNumber  string
}

// AddressBook resolves address ids stored on orders. A missing address is ObjectNotFound.
type AddressBook interface {
	Get(ctx context.Context, id kernel.UUID) (Address, error)
}
