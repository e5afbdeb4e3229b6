package queries

import (
	"context"
	"errors"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/ports"
	"tailoring/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler loads a single order. Admins additionally get the pickup and delivery
// addresses resolved through the address book.
type GetOrderQueryHandler struct {
	db        *gorm.DB
	addresses ports.AddressBook
}

func NewGetOrderQueryHandler(db *gorm.DB, addresses ports.AddressBook) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, addresses: addresses}
}

// Handle returns ObjectNotFound for unknown ids and ActionIsForbidden when the actor is neither
// the customer, the assigned tailor nor an admin. Address lookups that fail leave the address
// unset; the order itself is still returned.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Select(orderColumns).
		Where("id = ?", query.OrderID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderView{}, errs.NewStoreFailureError("select order", err)
	}

	view, err := row.toView()
	if err != nil {
		return OrderView{}, err
	}
	if !view.VisibleTo(query.Actor()) {
		return OrderView{}, errs.NewActionIsForbiddenError("view order")
	}

	if query.Actor().Is(actor.Admin) && h.addresses != nil {
		view.PickupAddress = h.lookup(ctx, view.PickupAddressID)
		view.DeliveryAddress = h.lookup(ctx, view.DeliveryAddressID)
	}

	return view, nil
}

func (h GetOrderQueryHandler) lookup(ctx context.Context, id *kernel.UUID) *ports.Address {
	if id == nil {
		return nil
	}
	address, err := h.addresses.Get(ctx, *id)
	if err != nil {
		return nil
	}
	return &address
}
