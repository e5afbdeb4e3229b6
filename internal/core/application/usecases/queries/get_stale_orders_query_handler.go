package queries

import (
	"context"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetStaleOrdersQueryHandler struct {
	db    *gorm.DB
	clock func() time.Time
}

// NewGetStaleOrdersQueryHandler creates the handler; a nil clock means time.Now.
func NewGetStaleOrdersQueryHandler(db *gorm.DB, clock func() time.Time) GetStaleOrdersQueryHandler {
	if clock == nil {
		clock = time.Now
	}
	return GetStaleOrdersQueryHandler{db: db, clock: clock}
}

// Handle returns the stale orders, the longest waiting first.
func (h GetStaleOrdersQueryHandler) Handle(ctx context.Context, query GetStaleOrdersQuery) ([]StaleOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := h.clock().UTC().Add(-query.OlderThan())

	var rows []struct {
		ID        uuid.UUID
		Status    int
		UpdatedAt time.Time
	}
	err := h.db.WithContext(ctx).
		Table("orders").
		Select("id, status, updated_at").
		Where("status = ? AND updated_at < ?", int(query.Status()), cutoff).
		Order("updated_at").
		Order("id").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStoreFailureError("select stale orders", err)
	}

	stale := make([]StaleOrderView, 0, len(rows))
	for _, r := range rows {
		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, errs.NewStoreFailureError("decode order", idErr)
		}
		stale = append(stale, StaleOrderView{
			ID:        id,
			Status:    order.Status(r.Status),
			UpdatedAt: r.UpdatedAt.UTC(),
		})
	}
	return stale, nil
}
