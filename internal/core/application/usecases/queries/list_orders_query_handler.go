package queries

import (
	"context"

	"tailoring/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler runs role-scoped listings against the orders table.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, err := NewTailorWorklistQuery(tailorID, order.InProgress)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the matching orders sorted by created_at descending with the id as tiebreak.
// An empty result is an empty slice, never nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders").Select(orderColumns)
	if query.customerID != nil {
		tx = tx.Where("customer_id = ?", query.customerID.Bytes())
	}
	if query.tailorID != nil {
		tx = tx.Where("assigned_tailor_id = ?", query.tailorID.Bytes())
	}
	if len(query.statuses) > 0 {
		statuses := make([]int, 0, len(query.statuses))
		for _, s := range query.statuses {
			statuses = append(statuses, int(s))
		}
		tx = tx.Where("status IN ?", statuses)
	}

	var rows []orderRow
	if err := tx.Order("created_at DESC").Order("id DESC").Scan(&rows).Error; err != nil {
		return nil, errs.NewStoreFailureError("list orders", err)
	}

	return toViews(rows)
}
