package queries

import (
	"context"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetTailorsQueryHandler struct {
	db *gorm.DB
}

func NewGetTailorsQueryHandler(db *gorm.DB) GetTailorsQueryHandler {
	return GetTailorsQueryHandler{db: db}
}

// Handle returns every tailor ordered by name.
func (h GetTailorsQueryHandler) Handle(ctx context.Context, query GetTailorsQuery) ([]TailorView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tailors := make([]TailorView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone
		FROM users
		WHERE role = ?
		ORDER BY name, id
	`, "tailor").Rows()
	if err != nil {
		return nil, errs.NewStoreFailureError("select tailors", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var view TailorView

		if err = rows.Scan(&id, &view.Name, &view.Phone); err != nil {
			return nil, errs.NewStoreFailureError("scan tailor", err)
		}

		tailorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, errs.NewStoreFailureError("decode tailor", idErr)
		}
		view.ID = tailorID
		tailors = append(tailors, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreFailureError("select tailors", err)
	}

	return tailors, nil
}
