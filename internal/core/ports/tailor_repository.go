package ports

import (
	"context"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/tailor"
)

// TailorRepository persists the tailor roster.
type TailorRepository interface {
	Add(ctx context.Context, aggregate *tailor.Tailor) error
	Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error)
	GetAll(ctx context.Context) ([]*tailor.Tailor, error)
}

// TailorDirectory answers "does this tailor exist" outside of a transaction. Implementations may
// cache; a missing tailor is reported as ObjectNotFound.
type TailorDirectory interface {
	Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error)
}
