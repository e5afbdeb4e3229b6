package tailorrepo

import (
	"context"
	"errors"

	"tailoring/internal/adapters/out/postgres/dberr"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/tailor"
	"tailoring/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTailorRepository implements TailorRepository using GORM.
type GormTailorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTailorRepository(db *gorm.DB, tracker aggregateTracker) *GormTailorRepository {
	return &GormTailorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a tailor. A phone number already on the roster is a conflict.
func (r *GormTailorRepository) Add(ctx context.Context, aggregate *tailor.Tailor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Wrap("insert tailor", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id.Bytes(), roleTailor).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tailor", id.String())
		}
		return nil, dberr.Wrap("select tailor", err)
	}

	t, err := toDomain(dto)
	if err != nil {
		return nil, errs.NewStoreFailureError("decode tailor "+id.String(), err)
	}
	return t, nil
}

// GetAll lists the roster ordered by name.
func (r *GormTailorRepository) GetAll(ctx context.Context) ([]*tailor.Tailor, error) {
	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Where("role = ?", roleTailor).
		Order("name").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Wrap("select tailors", err)
	}

	tailors := make([]*tailor.Tailor, 0, len(dtos))
	for _, dto := range dtos {
		t, decodeErr := toDomain(dto)
		if decodeErr != nil {
			return nil, errs.NewStoreFailureError("decode tailor", decodeErr)
		}
		tailors = append(tailors, t)
	}
	return tailors, nil
}
