package cmd

import (
	"context"
	"time"

	"tailoring/internal/adapters/out/postgres/tailorrepo"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// demoUsers have fixed ids so that local clients can send them as X-User-ID.
var demoUsers = []tailorrepo.UserDTO{
	{ID: uuid.MustParse("00000000-0000-4000-8000-000000000001"), Name: "Demo Customer", Phone: "+91 98765 43210", Role: "customer"},
	{ID: uuid.MustParse("00000000-0000-4000-8000-000000000002"), Name: "Demo Admin", Phone: "+91 98765 43211", Role: "admin"},
	{ID: uuid.MustParse("00000000-0000-4000-8000-000000000003"), Name: "Demo Tailor", Phone: "+91 98765 43212", Role: "tailor"},
}

// Seeder creates the demo customer, admin and tailor for local setups.
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// Users inserts the demo users, skipping phones that already exist.
func (s *Seeder) Users(ctx context.Context) ([]tailorrepo.UserDTO, error) {
	now := time.Now().UTC()
	seeded := make([]tailorrepo.UserDTO, 0, len(demoUsers))
	for _, u := range demoUsers {
		user := u
		user.CreatedAt = now
		if err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&user).Error; err != nil {
			return nil, err
		}
		seeded = append(seeded, user)
	}

	s.logger.Info("seeded users", zap.Int("count", len(seeded)))
	return seeded, nil
}
