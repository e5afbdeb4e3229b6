package queries_test

import (
	"testing"
	"time"

	"tailoring/internal/adapters/out/postgres/orderrepo"
	"tailoring/internal/adapters/out/postgres/tailorrepo"
	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var placedAt = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// newTestDB opens a private in-memory database with the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&orderrepo.OrderDTO{}, &tailorrepo.UserDTO{}))
	return db
}

func newActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

// seeder writes orders through the real repository so rows look exactly like production ones.
type seeder struct {
	t     *testing.T
	repo  *orderrepo.GormOrderRepository
	admin actor.Actor
}

func newSeeder(t *testing.T, db *gorm.DB) *seeder {
	return &seeder{
		t:     t,
		repo:  orderrepo.NewGormOrderRepository(db, noopTracker{}),
		admin: newActor(t, actor.Admin),
	}
}

// place stores a new PendingAssignment order for the customer.
func (s *seeder) place(customer actor.Actor, at time.Time) *order.Order {
	s.t.Helper()
	return s.placeWithAddresses(customer, order.Addresses{}, at)
}

func (s *seeder) placeWithAddresses(customer actor.Actor, addresses order.Addresses, at time.Time) *order.Order {
	s.t.Helper()

	lace, err := order.NewAddOn("lacework", "Lacework", kernel.MustMoney(250))
	require.NoError(s.t, err)
	garment, err := order.NewGarment("Blouse", "Boat Neck", []order.AddOn{lace})
	require.NoError(s.t, err)
	m, err := order.NewCustomMeasurement(map[string]float64{"bust": 34}, false)
	require.NoError(s.t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customer, order.Placement{
		CustomerContact: "+91 98765 43210",
		Garment:         garment,
		DeliveryDate:    time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		Measurement:     m,
		Addresses:       addresses,
		Price: pricing.NewBreakdown(
			kernel.MustMoney(800),
			kernel.Zero(),
			kernel.MustMoney(250),
			kernel.Zero(),
		),
	}, at)
	require.NoError(s.t, err)
	require.NoError(s.t, s.repo.Add(s.t.Context(), o))
	return o
}

// advance moves a stored order forward to the target status using the real transitions.
func (s *seeder) advance(o *order.Order, tailor actor.Actor, target order.Status, at time.Time) {
	s.t.Helper()

	for o.Status() < target {
		at = at.Add(time.Minute)
		var err error
		switch o.Status() {
		case order.PendingAssignment:
			err = o.AssignTailor(s.admin, tailor.ID(), kernel.MustMoney(400), at)
		case order.Assigned:
			err = o.StartWork(tailor, at)
		case order.InProgress:
			err = o.CompleteWork(tailor, at)
		case order.CompletedByTailor:
			err = o.Approve(s.admin, at)
		case order.Unknown, order.Completed:
			s.t.Fatalf("cannot advance from %s", o.Status())
		}
		require.NoError(s.t, err)
	}
	require.NoError(s.t, s.repo.Update(s.t.Context(), o))
}

func orderIDs(views []queries.OrderView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID.String())
	}
	return out
}
