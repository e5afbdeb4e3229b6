package commands_test

import (
	"context"
	"testing"
	"time"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/model/pricing"
	"tailoring/internal/core/domain/model/tailor"
	"tailoring/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTailorRepository struct{ mock.Mock }

func (m *MockTailorRepository) Add(ctx context.Context, t *tailor.Tailor) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tailor.Tailor), args.Error(1)
}

func (m *MockTailorRepository) GetAll(ctx context.Context) ([]*tailor.Tailor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tailor.Tailor), args.Error(1)
}

type MockTailorUoW struct{ mock.Mock }

func (m *MockTailorUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTailorUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTailorUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTailorUoW) TailorRepository() ports.TailorRepository {
	args := m.Called()
	return args.Get(0).(ports.TailorRepository)
}

type MockTailorUoWFactory struct{ mock.Mock }

func (m *MockTailorUoWFactory) Create() commands.TailorUoW {
	args := m.Called()
	return args.Get(0).(commands.TailorUoW)
}

type MockTailorDirectory struct{ mock.Mock }

func (m *MockTailorDirectory) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tailor.Tailor), args.Error(1)
}

func newTestActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	garment, err := order.NewGarment("Shirt", "Formal", nil)
	require.NoError(t, err)
	measurement, err := order.NewCustomMeasurement(map[string]float64{"chest": 40}, false)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), newTestActor(t, actor.Customer), order.Placement{
		CustomerContact: "+91 98765 43210",
		Garment:         garment,
		DeliveryDate:    now.AddDate(0, 0, 7),
		Measurement:     measurement,
		Price:           pricing.NewBreakdown(kernel.MustMoney(600), kernel.Zero(), kernel.Zero(), kernel.Zero()),
	}, now.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func newAssignedOrder(t *testing.T) (*order.Order, actor.Actor) {
	t.Helper()
	o := newPendingOrder(t)
	tailorActor := newTestActor(t, actor.Tailor)
	require.NoError(t, o.AssignTailor(newTestActor(t, actor.Admin), tailorActor.ID(), kernel.MustMoney(300), now))
	return o, tailorActor
}

// expectOrderTransaction wires the happy-path unit of work around a loaded order.
func expectOrderTransaction(
	ctx context.Context,
	o *order.Order,
) (*MockOrderRepository, *MockOrderUoW, *MockOrderUoWFactory) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
	)
	return repo, uow, factory
}
