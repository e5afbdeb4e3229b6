package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "tailoring/internal/adapters/out/postgres"
	"tailoring/internal/adapters/out/postgres/orderrepo"
	"tailoring/internal/adapters/out/postgres/tailorrepo"
	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/model/pricing"
	"tailoring/internal/core/domain/model/tailor"
	"tailoring/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var placedAt = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockEventPublisher
	factory   ports.UnitOfWorkFactory

	customer actor.Actor
	admin    actor.Actor
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &tailorrepo.UserDTO{})
	suite.Require().NoError(err)

	suite.customer, err = actor.NewActor(kernel.NewUUID(), actor.Customer)
	suite.Require().NoError(err)
	suite.admin, err = actor.NewActor(kernel.NewUUID(), actor.Admin)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, users").Error
	suite.Require().NoError(err)

	suite.publisher = new(MockEventPublisher)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, zap.NewNop())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.TailorRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.TailorRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Commit_PublishesEventsInOrder() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(o.AssignTailor(suite.admin, kernel.NewUUID(), kernel.MustMoney(400), placedAt.Add(time.Minute)))

	var published []order.Event
	suite.publisher.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(1).([]order.Event) }).
		Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Len(published, 2)
	suite.Equal(order.EventPlaced, published[0].Type)
	suite.Equal(order.EventTailorAssigned, published[1].Type)
	suite.True(o.ID().IsEqual(published[1].OrderID))
	suite.Empty(o.DomainEvents(), "published events should be cleared")
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Commit_PublishFailureKeepsChanges() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := suite.T().Context()
	meena, err := tailor.NewTailor(kernel.NewUUID(), "Meena", "+91 98765 43212")
	suite.Require().NoError(err)
	o := suite.newOrder()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TailorRepository().Add(ctx, meena))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(o.AssignTailor(suite.admin, meena.ID(), kernel.MustMoney(450), placedAt.Add(time.Hour)))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(meena.ID().IsEqual(*retrievedOrder.AssignedTailorID()))

	retrievedTailor, err := newUow.TailorRepository().Get(ctx, meena.ID())
	suite.Require().NoError(err)
	suite.Equal("Meena", retrievedTailor.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := suite.T().Context()
	meena, err := tailor.NewTailor(kernel.NewUUID(), "Meena", "+91 98765 43212")
	suite.Require().NoError(err)
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.TailorRepository().Add(ctx, meena))

	_, err = uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	_, err = newUow.TailorRepository().Get(ctx, meena.ID())
	suite.Require().Error(err, "Tailor should not exist after rollback")

	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := suite.T().Context()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := suite.newOrder()
	order2 := suite.newOrder()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	o := suite.newOrder()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	retrievedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(retrievedOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	garment, err := order.NewGarment("Shirt", "Formal", nil)
	suite.Require().NoError(err)
	m, err := order.NewCustomMeasurement(map[string]float64{"chest": 40}, false)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), suite.customer, order.Placement{
		CustomerContact: "+91 98765 43210",
		Garment:         garment,
		DeliveryDate:    time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Measurement:     m,
		Price: pricing.NewBreakdown(
			kernel.MustMoney(600),
			kernel.Zero(),
			kernel.Zero(),
			kernel.Zero(),
		),
	}, placedAt)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
