package tailorrepo_test

import (
	"context"
	"testing"
	"time"

	"tailoring/internal/adapters/out/postgres/tailorrepo"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/tailor"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type TailorRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tailorrepo.GormTailorRepository
	tracker    *MockAggregateTracker
}

func (suite *TailorRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&tailorrepo.UserDTO{}))
}

func (suite *TailorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = tailorrepo.NewGormTailorRepository(suite.db, suite.tracker)
}

func (suite *TailorRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TailorRepositoryIntegrationTestSuite) TestAdd_ThenGet_ReturnsTailor() {
	ctx := suite.T().Context()
	meena := suite.newTailor("Meena", "+91 98765 43212")

	suite.Require().NoError(suite.repository.Add(ctx, meena))

	got, err := suite.repository.Get(ctx, meena.ID())
	suite.Require().NoError(err)
	suite.True(meena.IsEqual(got))
	suite.Equal("Meena", got.Name())
	suite.Equal("+91 98765 43212", got.Phone())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", meena.ID(), meena)
}

func (suite *TailorRepositoryIntegrationTestSuite) TestAdd_DuplicatePhone_ReturnsConflict() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTailor("Meena", "+91 98765 43212")))

	err := suite.repository.Add(ctx, suite.newTailor("Ravi", "+91 98765 43212"))

	suite.Require().ErrorIs(err, errs.ErrStoreFailure)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *TailorRepositoryIntegrationTestSuite) TestGet_UserWithOtherRole_ReturnsNotFound() {
	ctx := suite.T().Context()
	customerID := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&tailorrepo.UserDTO{
		ID:        customerID.Bytes(),
		Name:      "Priya",
		Phone:     "+91 98765 43210",
		Role:      "customer",
		CreatedAt: time.Now(),
	}).Error)

	got, err := suite.repository.Get(ctx, customerID)

	suite.Nil(got)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TailorRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	got, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())

	suite.Nil(got)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("tailor", notFound.ParamName)
}

func (suite *TailorRepositoryIntegrationTestSuite) TestGetAll_ReturnsTailorsOrderedByName() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTailor("Ravi", "+91 90000 00002")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTailor("Anita", "+91 90000 00001")))
	suite.Require().NoError(suite.db.Create(&tailorrepo.UserDTO{
		ID:        kernel.NewUUID().Bytes(),
		Name:      "Admin",
		Phone:     "+91 90000 00000",
		Role:      "admin",
		CreatedAt: time.Now(),
	}).Error)

	tailors, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(tailors, 2)
	suite.Equal("Anita", tailors[0].Name())
	suite.Equal("Ravi", tailors[1].Name())
}

func (suite *TailorRepositoryIntegrationTestSuite) TestGetAll_EmptyRoster_ReturnsEmptySlice() {
	tailors, err := suite.repository.GetAll(suite.T().Context())

	suite.Require().NoError(err)
	suite.NotNil(tailors)
	suite.Empty(tailors)
}

func (suite *TailorRepositoryIntegrationTestSuite) newTailor(name, phone string) *tailor.Tailor {
	t, err := tailor.NewTailor(kernel.NewUUID(), name, phone)
	suite.Require().NoError(err)
	return t
}

func TestTailorRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TailorRepositoryIntegrationTestSuite))
}
