package martrepo_test

import (
	"context"
	"testing"
	"time"

	"martdelivery/internal/adapters/out/postgres/martrepo"
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
	"martdelivery/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type MartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *martrepo.GormMartRepository
	tracker    *MockAggregateTracker
}

func (suite *MartRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&martrepo.MartDTO{}))
}

func (suite *MartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE marts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = martrepo.NewGormMartRepository(suite.db, suite.tracker)
}

func (suite *MartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MartRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	m := suite.createMart(kernel.NewUUID(), true, time.Now().UTC())
	suite.tracker.On("TrackAggregate", m.ID(), m).Once()

	suite.Require().NoError(suite.repository.Add(ctx, m))

	restored, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal(m.ID(), restored.ID())
	suite.Equal(m.OwnerID(), restored.OwnerID())
	suite.Equal("Fresh Mart", restored.Name())
	suite.True(restored.HasLocation())
	location, err := restored.Location()
	suite.Require().NoError(err)
	suite.InDelta(77.5946, location.Lon(), 1e-9)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MartRepositoryIntegrationTestSuite) TestGet_NonExistentMart_ReturnsNotFoundError() {
	m, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(m)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MartRepositoryIntegrationTestSuite) TestUpdate_SetsLocation() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	m := suite.createMart(kernel.NewUUID(), false, time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, m))

	point, err := kernel.NewGeoPoint(2.3522, 48.8566)
	suite.Require().NoError(err)
	suite.Require().NoError(m.SetLocation(point))
	suite.Require().NoError(suite.repository.Update(ctx, m))

	restored, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.True(restored.HasLocation())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MartRepositoryIntegrationTestSuite) TestFindByOwner_And_FindWithoutLocation() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(4)
	owner := kernel.NewUUID()
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	located := suite.createMart(owner, true, base)
	unlocatedLater := suite.createMart(owner, false, base.Add(2*time.Hour))
	unlocatedEarlier := suite.createMart(kernel.NewUUID(), false, base.Add(time.Hour))
	other := suite.createMart(kernel.NewUUID(), true, base)
	for _, m := range []*mart.Mart{located, unlocatedLater, unlocatedEarlier, other} {
		suite.Require().NoError(suite.repository.Add(ctx, m))
	}

	owned, err := suite.repository.FindByOwner(ctx, owner)
	suite.Require().NoError(err)
	suite.Require().Len(owned, 2)
	suite.Equal(located.ID(), owned[0].ID())
	suite.Equal(unlocatedLater.ID(), owned[1].ID())

	missing, err := suite.repository.FindWithoutLocation(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(missing, 2)
	suite.Equal(unlocatedEarlier.ID(), missing[0].ID())
	suite.Equal(unlocatedLater.ID(), missing[1].ID())

	limited, err := suite.repository.FindWithoutLocation(ctx, 1)
	suite.Require().NoError(err)
	suite.Len(limited, 1)

	none, err := suite.repository.FindByOwner(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *MartRepositoryIntegrationTestSuite) TestGet_OutOfRangeCoordinates_ComeBackWithoutLocation() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	m := suite.createMart(kernel.NewUUID(), true, time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, m))
	suite.Require().NoError(suite.db.Exec("UPDATE marts SET lon = 200 WHERE id = ?", m.ID().Bytes()).Error)

	restored, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.False(restored.HasLocation())
	_, err = restored.Location()
	suite.Require().ErrorIs(err, errs.ErrInvalidMart)

	missing, err := suite.repository.FindWithoutLocation(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(missing, 1)
	suite.Equal(m.ID(), missing[0].ID())
}

func (suite *MartRepositoryIntegrationTestSuite) createMart(owner kernel.UUID, withLocation bool, at time.Time) *mart.Mart {
	var location kernel.GeoPoint
	if withLocation {
		var err error
		location, err = kernel.NewGeoPoint(77.5946, 12.9716)
		suite.Require().NoError(err)
	}

	m, err := mart.NewMart(kernel.NewUUID(), owner, "Fresh Mart", "MG Road, Bengaluru 560001", location, at)
	suite.Require().NoError(err)
	return m
}

func TestMartRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(MartRepositoryIntegrationTestSuite))
}
