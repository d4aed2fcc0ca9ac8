package queries_test

import (
	"context"
	"testing"
	"time"

	"martdelivery/internal/adapters/out/postgres"
	"martdelivery/internal/core/application/usecases/queries"
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetMartsByOwnerQueryHandlerTestSuite struct {
	suite.Suite
	container  *pgcontainer.PostgresContainer
	db         *gorm.DB
	handler    queries.GetMartsByOwnerQueryHandler
	uowFactory *postgres.GormUnitOfWorkFactory
}

func (suite *GetMartsByOwnerQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))

	suite.handler = queries.NewGetMartsByOwnerQueryHandler(db)
	suite.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GetMartsByOwnerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetMartsByOwnerQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE marts CASCADE").Error)
}

func (suite *GetMartsByOwnerQueryHandlerTestSuite) addMart(ownerID kernel.UUID, name string, location kernel.GeoPoint, createdAt time.Time) *mart.Mart {
	ctx := context.Background()
	m, err := mart.NewMart(kernel.NewUUID(), ownerID, name, name+" street", location, createdAt)
	suite.Require().NoError(err)

	uow := suite.uowFactory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.MartRepository().Add(ctx, m))
	suite.Require().NoError(uow.Commit(ctx))
	return m
}

func (suite *GetMartsByOwnerQueryHandlerTestSuite) TestHandle_NoMarts_ReturnsEmptySlice() {
	query, err := queries.NewGetMartsByOwnerQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetMartsByOwnerQueryHandlerTestSuite) TestHandle_ReturnsOwnersMartsInCreationOrder() {
	owner := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Second)
	location, err := kernel.NewGeoPoint(77.6, 12.97)
	suite.Require().NoError(err)

	second := suite.addMart(owner, "Second", kernel.GeoPoint{}, base.Add(time.Minute))
	first := suite.addMart(owner, "First", location, base)
	suite.addMart(kernel.NewUUID(), "Other owner", location, base)

	query, err := queries.NewGetMartsByOwnerQuery(owner)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(owner, result[0].OwnerID)
	suite.Require().NotNil(result[0].Location)
	suite.InDelta(77.6, result[0].Location.Lon, 1e-9)
	suite.InDelta(12.97, result[0].Location.Lat, 1e-9)
	suite.Equal(second.ID(), result[1].ID)
	suite.Nil(result[1].Location)
	suite.Equal("Second street", result[1].Address)
}

func TestGetMartsByOwnerQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetMartsByOwnerQueryHandlerTestSuite))
}
