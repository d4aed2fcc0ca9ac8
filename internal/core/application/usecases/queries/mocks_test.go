package queries_test

import (
	"context"
	"testing"
	"time"

	"martdelivery/internal/core/application/usecases/queries"
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindPendingByMart(ctx context.Context, martID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, martID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockMartRepository struct{ mock.Mock }

func (m *MockMartRepository) Add(ctx context.Context, a *mart.Mart) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockMartRepository) Update(ctx context.Context, a *mart.Mart) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockMartRepository) Get(ctx context.Context, id kernel.UUID) (*mart.Mart, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*mart.Mart)
	return a, args.Error(1)
}

func (m *MockMartRepository) FindByOwner(ctx context.Context, ownerID kernel.UUID) ([]*mart.Mart, error) {
	args := m.Called(ctx, ownerID)
	marts, _ := args.Get(0).([]*mart.Mart)
	return marts, args.Error(1)
}

func (m *MockMartRepository) FindWithoutLocation(ctx context.Context, limit int) ([]*mart.Mart, error) {
	args := m.Called(ctx, limit)
	marts, _ := args.Get(0).([]*mart.Mart)
	return marts, args.Error(1)
}

type stubRepositories struct {
	orders *MockOrderRepository
	marts  *MockMartRepository
}

func (s stubRepositories) OrderRepository() ports.OrderRepository {
	return s.orders
}

func (s stubRepositories) MartRepository() ports.MartRepository {
	return s.marts
}

type stubRepositoriesFactory struct {
	repos stubRepositories
}

func (f stubRepositoriesFactory) Create() queries.Repositories {
	return f.repos
}

func newRepositories() (stubRepositoriesFactory, *MockOrderRepository, *MockMartRepository) {
	orders := new(MockOrderRepository)
	marts := new(MockMartRepository)
	return stubRepositoriesFactory{repos: stubRepositories{orders: orders, marts: marts}}, orders, marts
}

func newPoint(t *testing.T, lon, lat float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lon, lat)
	require.NoError(t, err)
	return p
}

func newMart(t *testing.T, location kernel.GeoPoint) *mart.Mart {
	t.Helper()
	m, err := mart.NewMart(kernel.NewUUID(), kernel.NewUUID(), "Fresh Mart", "MG Road, Bengaluru", location, time.Now().UTC())
	require.NoError(t, err)
	return m
}

func newPendingOrder(t *testing.T, martID kernel.UUID, location kernel.GeoPoint) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 1, 10)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), martID, []order.Item{item},
		order.Address{Street: "12 MG Road", Location: location}, "+919876543210", time.Now().UTC())
	require.NoError(t, err)
	return o
}
