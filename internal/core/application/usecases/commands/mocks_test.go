package commands_test

import (
	"context"
	"testing"
	"time"

	"martdelivery/internal/core/application/usecases/commands"
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

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MartRepository() ports.MartRepository {
	return m.Called().Get(0).(ports.MartRepository)
}

func (m *MockUoW) CommittedOrders() []*order.Order {
	orders, _ := m.Called().Get(0).([]*order.Order)
	return orders
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockMartUoWFactory struct{ mock.Mock }

func (m *MockMartUoWFactory) Create() commands.MartUoW {
	return m.Called().Get(0).(commands.MartUoW)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Resolve(ctx context.Context, address string) (ports.GeocodeResult, error) {
	args := m.Called(ctx, address)
	result, _ := args.Get(0).(ports.GeocodeResult)
	return result, args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	return m.Called(ctx, event).Error(0)
}

func newPoint(t *testing.T, lon, lat float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lon, lat)
	require.NoError(t, err)
	return p
}

func newItems(t *testing.T) []order.Item {
	t.Helper()
	milk, err := order.NewItem(kernel.NewUUID(), 2, 30.5)
	require.NoError(t, err)
	bread, err := order.NewItem(kernel.NewUUID(), 1, 45)
	require.NoError(t, err)
	return []order.Item{milk, bread}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), newItems(t),
		order.Address{Street: "12 MG Road", Location: newPoint(t, 77.59, 12.97)}, "+919876543210", time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newMart(t *testing.T, location kernel.GeoPoint) *mart.Mart {
	t.Helper()
	m, err := mart.NewMart(kernel.NewUUID(), kernel.NewUUID(), "Fresh Mart", "MG Road, Bengaluru", location, time.Now().UTC())
	require.NoError(t, err)
	return m
}
