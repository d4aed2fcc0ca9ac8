package queries_test

import (
	"errors"
	"testing"

	"martdelivery/internal/core/application/usecases/queries"
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/core/domain/services"
	"martdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewGetOptimizedBatchQuery_RequiresMart(t *testing.T) {
	_, err := queries.NewGetOptimizedBatchQuery(kernel.UUID{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero queries.GetOptimizedBatchQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetOptimizedBatchQueryIsNotConstructed)
}

func TestGetOptimizedBatchQueryHandler_Handle_PlansNearestNeighbourRoute(t *testing.T) {
	ctx := t.Context()
	m := newMart(t, newPoint(t, 0, 0))
	far := newPendingOrder(t, m.ID(), newPoint(t, 0, 0.002))
	near := newPendingOrder(t, m.ID(), newPoint(t, 0, 0.001))

	factory, orders, marts := newRepositories()
	marts.On("Get", ctx, m.ID()).Return(m, nil).Once()
	orders.On("FindPendingByMart", ctx, m.ID()).Return([]*order.Order{far, near}, nil).Once()

	query, err := queries.NewGetOptimizedBatchQuery(m.ID())
	require.NoError(t, err)

	h := queries.NewGetOptimizedBatchQueryHandler(factory, services.NewRoutePlanner())
	resp, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, m.ID(), resp.Mart.ID)
	assert.Equal(t, "Fresh Mart", resp.Mart.Name)
	assert.Equal(t, queries.Point{Lon: 0, Lat: 0}, resp.Mart.Location)
	require.Len(t, resp.Route, 2)
	assert.Equal(t, near.ID(), resp.Route[0].Order.ID())
	assert.Equal(t, far.ID(), resp.Route[1].Order.ID())
	assert.Equal(t, "111 m", resp.Route[0].Distance)
	assert.Equal(t, "111 m", resp.Route[1].Distance)
	assert.InDelta(t, 222.4, resp.TotalDistanceMeters, 0.5)
	assert.Equal(t, "222 m", resp.TotalDistance)
	orders.AssertExpectations(t)
	marts.AssertExpectations(t)
}

func TestGetOptimizedBatchQueryHandler_Handle_NoPendingOrders(t *testing.T) {
	ctx := t.Context()
	m := newMart(t, newPoint(t, 77.6, 12.97))

	factory, orders, marts := newRepositories()
	marts.On("Get", ctx, m.ID()).Return(m, nil)
	orders.On("FindPendingByMart", ctx, m.ID()).Return([]*order.Order{}, nil)

	query, err := queries.NewGetOptimizedBatchQuery(m.ID())
	require.NoError(t, err)

	h := queries.NewGetOptimizedBatchQueryHandler(factory, services.NewRoutePlanner())
	resp, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.NotNil(t, resp.Route)
	assert.Empty(t, resp.Route)
	assert.Equal(t, "0 m", resp.TotalDistance)
}

func TestGetOptimizedBatchQueryHandler_Handle_MartWithoutLocation(t *testing.T) {
	ctx := t.Context()
	m := newMart(t, kernel.GeoPoint{})

	factory, orders, marts := newRepositories()
	marts.On("Get", ctx, m.ID()).Return(m, nil)

	query, err := queries.NewGetOptimizedBatchQuery(m.ID())
	require.NoError(t, err)

	h := queries.NewGetOptimizedBatchQueryHandler(factory, services.NewRoutePlanner())
	_, err = h.Handle(ctx, query)

	require.ErrorIs(t, err, mart.ErrMartHasNoLocation)
	require.ErrorIs(t, err, errs.ErrInvalidMart)
	orders.AssertNotCalled(t, "FindPendingByMart", mock.Anything, mock.Anything)
}

func TestGetOptimizedBatchQueryHandler_Handle_MartNotFound(t *testing.T) {
	ctx := t.Context()
	martID := kernel.NewUUID()

	factory, _, marts := newRepositories()
	marts.On("Get", ctx, martID).Return(nil, errs.NewObjectNotFoundError("martId", martID))

	query, err := queries.NewGetOptimizedBatchQuery(martID)
	require.NoError(t, err)

	h := queries.NewGetOptimizedBatchQueryHandler(factory, services.NewRoutePlanner())
	_, err = h.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOptimizedBatchQueryHandler_Handle_StorageFailure(t *testing.T) {
	ctx := t.Context()
	m := newMart(t, newPoint(t, 1, 1))

	factory, orders, marts := newRepositories()
	marts.On("Get", ctx, m.ID()).Return(m, nil)
	orders.On("FindPendingByMart", ctx, m.ID()).
		Return(nil, errs.NewStorageUnavailableError("find pending orders", errors.New("timeout")))

	query, err := queries.NewGetOptimizedBatchQuery(m.ID())
	require.NoError(t, err)

	h := queries.NewGetOptimizedBatchQueryHandler(factory, services.NewRoutePlanner())
	_, err = h.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}
