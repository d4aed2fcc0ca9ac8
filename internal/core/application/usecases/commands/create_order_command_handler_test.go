package commands_test

import (
	"errors"
	"testing"

	"martdelivery/internal/core/application/usecases/commands"
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/core/ports"
	"martdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), newItems(t),
		"12 MG Road, Bengaluru", "+919876543210")
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)
	resolved := ports.GeocodeResult{
		Point:            newPoint(t, 77.5946, 12.9716),
		Components:       ports.AddressComponents{City: "Bengaluru", State: "Karnataka", Country: "India"},
		FormattedAddress: "12 MG Road, Bengaluru, Karnataka 560001, India",
	}

	martRepo := new(MockMartRepository)
	orderRepo := new(MockOrderRepository)
	geocoder := new(MockGeocoder)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("MartRepository").Return(martRepo).Once(),
		martRepo.On("Get", ctx, cmd.MartID()).Return(newMart(t, newPoint(t, 77.6, 12.9)), nil).Once(),
		geocoder.On("Resolve", ctx, "12 MG Road, Bengaluru").Return(resolved, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, geocoder)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.OrderID(), created.ID())
	assert.Equal(t, order.Pending, created.Status())
	require.Len(t, created.History(), 1)
	assert.InDelta(t, 106.0, created.Total(), 1e-9)
	assert.Equal(t, "560001", created.Address().PostalCode)
	assert.Equal(t, "Bengaluru", created.Address().City)
	assert.Equal(t, resolved.Point, created.Location())
	mock.AssertExpectationsForObjects(t, factory, uow, martRepo, orderRepo, geocoder)
}

func TestCreateOrderCommandHandler_Handle_AddressNotFoundPersistsNothing(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	martRepo := new(MockMartRepository)
	geocoder := new(MockGeocoder)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("MartRepository").Return(martRepo).Once(),
		martRepo.On("Get", ctx, cmd.MartID()).Return(newMart(t, kernel.GeoPoint{}), nil).Once(),
		geocoder.On("Resolve", ctx, cmd.AddressText()).Return(nil, ports.ErrAddressNotFound).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, geocoder)
	created, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrAddressNotFound)
	assert.Nil(t, created)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	uow.AssertNotCalled(t, "OrderRepository")
	mock.AssertExpectationsForObjects(t, factory, uow, martRepo, geocoder)
}

func TestCreateOrderCommandHandler_Handle_MartNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	martRepo := new(MockMartRepository)
	geocoder := new(MockGeocoder)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("MartRepository").Return(martRepo).Once()
	martRepo.On("Get", ctx, cmd.MartID()).Return(nil, errs.NewObjectNotFoundError("mart", cmd.MartID().String())).Once()

	h := commands.NewCreateOrderCommandHandler(factory, geocoder)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	geocoder.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockUoWFactory), new(MockGeocoder))

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)
	storageErr := errs.NewStorageUnavailableError("add order", errors.New("connection reset"))

	martRepo := new(MockMartRepository)
	orderRepo := new(MockOrderRepository)
	geocoder := new(MockGeocoder)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("MartRepository").Return(martRepo).Once(),
		martRepo.On("Get", ctx, cmd.MartID()).Return(newMart(t, kernel.GeoPoint{}), nil).Once(),
		geocoder.On("Resolve", ctx, cmd.AddressText()).
			Return(ports.GeocodeResult{Point: newPoint(t, 1, 1)}, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(storageErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, geocoder)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	mock.AssertExpectationsForObjects(t, factory, uow, martRepo, orderRepo, geocoder)
}
