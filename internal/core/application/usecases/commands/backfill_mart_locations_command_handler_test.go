package commands_test

import (
	"errors"
	"testing"

	"martdelivery/internal/core/application/usecases/commands"
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
	"martdelivery/internal/core/ports"
	"martdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBackfillMartLocationsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBackfillMartLocationsCommand(10)
	require.NoError(t, err)

	resolvable := newMart(t, kernel.GeoPoint{})
	unknown := newMart(t, kernel.GeoPoint{})
	point := newPoint(t, 77.6, 12.97)

	listRepo := new(MockMartRepository)
	listUoW := new(MockUoW)
	txRepo := new(MockMartRepository)
	txUoW := new(MockUoW)
	factory := new(MockMartUoWFactory)
	geocoder := new(MockGeocoder)

	factory.On("Create").Return(listUoW).Once()
	listUoW.On("MartRepository").Return(listRepo).Once()
	listRepo.On("FindWithoutLocation", ctx, 10).Return([]*mart.Mart{unknown, resolvable}, nil).Once()

	geocoder.On("Resolve", ctx, unknown.Address()).Return(ports.GeocodeResult{}, ports.ErrAddressNotFound).Once()
	geocoder.On("Resolve", ctx, resolvable.Address()).Return(ports.GeocodeResult{Point: point}, nil).Once()

	factory.On("Create").Return(txUoW).Once()
	txUoW.On("Begin", ctx).Return(nil).Once()
	txUoW.On("MartRepository").Return(txRepo).Once()
	txRepo.On("Get", ctx, resolvable.ID()).Return(resolvable, nil).Once()
	txRepo.On("Update", ctx, resolvable).Return(nil).Once()
	txUoW.On("Commit", ctx).Return(nil).Once()
	txUoW.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewBackfillMartLocationsCommandHandler(factory, geocoder, discardLogger())
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, resolvable.HasLocation())
	assert.False(t, unknown.HasLocation())
	mock.AssertExpectationsForObjects(t, factory, listUoW, listRepo, txUoW, txRepo, geocoder)
}

func TestBackfillMartLocationsCommandHandler_Handle_StoreFailureIsSkipped(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBackfillMartLocationsCommand(5)
	require.NoError(t, err)
	m := newMart(t, kernel.GeoPoint{})

	listRepo := new(MockMartRepository)
	listUoW := new(MockUoW)
	txRepo := new(MockMartRepository)
	txUoW := new(MockUoW)
	factory := new(MockMartUoWFactory)
	geocoder := new(MockGeocoder)

	factory.On("Create").Return(listUoW).Once()
	listUoW.On("MartRepository").Return(listRepo).Once()
	listRepo.On("FindWithoutLocation", ctx, 5).Return([]*mart.Mart{m}, nil).Once()
	geocoder.On("Resolve", ctx, m.Address()).Return(ports.GeocodeResult{Point: newPoint(t, 1, 2)}, nil).Once()
	factory.On("Create").Return(txUoW).Once()
	txUoW.On("Begin", ctx).Return(nil).Once()
	txUoW.On("MartRepository").Return(txRepo).Once()
	txRepo.On("Get", ctx, m.ID()).Return(nil, errs.NewObjectNotFoundError("martId", m.ID())).Once()
	txUoW.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewBackfillMartLocationsCommandHandler(factory, geocoder, discardLogger())
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, count)
	txUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBackfillMartLocationsCommandHandler_Handle_ListFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBackfillMartLocationsCommand(5)
	require.NoError(t, err)
	storageErr := errs.NewStorageUnavailableError("find marts without location", errors.New("dial tcp: refused"))

	repo := new(MockMartRepository)
	uow := new(MockUoW)
	factory := new(MockMartUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("MartRepository").Return(repo).Once()
	repo.On("FindWithoutLocation", ctx, 5).Return(nil, storageErr).Once()

	h := commands.NewBackfillMartLocationsCommandHandler(factory, new(MockGeocoder), discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}
