package commands

import (
	"context"
	"log/slog"
	"time"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
	"martdelivery/internal/core/ports"
)

// CreateMartCommandHandler registers a mart. When the address cannot be resolved the
// mart is stored without a location; BackfillMartLocationsCommandHandler picks it up later.
type CreateMartCommandHandler struct {
	uowFactory MartUoWFactory
	geocoder   ports.Geocoder
	logger     *slog.Logger
}

func NewCreateMartCommandHandler(
	uowFactory MartUoWFactory,
	geocoder ports.Geocoder,
	logger *slog.Logger,
) CreateMartCommandHandler {
	return CreateMartCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		logger:     logger.With("component", "CreateMartCommandHandler"),
	}
}

func (h *CreateMartCommandHandler) Handle(ctx context.Context, cmd CreateMartCommand) (*mart.Mart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var location kernel.GeoPoint
	resolved, err := h.geocoder.Resolve(ctx, cmd.Address())
	if err != nil {
		h.logger.WarnContext(ctx, "mart address not resolved, storing without location",
			"mart_id", cmd.MartID().String(), "error", err)
	} else {
		location = resolved.Point
	}

	created, err := mart.NewMart(cmd.MartID(), cmd.OwnerID(), cmd.Name(), cmd.Address(), location, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MartRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
