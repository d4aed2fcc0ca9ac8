package commands

import (
	"context"
	"log/slog"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/ports"
)

// BackfillMartLocationsCommandHandler geocodes marts that have no location.
// Each mart is saved in its own transaction; a failure is logged and the mart is
// left for the next run.
type BackfillMartLocationsCommandHandler struct {
	uowFactory MartUoWFactory
	geocoder   ports.Geocoder
	logger     *slog.Logger
}

func NewBackfillMartLocationsCommandHandler(
	uowFactory MartUoWFactory,
	geocoder ports.Geocoder,
	logger *slog.Logger,
) BackfillMartLocationsCommandHandler {
	return BackfillMartLocationsCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		logger:     logger.With("component", "BackfillMartLocationsCommandHandler"),
	}
}

// Handle returns the number of marts that received a location.
func (h *BackfillMartLocationsCommandHandler) Handle(ctx context.Context, cmd BackfillMartLocationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	marts, err := h.uowFactory.Create().MartRepository().FindWithoutLocation(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	resolvedCount := 0
	for _, m := range marts {
		if err = ctx.Err(); err != nil {
			return resolvedCount, err
		}

		resolved, err := h.geocoder.Resolve(ctx, m.Address())
		if err != nil {
			h.logger.WarnContext(ctx, "failed to resolve mart address",
				"mart_id", m.ID().String(), "error", err)
			continue
		}

		if err = h.store(ctx, m.ID(), resolved.Point); err != nil {
			h.logger.ErrorContext(ctx, "failed to store mart location",
				"mart_id", m.ID().String(), "error", err)
			continue
		}
		resolvedCount++
	}

	return resolvedCount, nil
}

func (h *BackfillMartLocationsCommandHandler) store(ctx context.Context, martID kernel.UUID, location kernel.GeoPoint) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MartRepository()
	m, err := repo.Get(ctx, martID)
	if err != nil {
		return err
	}

	if err = m.SetLocation(location); err != nil {
		return err
	}

	if err = repo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
