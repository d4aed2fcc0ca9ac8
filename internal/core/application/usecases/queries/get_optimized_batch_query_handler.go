package queries

import (
	"context"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/services"
)

// GetOptimizedBatchQueryHandler plans the delivery route for a mart.
//
// The mart must exist (errs.ErrObjectNotFound) and have a resolved location
// (mart.ErrMartHasNoLocation). A mart with no pending orders yields an empty route.
type GetOptimizedBatchQueryHandler struct {
	repositories RepositoriesFactory
	planner      services.RoutePlanner
}

func NewGetOptimizedBatchQueryHandler(
	repositories RepositoriesFactory,
	planner services.RoutePlanner,
) GetOptimizedBatchQueryHandler {
	return GetOptimizedBatchQueryHandler{
		repositories: repositories,
		planner:      planner,
	}
}

func (h GetOptimizedBatchQueryHandler) Handle(
	ctx context.Context,
	query GetOptimizedBatchQuery,
) (GetOptimizedBatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOptimizedBatchQueryResponse{}, err
	}

	repos := h.repositories.Create()

	m, err := repos.MartRepository().Get(ctx, query.MartID())
	if err != nil {
		return GetOptimizedBatchQueryResponse{}, err
	}

	depot, err := m.Location()
	if err != nil {
		return GetOptimizedBatchQueryResponse{}, err
	}

	pending, err := repos.OrderRepository().FindPendingByMart(ctx, m.ID())
	if err != nil {
		return GetOptimizedBatchQueryResponse{}, err
	}

	route, err := h.planner.Plan(depot, pending)
	if err != nil {
		return GetOptimizedBatchQueryResponse{}, err
	}

	total := services.TotalMeters(route)
	return GetOptimizedBatchQueryResponse{
		Mart: BatchMart{
			ID:       m.ID(),
			Name:     m.Name(),
			Location: Point{Lon: depot.Lon(), Lat: depot.Lat()},
		},
		Route:               route,
		TotalDistanceMeters: total,
		TotalDistance:       kernel.FormatDistance(total),
	}, nil
}
