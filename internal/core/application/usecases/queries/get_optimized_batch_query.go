package queries

import (
	"errors"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/services"
	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

var ErrGetOptimizedBatchQueryIsNotConstructed = errors.New(
	"GetOptimizedBatchQuery must be created via NewGetOptimizedBatchQuery constructor",
)

// GetOptimizedBatchQuery asks for the delivery route over all pending orders of a mart.
type GetOptimizedBatchQuery struct {
	martID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOptimizedBatchQuery(martID kernel.UUID) (GetOptimizedBatchQuery, error) {
	if err := martID.Validate(); err != nil {
		return GetOptimizedBatchQuery{}, errs.NewValueIsRequiredErrorWithCause("martId", err)
	}
	return GetOptimizedBatchQuery{martID: martID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOptimizedBatchQuery) Validate() error {
	return q.guard.Validate(ErrGetOptimizedBatchQueryIsNotConstructed)
}

func (q GetOptimizedBatchQuery) MartID() kernel.UUID {
	return q.martID
}

// GetOptimizedBatchQueryResponse is the mart (the depot) and its pending orders in visiting order.
type GetOptimizedBatchQueryResponse struct {
	Mart                BatchMart
	Route               []services.RouteStop
	TotalDistanceMeters float64
	TotalDistance       string
}

type BatchMart struct {
	ID       kernel.UUID
	Name     string
	Location Point
}
