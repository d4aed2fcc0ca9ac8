package queries

import (
	"context"
	"errors"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

var ErrGetMartQueryIsNotConstructed = errors.New("GetMartQuery must be created via NewGetMartQuery constructor")

type GetMartQuery struct {
	martID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMartQuery(martID kernel.UUID) (GetMartQuery, error) {
	if err := martID.Validate(); err != nil {
		return GetMartQuery{}, errs.NewValueIsRequiredErrorWithCause("martId", err)
	}
	return GetMartQuery{martID: martID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMartQuery) Validate() error {
	return q.guard.Validate(ErrGetMartQueryIsNotConstructed)
}

func (q GetMartQuery) MartID() kernel.UUID {
	return q.martID
}

type GetMartQueryHandler struct {
	repositories RepositoriesFactory
}

func NewGetMartQueryHandler(repositories RepositoriesFactory) GetMartQueryHandler {
	return GetMartQueryHandler{repositories: repositories}
}

func (h GetMartQueryHandler) Handle(ctx context.Context, query GetMartQuery) (MartView, error) {
	if err := query.Validate(); err != nil {
		return MartView{}, err
	}

	m, err := h.repositories.Create().MartRepository().Get(ctx, query.MartID())
	if err != nil {
		return MartView{}, err
	}
	return martViewOf(m), nil
}
