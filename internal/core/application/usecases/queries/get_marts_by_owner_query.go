package queries

import (
	"errors"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

var ErrGetMartsByOwnerQueryIsNotConstructed = errors.New(
	"GetMartsByOwnerQuery must be created via NewGetMartsByOwnerQuery constructor",
)

// GetMartsByOwnerQuery lists every mart registered by one owner.
//
// Example:
//
//	query, err := NewGetMartsByOwnerQuery(ownerID)
//	if err != nil {
//	    return err
//	}
//	marts, err := handler.Handle(ctx, query)
type GetMartsByOwnerQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMartsByOwnerQuery(ownerID kernel.UUID) (GetMartsByOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetMartsByOwnerQuery{}, errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}
	return GetMartsByOwnerQuery{ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMartsByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetMartsByOwnerQueryIsNotConstructed)
}

func (q GetMartsByOwnerQuery) OwnerID() kernel.UUID {
	return q.ownerID
}
