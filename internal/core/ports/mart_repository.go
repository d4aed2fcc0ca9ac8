package ports

import (
	"context"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
)

// MartRepository defines the persistence contract for mart aggregates.
type MartRepository interface {
	Add(ctx context.Context, aggregate *mart.Mart) error
	Update(ctx context.Context, aggregate *mart.Mart) error
	Get(ctx context.Context, id kernel.UUID) (*mart.Mart, error)

	// FindByOwner returns all marts of an owner, oldest first. No marts is not an error.
	FindByOwner(ctx context.Context, ownerID kernel.UUID) ([]*mart.Mart, error)

	// FindWithoutLocation returns up to limit marts whose location was never resolved.
	FindWithoutLocation(ctx context.Context, limit int) ([]*mart.Mart, error)
}
