package martrepo

import (
	"context"
	"errors"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
	"martdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMartRepository implements ports.MartRepository using GORM.
type GormMartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMartRepository(db *gorm.DB, tracker aggregateTracker) *GormMartRepository {
	return &GormMartRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMartRepository) Add(ctx context.Context, aggregate *mart.Mart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageUnavailableError("add mart", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMartRepository) Update(ctx context.Context, aggregate *mart.Mart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MartDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":    dto.Name,
		"address": dto.Address,
		"lon":     dto.Lon,
		"lat":     dto.Lat,
	})
	if result.Error != nil {
		return errs.NewStorageUnavailableError("update mart", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("mart", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMartRepository) Get(ctx context.Context, id kernel.UUID) (*mart.Mart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MartDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mart", id.String())
		}
		return nil, errs.NewStorageUnavailableError("get mart", err)
	}

	return toDomain(dto)
}

func (r *GormMartRepository) FindByOwner(ctx context.Context, ownerID kernel.UUID) ([]*mart.Mart, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MartDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageUnavailableError("find marts by owner", err)
	}

	return toDomainList(dtos)
}

// FindWithoutLocation returns marts without a usable location, oldest first: a coordinate
// is missing or lies outside the valid range.
func (r *GormMartRepository) FindWithoutLocation(ctx context.Context, limit int) ([]*mart.Mart, error) {
	var dtos []MartDTO
	err := r.db.WithContext(ctx).
		Where("NOT COALESCE(lon BETWEEN -180 AND 180 AND lat BETWEEN -90 AND 90, false)").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageUnavailableError("find marts without location", err)
	}

	return toDomainList(dtos)
}
