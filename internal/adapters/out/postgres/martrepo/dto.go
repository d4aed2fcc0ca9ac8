// Package martrepo provides the GORM repository for mart aggregates.
package martrepo

import (
	"time"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"

	"github.com/google/uuid"
)

// MartDTO is a row of the marts table. A mart whose address was never resolved has
// both coordinates NULL.
type MartDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"not null"`
	Address   string    `gorm:"not null"`
	Lon       *float64  `gorm:"type:double precision"`
	Lat       *float64  `gorm:"type:double precision"`
	CreatedAt time.Time `gorm:"not null"`
}

func (MartDTO) TableName() string {
	return "marts"
}

func fromDomain(aggregate *mart.Mart) MartDTO {
	dto := MartDTO{
		ID:        aggregate.ID().Bytes(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		CreatedAt: aggregate.CreatedAt(),
	}

	if location, err := aggregate.Location(); err == nil {
		lon, lat := location.Lon(), location.Lat()
		dto.Lon, dto.Lat = &lon, &lat
	}

	return dto
}

func toDomain(dto MartDTO) (*mart.Mart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	// unusable stored coordinates leave the mart without a location
	location, err := kernel.GeoPointFromNullable(dto.Lon, dto.Lat)
	if err != nil {
		location = kernel.GeoPoint{}
	}

	return mart.RestoreMart(id, ownerID, dto.Name, dto.Address, location, dto.CreatedAt)
}

func toDomainList(dtos []MartDTO) ([]*mart.Mart, error) {
	marts := make([]*mart.Mart, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		marts = append(marts, m)
	}
	return marts, nil
}
