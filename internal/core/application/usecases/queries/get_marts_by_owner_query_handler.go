package queries

import (
	"context"
	"database/sql"
	"time"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMartsByOwnerQueryHandler reads the owner's marts straight from the marts table.
// Results are sorted by creation time, then id.
type GetMartsByOwnerQueryHandler struct {
	db *gorm.DB
}

func NewGetMartsByOwnerQueryHandler(db *gorm.DB) GetMartsByOwnerQueryHandler {
	return GetMartsByOwnerQueryHandler{db: db}
}

func (h GetMartsByOwnerQueryHandler) Handle(ctx context.Context, query GetMartsByOwnerQuery) ([]MartView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	marts := make([]MartView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			name,
			address,
			lon,
			lat,
			created_at
		FROM marts
		WHERE owner_id = ?
		ORDER BY created_at, id
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("list marts by owner", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, ownerID uuid.UUID
			lon, lat    sql.NullFloat64
			createdAt   time.Time
			view        MartView
		)

		if err = rows.Scan(&id, &ownerID, &view.Name, &view.Address, &lon, &lat, &createdAt); err != nil {
			return nil, errs.NewStorageUnavailableError("list marts by owner", err)
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		view.CreatedAt = createdAt.UTC()
		if lon.Valid && lat.Valid {
			view.Location = &Point{Lon: lon.Float64, Lat: lat.Float64}
		}
		marts = append(marts, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageUnavailableError("list marts by owner", err)
	}

	return marts, nil
}
