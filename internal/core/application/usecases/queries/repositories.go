// Package queries contains read-only operations. Handlers never open a transaction:
// they read through repositories or, for list views, straight from the database.
package queries

import (
	"time"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
	"martdelivery/internal/core/ports"
)

type (
	// Repositories gives read access to the aggregates.
	Repositories interface {
		OrderRepository() ports.OrderRepository
		MartRepository() ports.MartRepository
	}

	// RepositoriesFactory creates a fresh set of repositories per query.
	RepositoriesFactory interface {
		Create() Repositories
	}
)

// MartView is the read model of a mart. Location is nil until the address is resolved.
type MartView struct {
	ID        kernel.UUID
	OwnerID   kernel.UUID
	Name      string
	Address   string
	Location  *Point
	CreatedAt time.Time
}

// Point is a longitude/latitude pair in degrees.
type Point struct {
	Lon float64
	Lat float64
}

func pointOf(p kernel.GeoPoint) *Point {
	if !kernel.IsValidPoint(p) {
		return nil
	}
	return &Point{Lon: p.Lon(), Lat: p.Lat()}
}

func martViewOf(m *mart.Mart) MartView {
	view := MartView{
		ID:        m.ID(),
		OwnerID:   m.OwnerID(),
		Name:      m.Name(),
		Address:   m.Address(),
		CreatedAt: m.CreatedAt(),
	}
	if location, err := m.Location(); err == nil {
		view.Location = pointOf(location)
	}
	return view
}
