package services

import (
	"fmt"
	"math"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/pkg/errs"
)

var (
	// ErrInvalidDepot is returned when the route start point is absent or out of range.
	ErrInvalidDepot = fmt.Errorf("%w: depot", errs.ErrInvalidGeometry)
	// ErrInvalidStop is returned when an order to be routed has no usable delivery point.
	ErrInvalidStop = fmt.Errorf("%w: stop", errs.ErrInvalidGeometry)
)

// RouteStop is one visit on a planned route.
type RouteStop struct {
	Order *order.Order
	// DistanceMeters is the leg length from the previous stop (or the depot for the first stop).
	DistanceMeters float64
	// Distance is DistanceMeters in display form, e.g. "850 m" or "1.20 km".
	Distance string
}

// RoutePlanner builds a delivery route with the greedy nearest-neighbour heuristic.
// It is not an optimal TSP solver: from the current point it always travels to the
// closest unvisited order.
//
// Guarantees:
//   - every input order appears exactly once in the route
//   - equal inputs give equal routes; on a distance tie the order earlier in the input wins
//   - the input slice is left untouched
//
// Example usage:
//
//	planner := NewRoutePlanner()
//	stops, err := planner.Plan(martLocation, pendingOrders)
//	if err != nil {
//	    return err
//	}
//	total := TotalMeters(stops)
type RoutePlanner struct{}

func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// Plan orders the given deliveries starting from depot. An empty input yields an empty route.
// The whole route is rejected if any order lacks a valid delivery point.
func (p RoutePlanner) Plan(depot kernel.GeoPoint, orders []*order.Order) ([]RouteStop, error) {
	if !kernel.IsValidPoint(depot) {
		return nil, ErrInvalidDepot
	}

	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if !kernel.IsValidPoint(o.Location()) {
			return nil, fmt.Errorf("%w: order %s at position %d", ErrInvalidStop, o.ID(), i)
		}
	}

	route := make([]RouteStop, 0, len(orders))
	visited := make([]bool, len(orders))
	current := depot

	for range orders {
		next, nextDistance := -1, math.Inf(1)
		for i, o := range orders {
			if visited[i] {
				continue
			}
			// strict comparison keeps the earliest order on ties
			if d := kernel.DistanceMeters(current, o.Location()); d < nextDistance {
				next, nextDistance = i, d
			}
		}

		visited[next] = true
		route = append(route, RouteStop{
			Order:          orders[next],
			DistanceMeters: nextDistance,
			Distance:       kernel.FormatDistance(nextDistance),
		})
		current = orders[next].Location()
	}

	return route, nil
}

// TotalMeters sums the leg lengths of a route.
func TotalMeters(stops []RouteStop) float64 {
	var total float64
	for _, s := range stops {
		total += s.DistanceMeters
	}
	return total
}
