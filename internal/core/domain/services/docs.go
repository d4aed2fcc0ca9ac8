// Package services provides domain services that operate across aggregates.
//
// The package includes:
//   - RoutePlanner: orders the pending deliveries of a mart into a single
//     greedy nearest-neighbour route starting at the mart
package services
