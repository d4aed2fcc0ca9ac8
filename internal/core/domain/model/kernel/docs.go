// Package kernel provides the shared domain primitives of the mart delivery service.
//
// The package includes:
//   - UUID: a value object for entity identifiers
//   - GeoPoint: a validated (longitude, latitude) pair
//   - DistanceMeters and FormatDistance: great-circle distance and its display form
//
// GeoPoint is either wholly present or absent. Partial coordinates coming from storage or
// clients are rejected rather than defaulted to zero, so no code path can silently route
// from (0,0).
package kernel
