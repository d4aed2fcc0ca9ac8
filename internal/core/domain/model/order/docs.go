// Package order provides the Order aggregate of the mart delivery service and its
// status lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding line items, the customer address with its resolved
//     GeoPoint, the current status, the status history and the assigned delivery agent
//   - Status: a closed enumeration with an explicit transition table
//   - Item, Address and HistoryEntry value objects
//
// Key business rules:
//   - Orders are created pending with exactly one history entry
//   - pending -> dispatched -> delivered, and pending|dispatched -> cancelled
//   - delivered and cancelled are terminal
//   - every status change appends one history entry; history is never edited or reordered
//   - the current status always equals the status of the last history entry
package order
