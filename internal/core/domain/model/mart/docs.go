// Package mart implements the Mart aggregate: the store that orders are placed at
// and the depot every delivery route starts from.
//
// A mart may exist without a resolved location (for instance when its address could
// not be geocoded at registration time). Such a mart accepts orders but cannot be
// routed from until SetLocation is called, either by an operator or by the
// background backfill job.
package mart
