package order

import "time"

// HistoryEntry records one status change.
type HistoryEntry struct {
	status    Status
	changedAt time.Time
}

func NewHistoryEntry(status Status, changedAt time.Time) HistoryEntry {
	return HistoryEntry{status: status, changedAt: changedAt}
}

func (h HistoryEntry) Status() Status {
	return h.status
}

func (h HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}
