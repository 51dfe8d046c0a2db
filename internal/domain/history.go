package domain

import "time"

// History is the append-only status log of one service, ordered by
// UpdatedAt ascending. Entries are appended with the current time and never
// reordered or mutated in place.
type History []Status

// Append returns the history extended with a new entry stamped at.
func (h History) Append(name StatusName, at time.Time) History {
	return append(h, newStatus(name, at))
}

// Last returns the most recent entry, the service's current status.
func (h History) Last() (Status, bool) {
	if len(h) == 0 {
		return Status{}, false
	}
	return h[len(h)-1], true
}

// BoundaryAt returns the last entry with UpdatedAt <= at: the status in
// effect at that instant, if any entry precedes it.
func (h History) BoundaryAt(at time.Time) (Status, bool) {
	var boundary Status
	found := false
	for _, st := range h {
		if st.UpdatedAt.After(at) {
			break
		}
		boundary = st
		found = true
	}
	return boundary, found
}

// Between returns the entries strictly inside the open window (from, to),
// in chronological order.
func (h History) Between(from, to time.Time) []Status {
	var inside []Status
	for _, st := range h {
		if !st.UpdatedAt.After(from) {
			continue
		}
		if !st.UpdatedAt.Before(to) {
			break
		}
		inside = append(inside, st)
	}
	return inside
}
