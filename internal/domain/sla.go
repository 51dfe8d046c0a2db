package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Report is the outcome of an SLA computation over one query window.
type Report struct {
	// Downtime is the accumulated time the service spent "out of service"
	// inside the window.
	Downtime time.Duration
	// Window is the total window duration, to - from.
	Window time.Duration
}

// Percent returns the SLA percentage: the share of the window the service
// was not "out of service". Always within [0, 100] for a positive window.
func (r Report) Percent() float64 {
	if r.Window <= 0 {
		return 0
	}
	return (r.Window - r.Downtime).Seconds() / r.Window.Seconds() * 100
}

// FormatDowntime renders downtime as seconds with a unit marker, e.g. "7200 s".
func (r Report) FormatDowntime() string {
	return strconv.FormatFloat(r.Downtime.Seconds(), 'f', -1, 64) + " s"
}

// FormatPercent renders the SLA percentage to exactly 3 decimal places,
// e.g. "50.000 %".
func (r Report) FormatPercent() string {
	return fmt.Sprintf("%.3f %%", r.Percent())
}

// ComputeSLA walks a service's status history over the window [from, to)
// and accumulates the time spent "out of service". The caller guarantees
// from < to.
//
// The status in effect at the start of the window is the boundary entry
// (the last one at or before from). Without a boundary the window is
// assumed to start "out of service" — except when there is no activity
// inside the window either, in which case the service is treated as fully
// up. Absence of any nearby data defaults to a perfect SLA; activity inside
// the window without an anchor defaults the pre-window gap to down.
func ComputeSLA(history History, from, to time.Time) Report {
	boundary, haveBoundary := history.BoundaryAt(from)
	inside := history.Between(from, to)
	window := to.Sub(from)

	// No data anywhere near the window.
	if !haveBoundary && len(inside) == 0 {
		return Report{Downtime: 0, Window: window}
	}

	current := StatusOutOfService
	since := from
	if haveBoundary {
		current = boundary.Name
	}

	var downtime time.Duration
	for _, st := range inside {
		if current == StatusOutOfService {
			downtime += st.UpdatedAt.Sub(since)
		}
		current = st.Name
		since = st.UpdatedAt
	}
	if current == StatusOutOfService {
		downtime += to.Sub(since)
	}

	return Report{Downtime: downtime, Window: window}
}
