package domain

import (
	"testing"
	"time"
)

type slaEntry struct {
	name   StatusName
	offset time.Duration
}

func historyAt(t0 time.Time, entries ...slaEntry) History {
	h := History{}
	for _, e := range entries {
		h = h.Append(e.name, t0.Add(e.offset))
	}
	return h
}

func entry(name StatusName, offset time.Duration) slaEntry {
	return slaEntry{name: name, offset: offset}
}

func TestComputeSLA(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		history      History
		from, to     time.Time
		wantDowntime time.Duration
		wantPercent  string
	}{
		{
			name: "flap inside window",
			history: historyAt(t0,
				entry(StatusOnline, 0),
				entry(StatusOutOfService, time.Hour),
				entry(StatusOnline, 3*time.Hour),
			),
			from:         t0,
			to:           t0.Add(4 * time.Hour),
			wantDowntime: 2 * time.Hour,
			wantPercent:  "50.000 %",
		},
		{
			name:         "window fully before any data",
			history:      historyAt(t0, entry(StatusOnline, 0)),
			from:         t0.Add(-4 * time.Hour),
			to:           t0.Add(-2 * time.Hour),
			wantDowntime: 0,
			wantPercent:  "100.000 %",
		},
		{
			name:         "no history at all",
			history:      History{},
			from:         t0,
			to:           t0.Add(time.Hour),
			wantDowntime: 0,
			wantPercent:  "100.000 %",
		},
		{
			name:         "boundary out of service, quiet window",
			history:      historyAt(t0, entry(StatusOutOfService, 0)),
			from:         t0.Add(time.Hour),
			to:           t0.Add(3 * time.Hour),
			wantDowntime: 2 * time.Hour,
			wantPercent:  "0.000 %",
		},
		{
			name:         "boundary online, quiet window",
			history:      historyAt(t0, entry(StatusOnline, 0)),
			from:         t0.Add(time.Hour),
			to:           t0.Add(3 * time.Hour),
			wantDowntime: 0,
			wantPercent:  "100.000 %",
		},
		{
			name:         "boundary unstable counts as up",
			history:      historyAt(t0, entry(StatusUnstable, 0)),
			from:         t0.Add(time.Hour),
			to:           t0.Add(2 * time.Hour),
			wantDowntime: 0,
			wantPercent:  "100.000 %",
		},
		{
			name: "no boundary but inside activity: pre-window gap is down",
			history: historyAt(t0,
				entry(StatusOnline, time.Hour),
			),
			from:         t0,
			to:           t0.Add(2 * time.Hour),
			wantDowntime: time.Hour,
			wantPercent:  "50.000 %",
		},
		{
			name: "entries at or after window end are ignored",
			history: historyAt(t0,
				entry(StatusOnline, 0),
				entry(StatusOutOfService, 2*time.Hour),
				entry(StatusOnline, 5*time.Hour),
			),
			from:         t0,
			to:           t0.Add(2 * time.Hour),
			wantDowntime: 0,
			wantPercent:  "100.000 %",
		},
		{
			name: "downtime runs to window end",
			history: historyAt(t0,
				entry(StatusOnline, 0),
				entry(StatusOutOfService, time.Hour),
			),
			from:         t0,
			to:           t0.Add(4 * time.Hour),
			wantDowntime: 3 * time.Hour,
			wantPercent:  "25.000 %",
		},
		{
			name: "fractional percentage rounds to 3 decimals",
			history: historyAt(t0,
				entry(StatusOnline, 0),
				entry(StatusOutOfService, time.Hour),
				entry(StatusOnline, time.Hour+20*time.Minute),
			),
			from:         t0,
			to:           t0.Add(3 * time.Hour),
			wantDowntime: 20 * time.Minute,
			wantPercent:  "88.889 %",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSLA(tt.history, tt.from, tt.to)
			if got.Downtime != tt.wantDowntime {
				t.Errorf("ComputeSLA() downtime = %v, want %v", got.Downtime, tt.wantDowntime)
			}
			if got.FormatPercent() != tt.wantPercent {
				t.Errorf("ComputeSLA() percent = %q, want %q", got.FormatPercent(), tt.wantPercent)
			}
			if p := got.Percent(); p < 0 || p > 100 {
				t.Errorf("ComputeSLA() percent %v outside [0, 100]", p)
			}
		})
	}
}

func TestReportFormatDowntime(t *testing.T) {
	tests := []struct {
		name     string
		downtime time.Duration
		want     string
	}{
		{name: "zero", downtime: 0, want: "0 s"},
		{name: "two hours", downtime: 2 * time.Hour, want: "7200 s"},
		{name: "sub-second", downtime: 1500 * time.Millisecond, want: "1.5 s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Report{Downtime: tt.downtime, Window: 4 * time.Hour}
			if got := r.FormatDowntime(); got != tt.want {
				t.Errorf("FormatDowntime() = %q, want %q", got, tt.want)
			}
		})
	}
}
