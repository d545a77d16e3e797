package domain

import "time"

// TimeRange is the closed-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

func (r TimeRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Windows are the dashboard views of one run plus the single range fetched to serve all of them.
type Windows struct {
	Today     TimeRange
	Yesterday TimeRange
	MTD       TimeRange
	Fetch     TimeRange
}

// NewWindows derives every window from one instant, in UTC.
// On the first day of a month yesterday falls outside MTD, so Fetch is widened to cover it.
func NewWindows(now time.Time) Windows {
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := startOfDay.AddDate(0, 0, 1)
	yesterday := startOfDay.AddDate(0, 0, -1)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	w := Windows{
		Today:     TimeRange{Start: startOfDay, End: tomorrow},
		Yesterday: TimeRange{Start: yesterday, End: startOfDay},
		MTD:       TimeRange{Start: startOfMonth, End: tomorrow},
	}

	w.Fetch = w.MTD
	if w.Yesterday.Start.Before(w.Fetch.Start) {
		w.Fetch.Start = w.Yesterday.Start
	}

	return w
}
