package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewWindows(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		today     TimeRange
		yesterday TimeRange
		mtd       TimeRange
		fetch     TimeRange
	}{
		{
			name:      "mid month",
			now:       time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC),
			today:     TimeRange{utc(2024, 3, 15), utc(2024, 3, 16)},
			yesterday: TimeRange{utc(2024, 3, 14), utc(2024, 3, 15)},
			mtd:       TimeRange{utc(2024, 3, 1), utc(2024, 3, 16)},
			fetch:     TimeRange{utc(2024, 3, 1), utc(2024, 3, 16)},
		},
		{
			name:      "first day of month widens fetch to cover yesterday",
			now:       time.Date(2024, 3, 1, 0, 5, 0, 0, time.UTC),
			today:     TimeRange{utc(2024, 3, 1), utc(2024, 3, 2)},
			yesterday: TimeRange{utc(2024, 2, 29), utc(2024, 3, 1)},
			mtd:       TimeRange{utc(2024, 3, 1), utc(2024, 3, 2)},
			fetch:     TimeRange{utc(2024, 2, 29), utc(2024, 3, 2)},
		},
		{
			name:      "last day of year",
			now:       time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			today:     TimeRange{utc(2023, 12, 31), utc(2024, 1, 1)},
			yesterday: TimeRange{utc(2023, 12, 30), utc(2023, 12, 31)},
			mtd:       TimeRange{utc(2023, 12, 1), utc(2024, 1, 1)},
			fetch:     TimeRange{utc(2023, 12, 1), utc(2024, 1, 1)},
		},
		{
			name:      "non UTC instant is normalized",
			now:       time.Date(2024, 3, 15, 2, 0, 0, 0, time.FixedZone("PKT", 5*3600)),
			today:     TimeRange{utc(2024, 3, 14), utc(2024, 3, 15)},
			yesterday: TimeRange{utc(2024, 3, 13), utc(2024, 3, 14)},
			mtd:       TimeRange{utc(2024, 3, 1), utc(2024, 3, 15)},
			fetch:     TimeRange{utc(2024, 3, 1), utc(2024, 3, 15)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindows(tt.now)
			assert.Equal(t, tt.today, w.Today)
			assert.Equal(t, tt.yesterday, w.Yesterday)
			assert.Equal(t, tt.mtd, w.MTD)
			assert.Equal(t, tt.fetch, w.Fetch)
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	r := TimeRange{Start: utc(2024, 3, 1), End: utc(2024, 3, 2)}

	assert.True(t, r.Contains(utc(2024, 3, 1)), "start is inclusive")
	assert.True(t, r.Contains(utc(2024, 3, 1).Add(23*time.Hour)))
	assert.False(t, r.Contains(utc(2024, 3, 2)), "end is exclusive")
	assert.False(t, r.Contains(utc(2024, 2, 29)))
}

func TestWindows_TileTheMonth(t *testing.T) {
	w := NewWindows(time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC))

	// Every hour of the MTD range falls in exactly one of today, yesterday or the rest of the month.
	for ts := w.MTD.Start; ts.Before(w.MTD.End); ts = ts.Add(time.Hour) {
		inToday := w.Today.Contains(ts)
		inYesterday := w.Yesterday.Contains(ts)
		inRest := !inToday && !inYesterday

		count := 0
		for _, in := range []bool{inToday, inYesterday, inRest} {
			if in {
				count++
			}
		}
		assert.Equal(t, 1, count, "instant %s", ts)
		assert.True(t, w.MTD.Contains(ts))
	}
	assert.True(t, w.Fetch.Contains(w.Yesterday.Start))
	assert.True(t, w.Fetch.Contains(w.Today.End.Add(-time.Nanosecond)))
}

func TestReferenceTable(t *testing.T) {
	table := NewReferenceTable()
	table.Put(StoreReference{StoreID: " S1 ", DisplayName: "First"})
	table.Put(StoreReference{StoreID: "S1", DisplayName: "Second"})

	ref, ok := table.Lookup("S1  ")
	assert.True(t, ok)
	assert.Equal(t, "Second", ref.DisplayName, "last row wins")
	assert.Equal(t, 1, table.Len())

	var empty *ReferenceTable
	_, ok = empty.Lookup("S1")
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Len())
}

func utc(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
