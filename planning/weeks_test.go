package planning

import (
	"testing"
	"time"
)

func TestListAvailableWeeksWindow(t *testing.T) {
	now := time.Date(2025, 2, 18, 14, 0, 0, 0, time.UTC) // a Tuesday
	weeks := ListAvailableWeeks(now)

	if len(weeks) != WeeksBack+WeeksAhead+1 {
		t.Fatalf("expected %d weeks, got %d", WeeksBack+WeeksAhead+1, len(weeks))
	}

	// The current week sits at index WeeksBack, Monday-aligned.
	current := weeks[WeeksBack]
	if current.ID != "2025-02-17" {
		t.Fatalf("expected current week id 2025-02-17, got %s", current.ID)
	}
	if current.WeekStart.Weekday() != time.Monday {
		t.Fatalf("week start must be a Monday, got %s", current.WeekStart.Weekday())
	}
	if current.WeekEnd.Weekday() != time.Friday {
		t.Fatalf("week end must be a Friday, got %s", current.WeekEnd.Weekday())
	}
	if current.Label != "Semaine du 17/02/2025" {
		t.Fatalf("unexpected label %q", current.Label)
	}

	for i := 1; i < len(weeks); i++ {
		diff := weeks[i].WeekStart.Sub(weeks[i-1].WeekStart)
		if diff != 7*24*time.Hour {
			t.Fatalf("weeks %d and %d are not consecutive: %s apart", i-1, i, diff)
		}
	}
}

func TestListAvailableWeeksStableIDs(t *testing.T) {
	now := time.Date(2025, 2, 18, 8, 0, 0, 0, time.UTC)
	later := time.Date(2025, 2, 18, 23, 59, 0, 0, time.UTC) // same day, different instant

	first := ListAvailableWeeks(now)
	second := ListAvailableWeeks(later)

	if len(first) != len(second) {
		t.Fatalf("window size changed within the same day: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("week %d id drifted within the same day: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday stays", time.Date(2025, 2, 17, 10, 0, 0, 0, time.UTC), "2025-02-17"},
		{"midweek", time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC), "2025-02-17"},
		{"saturday", time.Date(2025, 2, 22, 23, 0, 0, 0, time.UTC), "2025-02-17"},
		{"sunday belongs to previous monday", time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC), "2025-02-17"},
		{"year boundary", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "2024-12-30"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := mondayOf(tc.in).Format("2006-01-02"); got != tc.want {
				t.Fatalf("mondayOf(%s) = %s, want %s", tc.in.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}
