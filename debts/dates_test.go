package debts

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		start, end time.Time
		want       int
	}{
		{date(2024, time.January, 1), date(2024, time.January, 1), 0},
		{date(2024, time.January, 1), date(2024, time.January, 2), 1},
		{date(2024, time.January, 20), date(2024, time.March, 1), 41},
		{date(2024, time.March, 1), date(2024, time.January, 20), -41},
		// Time of day must not matter.
		{time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2024, time.January, 2, 0, 1, 0, 0, time.UTC), 1},
	}
	for _, tc := range cases {
		if got := DaysBetween(tc.start, tc.end); got != tc.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}
