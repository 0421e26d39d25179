package debts

import "testing"

func TestLevelFor(t *testing.T) {
	cases := []struct {
		days int
		want Level
	}{
		{-5, LevelNone},
		{0, LevelNone},
		{1, LevelRecent},
		{29, LevelRecent},
		{30, LevelOverdue},
		{45, LevelOverdue},
		{60, LevelOverdue},
		{61, LevelCritical},
		{365, LevelCritical},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.days); got != tc.want {
			t.Errorf("LevelFor(%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}
