package challenge

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStreak(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		today   string
		history History
		want    int
	}{
		{
			name:    "gap before today stops the walk",
			start:   "2024-01-01",
			today:   "2024-01-05",
			history: History{"2024-01-01": true, "2024-01-02": true, "2024-01-03": true},
			want:    3,
		},
		{
			name:    "gap on today is tolerated",
			start:   "2024-01-01",
			today:   "2024-01-04",
			history: History{"2024-01-01": true, "2024-01-02": true, "2024-01-03": true},
			want:    3,
		},
		{
			name:    "dense history including today",
			start:   "2024-01-01",
			today:   "2024-01-04",
			history: History{"2024-01-01": true, "2024-01-02": true, "2024-01-03": true, "2024-01-04": true},
			want:    4,
		},
		{
			name:    "check-ins after a gap do not count",
			start:   "2024-01-01",
			today:   "2024-01-06",
			history: History{"2024-01-01": true, "2024-01-03": true, "2024-01-04": true, "2024-01-05": true, "2024-01-06": true},
			want:    1,
		},
		{
			name:    "missed first day",
			start:   "2024-01-01",
			today:   "2024-01-03",
			history: History{"2024-01-02": true, "2024-01-03": true},
			want:    0,
		},
		{
			name:    "fresh start today",
			start:   "2024-01-01",
			today:   "2024-01-01",
			history: History{},
			want:    0,
		},
		{
			name:    "explicit false is a miss",
			start:   "2024-01-01",
			today:   "2024-01-03",
			history: History{"2024-01-01": true, "2024-01-02": false, "2024-01-03": true},
			want:    1,
		},
		{
			name:    "check-ins before the start are ignored",
			start:   "2024-01-10",
			today:   "2024-01-11",
			history: History{"2024-01-08": true, "2024-01-09": true, "2024-01-10": true},
			want:    1,
		},
		{
			name:    "crosses a month and year boundary",
			start:   "2023-12-30",
			today:   "2024-01-02",
			history: History{"2023-12-30": true, "2023-12-31": true, "2024-01-01": true},
			want:    3,
		},
		{
			name:    "start in the future walks forward past today",
			start:   "2024-01-05",
			today:   "2024-01-03",
			history: History{"2024-01-05": true},
			want:    1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Streak(day(tc.start), day(tc.today), tc.history)
			if got != tc.want {
				t.Fatalf("expected streak %d, got %d", tc.want, got)
			}
		})
	}
}

func TestStreakDenseHistoryGrowsWithElapsedDays(t *testing.T) {
	start := day("2024-02-20")
	h := History{}
	for k := 0; k < 30; k++ {
		today := start.AddDate(0, 0, k)
		if got := Streak(start, today, h); got != k {
			t.Fatalf("day %d before check-in: expected %d, got %d", k, k, got)
		}
		h[FormatDate(today)] = true
		if got := Streak(start, today, h); got != k+1 {
			t.Fatalf("day %d after check-in: expected %d, got %d", k, k+1, got)
		}
	}
}

func TestStreakIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	today := time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)
	h := History{"2024-03-01": true, "2024-03-02": true}
	if got := Streak(start, today, h); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
