package challenge

import (
	"math"
	"time"
)

// Streak counts consecutive checked-in days walking forward from start.
//
// The walk covers every day from start through today. A missing day ends the
// walk, except for today itself: a day that has not been checked in yet is
// skipped without counting, so the streak does not drop before the day is over.
func Streak(start, today time.Time, h History) int {
	start = CivilDate(start)
	today = CivilDate(today)

	diff := today.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	diffDays := int(math.Ceil(diff.Hours() / 24))
	todayKey := FormatDate(today)

	streak := 0
	for i := 0; i <= diffDays; i++ {
		key := FormatDate(start.AddDate(0, 0, i))
		if h[key] {
			streak++
			continue
		}
		if key != todayKey {
			break
		}
	}
	return streak
}
