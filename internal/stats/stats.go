// Package stats renders challenge progress as plain text.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/sugarcut/internal/challenge"
)

const sparkLevels = " ▁▂▃▄▅▆▇█"

// WeeklyCounts returns check-in counts for the given number of seven-day
// windows ending with today, oldest first.
func WeeklyCounts(today time.Time, h challenge.History, weeks int) []int {
	if weeks <= 0 {
		return nil
	}
	today = challenge.CivilDate(today)
	out := make([]int, weeks)
	for w := 0; w < weeks; w++ {
		end := today.AddDate(0, 0, -7*(weeks-1-w))
		count := 0
		for d := 0; d < 7; d++ {
			if h.Has(end.AddDate(0, 0, -d)) {
				count++
			}
		}
		out[w] = count
	}
	return out
}

// Sparkline draws each count as a block whose height is relative to ceiling,
// so an empty week is blank and a full week is a full block.
func Sparkline(counts []int, ceiling int) string {
	if ceiling <= 0 {
		return ""
	}
	levels := []rune(sparkLevels)
	top := len(levels) - 1
	out := make([]rune, len(counts))
	for i, c := range counts {
		idx := int(math.Round(float64(c) / float64(ceiling) * float64(top)))
		out[i] = levels[max(0, min(idx, top))]
	}
	return string(out)
}

// ProgressBar draws pct (0-100) as a bar of the given width.
func ProgressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(math.Round(pct / 100 * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
