package challenge

import "time"

// Milestone is a streak threshold shown as a badge.
type Milestone struct {
	Days    int
	Title   string
	Reached bool
}

var milestoneDefs = []struct {
	days  int
	title string
}{
	{7, "First Week"},
	{21, "Habit Formed"},
	{100, "Champion"},
}

// Progress is a derived snapshot of the challenge.
type Progress struct {
	Length         Length
	StartDate      time.Time
	Started        bool
	Today          time.Time
	Streak         int
	TotalCompleted int
	CheckedInToday bool
	Percentage     float64
	DaysRemaining  int
	Milestones     []Milestone
}

// Percentage returns the completed share of the challenge, capped at 100.
func Percentage(streak int, length Length) float64 {
	if length <= 0 || streak <= 0 {
		return 0
	}
	pct := 100 * float64(streak) / float64(length)
	if pct > 100 {
		return 100
	}
	return pct
}

// DaysRemaining returns the days left to reach length, never negative.
func DaysRemaining(streak int, length Length) int {
	left := int(length) - streak
	if left < 0 {
		return 0
	}
	return left
}

// Milestones lists the badges relevant to a challenge of the given length.
// Thresholds longer than the challenge are omitted.
func Milestones(streak int, length Length) []Milestone {
	out := make([]Milestone, 0, len(milestoneDefs))
	for _, def := range milestoneDefs {
		if def.days > int(length) {
			continue
		}
		out = append(out, Milestone{
			Days:    def.days,
			Title:   def.title,
			Reached: streak >= def.days,
		})
	}
	return out
}
