package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/sugarcut/internal/challenge"
)

const (
	barWidth      = 30
	sparkWeeks    = 12
	dateLayoutOut = "Mon Jan 2, 2006"
)

// Report contains the data for a status rendering.
type Report struct {
	Progress challenge.Progress
	Weekly   []int
}

// BuildReport snapshots the engine for rendering.
func BuildReport(e *challenge.Engine) Report {
	p := e.Progress()
	return Report{
		Progress: p,
		Weekly:   WeeklyCounts(p.Today, e.History(), sparkWeeks),
	}
}

// RenderSummary prints the status report.
func RenderSummary(w io.Writer, r Report) error {
	p := r.Progress
	if _, err := fmt.Fprintf(w, "Day %d · %d Day Challenge\n", p.Streak, p.Length); err != nil {
		return err
	}
	if p.Started {
		if _, err := fmt.Fprintf(w, "Started %s\n", p.StartDate.Format(dateLayoutOut)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s %.1f%% Complete\n", ProgressBar(p.Percentage, barWidth), p.Percentage); err != nil {
		return err
	}
	today := "not yet"
	if p.CheckedInToday {
		today = "done"
	}
	if _, err := fmt.Fprintf(w, "Today: %s\n\n", today); err != nil {
		return err
	}

	rows := [][]string{
		{"Current Streak", days(p.Streak)},
		{"Goal", days(int(p.Length))},
		{"Days Left", days(p.DaysRemaining)},
		{"Total Completed", days(p.TotalCompleted)},
	}
	if len(r.Weekly) > 0 {
		rows = append(rows, []string{"Last 12 Weeks", "[" + Sparkline(r.Weekly, 7) + "]"})
	}
	if err := writeTable(w, []column{{title: "Stat"}, {title: "Value", right: true}}, rows); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return RenderMilestones(w, p.Milestones)
}

// RenderMilestones prints the milestone badges.
func RenderMilestones(w io.Writer, milestones []challenge.Milestone) error {
	if len(milestones) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Milestones"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(milestones))
	for _, m := range milestones {
		mark := "[ ]"
		if m.Reached {
			mark = "[x]"
		}
		rows = append(rows, []string{mark, fmt.Sprintf("%d Days", m.Days), m.Title})
	}
	return writeTable(w, []column{{}, {right: true}, {}}, rows)
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
