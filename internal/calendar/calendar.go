// Package calendar lays out check-in history as a weekly heatmap.
package calendar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sugarcut/internal/challenge"
)

// DefaultDays covers twelve weeks.
const DefaultDays = 84

// Day is a single heatmap cell.
type Day struct {
	Date      time.Time
	CheckedIn bool
	IsToday   bool
}

// Week holds up to seven consecutive days.
type Week []Day

var (
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	todayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

const (
	doneCell  = "■"
	missCell  = "·"
	todayDone = "◆"
	todayMiss = "◇"
)

// Build returns the last days calendar days ending with today, grouped into
// weeks of seven. The final week may be shorter.
func Build(today time.Time, h challenge.History, days int) []Week {
	if days <= 0 {
		return nil
	}
	today = challenge.CivilDate(today)
	first := today.AddDate(0, 0, -(days - 1))

	weeks := make([]Week, 0, (days+6)/7)
	var current Week
	for i := 0; i < days; i++ {
		date := first.AddDate(0, 0, i)
		current = append(current, Day{
			Date:      date,
			CheckedIn: h.Has(date),
			IsToday:   date.Equal(today),
		})
		if len(current) == 7 {
			weeks = append(weeks, current)
			current = nil
		}
	}
	if len(current) > 0 {
		weeks = append(weeks, current)
	}
	return weeks
}

// Render draws weeks as columns with one row per position in the week.
func Render(weeks []Week, useColor bool) string {
	if len(weeks) == 0 {
		return ""
	}
	rows := make([]string, 7)
	for pos := 0; pos < 7; pos++ {
		var b strings.Builder
		b.WriteString(weekdayLabel(weeks, pos))
		b.WriteByte(' ')
		for i, week := range weeks {
			if i > 0 {
				b.WriteByte(' ')
			}
			if pos >= len(week) {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(cell(week[pos], useColor))
		}
		rows[pos] = strings.TrimRight(b.String(), " ")
	}
	legend := "Less " + missCell + " " + doneCell + " More"
	if useColor {
		legend = legendStyle.Render("Less ") + missStyle.Render(missCell) + " " +
			doneStyle.Render(doneCell) + legendStyle.Render(" More")
	}
	return strings.Join(rows, "\n") + "\n\n" + legend
}

func weekdayLabel(weeks []Week, pos int) string {
	if len(weeks[0]) <= pos {
		return " "
	}
	return weeks[0][pos].Date.Weekday().String()[:1]
}

func cell(d Day, useColor bool) string {
	symbol := missCell
	style := missStyle
	switch {
	case d.IsToday && d.CheckedIn:
		symbol, style = todayDone, todayStyle
	case d.IsToday:
		symbol, style = todayMiss, todayStyle
	case d.CheckedIn:
		symbol, style = doneCell, doneStyle
	}
	if !useColor {
		return symbol
	}
	return style.Render(symbol)
}
