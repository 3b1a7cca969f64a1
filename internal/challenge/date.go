package challenge

import "time"

// DateLayout is the ISO calendar date format used for keys and storage.
const DateLayout = "2006-01-02"

// CivilDate drops the time of day, keeping the calendar date t has in its
// own location. The result is midnight UTC so day arithmetic ignores DST.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
