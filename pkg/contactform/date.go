package contactform

import (
	"strconv"
	"time"
)

// DateLayout is the layout accepted by UpdateField for the date field.
const DateLayout = time.DateOnly

// FormatDate renders t as a long date with an ordinal day, e.g. "March 3rd, 2025".
func FormatDate(t time.Time) string {
	return t.Month().String() + " " + ordinal(t.Day()) + ", " + strconv.Itoa(t.Year())
}

func ordinal(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix
}

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EarliestDate returns the first day the picker allows at now.
func EarliestDate(now time.Time) time.Time {
	today := startOfDay(now)
	if today.Before(now) {
		return today.AddDate(0, 0, 1)
	}
	return today
}
