package calculator

import (
	"time"

	"LoadSentinel/internal/model"
)

const (
	// AcuteDays is the length of the acute load window.
	AcuteDays = 7
	// ChronicDays is the length of the chronic load window.
	ChronicDays = 28
)

// Window is an inclusive range of calendar days in YYYY-MM-DD form.
type Window struct {
	Start string
	End   string
}

// Day formats t as a calendar day in t's own location.
func Day(t time.Time) string {
	return t.Format(model.DateLayout)
}

// TrailingWindow returns the inclusive window of `days` calendar days ending on now's date.
func TrailingWindow(now time.Time, days int) Window {
	if days < 1 {
		days = 1
	}
	return Window{
		Start: Day(now.AddDate(0, 0, -(days - 1))),
		End:   Day(now),
	}
}

// Contains reports whether the stored date falls within the window.
// Only the calendar-day prefix is compared, so a trailing time or offset is ignored.
func (w Window) Contains(date string) bool {
	d := DayKey(date)
	return d >= w.Start && d <= w.End
}

// DayKey reduces a stored date to its YYYY-MM-DD prefix.
func DayKey(date string) string {
	if len(date) > len(model.DateLayout) {
		return date[:len(model.DateLayout)]
	}
	return date
}
