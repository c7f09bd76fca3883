package models

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the dd/mm/yyyy layout planting dates are typed in.
const DateLayout = "02/01/2006"

// CalendarDate is a year/month/day value with no time-of-day component.
// It is always anchored at midnight UTC so comparisons never depend on the
// host timezone.
type CalendarDate struct {
	time.Time
}

// NewCalendarDate builds a CalendarDate without validating the components.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseBrazilianDate parses a dd/mm/yyyy string.
//
// The text must split into exactly three slash-separated integer segments
// read as day, month and year. Out-of-range components are rejected rather
// than rolled over, so "31/02/2025" and "00/01/2025" both fail.
func ParseBrazilianDate(text string) (CalendarDate, bool) {
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return CalendarDate{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return CalendarDate{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return CalendarDate{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return CalendarDate{}, false
	}

	date := NewCalendarDate(year, time.Month(month), day)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return CalendarDate{}, false
	}

	return date, true
}

// String renders the date using DateLayout.
func (d CalendarDate) String() string {
	return d.Format(DateLayout)
}
