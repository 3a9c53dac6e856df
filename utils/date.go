package utils

import (
	"time"
)

// DayLayout is the calendar-day form used in ledger paths, e.g. 14.10.2026.
const DayLayout = "02.01.2006"

// FormatDay renders t as a calendar day in loc.
func FormatDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// ParseDay checks that s is a DD.MM.YYYY day and returns it in canonical
// form (zero padded), which is what FormatDay produces.
func ParseDay(s string, loc *time.Location) (string, error) {
	d, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return "", err
	}
	return d.Format(DayLayout), nil
}
