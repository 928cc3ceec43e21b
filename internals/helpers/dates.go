package helper

import (
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into midnight UTC.
// Every day-granularity value in the system goes through here so that
// date equality holds across drivers.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateKey formats a time as the YYYY-MM-DD key used in schedule maps.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// BusinessDates returns every non-weekend date key in [start, end], inclusive.
// Holidays are not excluded here; they are annotated by the schedule views.
func BusinessDates(start, end time.Time) []string {
	dates := []string{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			dates = append(dates, DateKey(d))
		}
	}
	return dates
}
