package xmlfeed

import (
	"encoding/json"
	"time"
)

// Layouts used by the feed. Callers always pick one explicitly; layouts are
// never inferred from the value.
const (
	DayMonthYear     = "02 Jan 2006"
	ISODate          = "2006-01-02"
	HourMinute       = "15:04"
	HourMinuteSecond = "15:04:05"
)

// Date is a calendar date without a time or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Format formats the date with a time package layout.
func (d Date) Format(layout string) string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(layout)
}

func (d Date) String() string {
	return d.Format(ISODate)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// TimeOfDay is a wall clock time without a date or location.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Format formats the time of day with a time package layout.
func (t TimeOfDay) Format(layout string) string {
	return time.Date(0, time.January, 1, t.Hour, t.Minute, t.Second, 0, time.UTC).Format(layout)
}

func (t TimeOfDay) String() string {
	return t.Format(HourMinuteSecond)
}

// MarshalJSON encodes the time of day as "HH:MM:SS".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
