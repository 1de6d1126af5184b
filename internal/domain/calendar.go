package domain

import (
	"fmt"
	"time"
)

const calendarDateLayout = "2006-01-02"

// CalendarDate is a date-only value. All construction paths truncate to a UTC
// calendar day so that entry partitioning never mixes timezones: the
// normalization happens once at ingestion, not per comparison.
type CalendarDate struct {
	t time.Time
}

// NewCalendarDate builds a CalendarDate from year, month, day.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseCalendarDate parses a YYYY-MM-DD string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(calendarDateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return CalendarDate{t: t.UTC()}, nil
}

// DateOf truncates a timestamp to its UTC calendar day.
func DateOf(t time.Time) CalendarDate {
	u := t.UTC()
	return NewCalendarDate(u.Year(), u.Month(), u.Day())
}

// Prev returns the previous calendar day.
func (d CalendarDate) Prev() CalendarDate {
	return CalendarDate{t: d.t.AddDate(0, 0, -1)}
}

// AddDays returns the date shifted by n days.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDate{t: d.t.AddDate(0, 0, n)}
}

// Equal reports whether two dates are the same calendar day.
func (d CalendarDate) Equal(o CalendarDate) bool { return d.t.Equal(o.t) }

// Before reports whether d is an earlier calendar day than o.
func (d CalendarDate) Before(o CalendarDate) bool { return d.t.Before(o.t) }

// After reports whether d is a later calendar day than o.
func (d CalendarDate) After(o CalendarDate) bool { return d.t.After(o.t) }

// IsZero reports whether the date is the zero value.
func (d CalendarDate) IsZero() bool { return d.t.IsZero() }

// Time returns midnight UTC of the calendar day.
func (d CalendarDate) Time() time.Time { return d.t }

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string { return d.t.Format(calendarDateLayout) }

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	parsed, err := ParseCalendarDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
