package unbusy

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// dateLayout is the wire form of a Date: an ISO-8601 calendar date.
const dateLayout = "2006-01-02"

// Date is a civil calendar date with no time-of-day and no timezone. The
// academic calendar works in dates, never instants; the one wall-clock value
// in the model (ExtraClass.Time) uses time.Time directly.
type Date struct {
	t time.Time
}

// NewDate builds the given calendar date. Out-of-range values are normalized
// the same way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate interprets s as a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q", ErrParse, s)
	}
	return Date{t: t}, nil
}

// Date returns the year, month and day.
func (d Date) Date() (int, time.Month, int) { return d.t.Date() }

// Weekday returns the calendar weekday. This is the Gregorian weekday, not
// the academic Day of the five-day cycle.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d falls before o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d falls after o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether d and o are the same calendar date.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) String() string { return d.t.Format(dateLayout) }

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) { return d.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("%w: date: %v", ErrParse, err)
	}
	return d.UnmarshalText([]byte(s))
}
