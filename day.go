package unbusy

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Day is a symbolic slot in the five-day academic weekly cycle. It is
// distinct from the calendar weekday: which Day a given date maps to is
// decided by the calendar resolver, not by the Gregorian calendar.
type Day int

// The five days of the academic cycle, in cyclic order.
const (
	DayA Day = iota
	DayB
	DayC
	DayD
	DayE
)

// dayCount is the length of the academic weekly cycle.
const dayCount = 5

var dayNames = [dayCount]string{"A", "B", "C", "D", "E"}

// ParseDay resolves the letter form of a day.
func ParseDay(name string) (Day, error) {
	for i, n := range dayNames {
		if n == name {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown day %q", ErrParse, name)
}

// Succ returns the next day in the cyclic order A→B→C→D→E→A.
func (d Day) Succ() Day { return (d + 1) % dayCount }

// Advance moves d to its successor in place and returns the new value.
func (d *Day) Advance() Day {
	*d = d.Succ()
	return *d
}

func (d Day) String() string {
	if d >= DayA && d <= DayE {
		return dayNames[d]
	}
	return fmt.Sprintf("Day(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler. Day doubles as the map key
// of ClassRoutine, which is why the text form is the canonical one.
func (d Day) MarshalText() ([]byte, error) {
	if d < DayA || d > DayE {
		return nil, &InvariantError{Message: fmt.Sprintf("unknown day %d", int(d))}
	}
	return []byte(dayNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Day) MarshalYAML() (interface{}, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Day) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("%w: day: %v", ErrParse, err)
	}
	return d.UnmarshalText([]byte(name))
}
