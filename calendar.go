package unbusy

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DateDayKind discriminates the variants of a DateDayMapping. The zero
// DateDayKind is invalid, so the zero DateDayMapping is recognizably empty.
type DateDayKind int

// DateDayMapping variants.
const (
	DateIsClassDay DateDayKind = iota + 1
	DateIsWeekend
	DateIsHoliday
	DateIsOffDay
)

var dateDayTags = map[DateDayKind]string{
	DateIsClassDay: "day",
	DateIsWeekend:  "weekend",
	DateIsHoliday:  "holiday",
	DateIsOffDay:   "offDay",
}

func (k DateDayKind) String() string {
	if tag, ok := dateDayTags[k]; ok {
		return tag
	}
	return fmt.Sprintf("DateDayKind(%d)", int(k))
}

// DateDayMapping is the resolution of one calendar date against the
// academic calendar: an active class day of the cycle, a weekend, an
// official holiday, or a day taken off by a notice. The mapping is produced
// by a calendar resolver outside this library; the model fixes only its
// shape and wire form. Like Notice it is a closed, externally tagged sum;
// the payload-less weekend variant is the bare tag "weekend".
type DateDayMapping struct {
	kind    DateDayKind
	day     Day
	holiday *Holiday
	notice  *Notice
}

// ClassDay marks the date as the given active day of the cycle.
func ClassDay(d Day) DateDayMapping { return DateDayMapping{kind: DateIsClassDay, day: d} }

// Weekend marks the date as a weekend day.
func Weekend() DateDayMapping { return DateDayMapping{kind: DateIsWeekend} }

// OnHoliday marks the date as falling within an official holiday.
func OnHoliday(h Holiday) DateDayMapping {
	return DateDayMapping{kind: DateIsHoliday, holiday: &h}
}

// OffDay marks the date as removed from the cycle by a notice.
func OffDay(n Notice) DateDayMapping {
	return DateDayMapping{kind: DateIsOffDay, notice: &n}
}

// Kind returns the variant discriminator; zero for the empty mapping.
func (m DateDayMapping) Kind() DateDayKind { return m.kind }

// Day returns the cycle day of a class-day mapping.
func (m DateDayMapping) Day() (Day, bool) {
	if m.kind == DateIsClassDay {
		return m.day, true
	}
	return 0, false
}

// Holiday returns the holiday of a holiday mapping.
func (m DateDayMapping) Holiday() (Holiday, bool) {
	if m.holiday != nil {
		return *m.holiday, true
	}
	return Holiday{}, false
}

// Notice returns the notice of an off-day mapping.
func (m DateDayMapping) Notice() (Notice, bool) {
	if m.notice != nil {
		return *m.notice, true
	}
	return Notice{}, false
}

func (m DateDayMapping) variant() (string, interface{}, error) {
	switch m.kind {
	case DateIsClassDay:
		return dateDayTags[m.kind], m.day, nil
	case DateIsWeekend:
		return dateDayTags[m.kind], nil, nil
	case DateIsHoliday:
		if m.holiday != nil {
			return dateDayTags[m.kind], m.holiday, nil
		}
	case DateIsOffDay:
		if m.notice != nil {
			return dateDayTags[m.kind], m.notice, nil
		}
	}
	return "", nil, &InvariantError{Message: "date-day mapping carries no variant"}
}

// MarshalJSON implements json.Marshaler.
func (m DateDayMapping) MarshalJSON() ([]byte, error) {
	tag, payload, err := m.variant()
	if err != nil {
		return nil, err
	}
	if m.kind == DateIsWeekend {
		return json.Marshal(tag)
	}
	return json.Marshal(map[string]interface{}{tag: payload})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *DateDayMapping) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "weekend" {
			return fmt.Errorf("%w: unknown date-day mapping %q", ErrParse, tag)
		}
		*m = Weekend()
		return nil
	}
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("%w: date-day mapping: %v", ErrParse, err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("%w: date-day mapping must carry exactly one tag", ErrParse)
	}
	for tag, raw := range tagged {
		switch tag {
		case "day":
			var d Day
			if err := json.Unmarshal(raw, &d); err != nil {
				return err
			}
			*m = ClassDay(d)
		case "holiday":
			var h Holiday
			if err := json.Unmarshal(raw, &h); err != nil {
				return err
			}
			*m = OnHoliday(h)
		case "offDay":
			var n Notice
			if err := json.Unmarshal(raw, &n); err != nil {
				return err
			}
			*m = OffDay(n)
		default:
			return fmt.Errorf("%w: unknown date-day mapping %q", ErrParse, tag)
		}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m DateDayMapping) MarshalYAML() (interface{}, error) {
	tag, payload, err := m.variant()
	if err != nil {
		return nil, err
	}
	if m.kind == DateIsWeekend {
		return tag, nil
	}
	return map[string]interface{}{tag: payload}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *DateDayMapping) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var tag string
		if err := value.Decode(&tag); err != nil {
			return fmt.Errorf("%w: date-day mapping: %v", ErrParse, err)
		}
		if tag != "weekend" {
			return fmt.Errorf("%w: unknown date-day mapping %q", ErrParse, tag)
		}
		*m = Weekend()
		return nil
	}
	tag, payload, err := singlePair(value, "date-day mapping")
	if err != nil {
		return err
	}
	switch tag {
	case "day":
		var d Day
		if err := payload.Decode(&d); err != nil {
			return err
		}
		*m = ClassDay(d)
	case "holiday":
		var h Holiday
		if err := payload.Decode(&h); err != nil {
			return err
		}
		*m = OnHoliday(h)
	case "offDay":
		var n Notice
		if err := payload.Decode(&n); err != nil {
			return err
		}
		*m = OffDay(n)
	default:
		return fmt.Errorf("%w: unknown date-day mapping %q", ErrParse, tag)
	}
	return nil
}
