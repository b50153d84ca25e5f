package unbusy

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// HolidaySpan is the duration of a holiday: a single day or an inclusive
// date range. The wire form is untagged; a span is recognized structurally
// by its keys, {"on": d} against {"from": d, "to": d}. A range never starts
// after it ends; both the constructor and the decoders reject reversed
// ranges with an error matching ErrInvalidSpan.
type HolidaySpan struct {
	from  Date
	to    Date
	multi bool
}

// SingleDay builds a one-day span.
func SingleDay(on Date) HolidaySpan { return HolidaySpan{from: on, to: on} }

// MultiDays builds an inclusive date range.
func MultiDays(from, to Date) (HolidaySpan, error) {
	if from.After(to) {
		return HolidaySpan{}, &SpanError{From: from, To: to}
	}
	return HolidaySpan{from: from, to: to, multi: true}, nil
}

// IsMultiDay reports whether the span is a from/to range rather than a
// single "on" day. A one-day range stays a range; the two forms serialize
// differently.
func (s HolidaySpan) IsMultiDay() bool { return s.multi }

// Start returns the first day of the span.
func (s HolidaySpan) Start() Date { return s.from }

// End returns the last day of the span, inclusive.
func (s HolidaySpan) End() Date { return s.to }

// Contains reports whether d falls within the span, inclusive on both ends.
func (s HolidaySpan) Contains(d Date) bool {
	return !d.Before(s.from) && !d.After(s.to)
}

func (s HolidaySpan) String() string {
	if s.multi {
		return fmt.Sprintf("%s to %s", s.from, s.to)
	}
	return s.from.String()
}

// spanWire is the shared untagged JSON/YAML form of a span, also embedded in
// the flattened Holiday form.
type spanWire struct {
	On   *Date `json:"on,omitempty" yaml:"on,omitempty"`
	From *Date `json:"from,omitempty" yaml:"from,omitempty"`
	To   *Date `json:"to,omitempty" yaml:"to,omitempty"`
}

func (s HolidaySpan) wire() spanWire {
	if s.multi {
		from, to := s.from, s.to
		return spanWire{From: &from, To: &to}
	}
	on := s.from
	return spanWire{On: &on}
}

func spanFromWire(w spanWire) (HolidaySpan, error) {
	switch {
	case w.On != nil && w.From == nil && w.To == nil:
		return SingleDay(*w.On), nil
	case w.On == nil && w.From != nil && w.To != nil:
		return MultiDays(*w.From, *w.To)
	default:
		return HolidaySpan{}, fmt.Errorf("%w: holiday span needs either on, or from and to", ErrParse)
	}
}

// MarshalJSON implements json.Marshaler.
func (s HolidaySpan) MarshalJSON() ([]byte, error) { return json.Marshal(s.wire()) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *HolidaySpan) UnmarshalJSON(data []byte) error {
	var w spanWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	parsed, err := spanFromWire(w)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s HolidaySpan) MarshalYAML() (interface{}, error) { return s.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *HolidaySpan) UnmarshalYAML(value *yaml.Node) error {
	var w spanWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	parsed, err := spanFromWire(w)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Holiday is an official holiday: the reason and the span it covers. The
// span is flattened into the surrounding wire form:
//
//	{ for: "Eid", on: "2020-05-24" }
//	{ for: "Winter", from: "2020-12-20", to: "2021-01-02" }
type Holiday struct {
	For  string
	Span HolidaySpan
}

type holidayWire struct {
	For string `json:"for" yaml:"for"`
	spanWire `yaml:",inline"`
}

func (h Holiday) wire() holidayWire {
	return holidayWire{For: h.For, spanWire: h.Span.wire()}
}

func (h *Holiday) fromWire(w holidayWire) error {
	span, err := spanFromWire(w.spanWire)
	if err != nil {
		return err
	}
	*h = Holiday{For: w.For, Span: span}
	return nil
}

// MarshalJSON implements json.Marshaler, flattening the span.
func (h Holiday) MarshalJSON() ([]byte, error) { return json.Marshal(h.wire()) }

// UnmarshalJSON implements json.Unmarshaler.
func (h *Holiday) UnmarshalJSON(data []byte) error {
	var w holidayWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return h.fromWire(w)
}

// MarshalYAML implements yaml.Marshaler, flattening the span.
func (h Holiday) MarshalYAML() (interface{}, error) { return h.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *Holiday) UnmarshalYAML(value *yaml.Node) error {
	var w holidayWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	return h.fromWire(w)
}
