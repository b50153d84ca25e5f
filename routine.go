package unbusy

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ClassFrequency describes how often, and for whom, a routine entry gathers.
// It is a closed sum built with the constructor functions below; the zero
// value is EveryCycleWithAll. Payload-less variants serialize as their bare
// tag ("everyCycleWithAll"), the two carrying a Thirty as a single-key
// object ({"oddCyclesWith": 2}).
type ClassFrequency struct {
	kind   frequencyKind
	thirty Thirty
}

type frequencyKind int

const (
	freqEveryCycleWithAll frequencyKind = iota
	freqEveryCycleWith
	freqOddCyclesWithAll
	freqEvenCyclesWithAll
	freqOddCyclesWith
)

var frequencyTags = map[frequencyKind]string{
	freqEveryCycleWithAll: "everyCycleWithAll",
	freqEveryCycleWith:    "everyCycleWith",
	freqOddCyclesWithAll:  "oddCyclesWithAll",
	freqEvenCyclesWithAll: "evenCyclesWithAll",
	freqOddCyclesWith:     "oddCyclesWith",
}

var unitFrequencyKinds = map[string]frequencyKind{
	"everyCycleWithAll": freqEveryCycleWithAll,
	"oddCyclesWithAll":  freqOddCyclesWithAll,
	"evenCyclesWithAll": freqEvenCyclesWithAll,
}

var taggedFrequencyKinds = map[string]frequencyKind{
	"everyCycleWith": freqEveryCycleWith,
	"oddCyclesWith":  freqOddCyclesWith,
}

// EveryCycleWithAll gathers all sixty students of the section every cycle.
// This is the default frequency and the zero ClassFrequency.
func EveryCycleWithAll() ClassFrequency { return ClassFrequency{} }

// EveryCycleWith gathers only the named thirty, every cycle.
func EveryCycleWith(t Thirty) ClassFrequency {
	return ClassFrequency{kind: freqEveryCycleWith, thirty: t}
}

// OddCyclesWithAll gathers the whole section on odd cycles only.
func OddCyclesWithAll() ClassFrequency { return ClassFrequency{kind: freqOddCyclesWithAll} }

// EvenCyclesWithAll gathers the whole section on even cycles only.
func EvenCyclesWithAll() ClassFrequency { return ClassFrequency{kind: freqEvenCyclesWithAll} }

// OddCyclesWith gathers the named thirty on odd cycles. The routine format
// documents the other thirty as gathering on even cycles, but the decision
// rule has never matched anyone on even cycles; see WouldSitFor.
func OddCyclesWith(t Thirty) ClassFrequency {
	return ClassFrequency{kind: freqOddCyclesWith, thirty: t}
}

// Thirty returns the sub-group carried by an EveryCycleWith or OddCyclesWith
// frequency; ok is false for the payload-less variants.
func (f ClassFrequency) Thirty() (Thirty, bool) {
	if f.kind == freqEveryCycleWith || f.kind == freqOddCyclesWith {
		return f.thirty, true
	}
	return ThirtyUnspecified, false
}

func (f ClassFrequency) String() string {
	tag := frequencyTags[f.kind]
	if _, ok := f.Thirty(); ok {
		return fmt.Sprintf("%s(%d)", tag, f.thirty)
	}
	return tag
}

// MarshalJSON implements json.Marshaler.
func (f ClassFrequency) MarshalJSON() ([]byte, error) {
	if _, ok := f.Thirty(); ok {
		return json.Marshal(map[string]Thirty{frequencyTags[f.kind]: f.thirty})
	}
	return json.Marshal(frequencyTags[f.kind])
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *ClassFrequency) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		kind, ok := unitFrequencyKinds[tag]
		if !ok {
			return fmt.Errorf("%w: unknown class frequency %q", ErrParse, tag)
		}
		*f = ClassFrequency{kind: kind}
		return nil
	}
	var tagged map[string]Thirty
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("%w: class frequency: %v", ErrParse, err)
	}
	return f.fromTagged(tagged)
}

// MarshalYAML implements yaml.Marshaler.
func (f ClassFrequency) MarshalYAML() (interface{}, error) {
	if _, ok := f.Thirty(); ok {
		return map[string]Thirty{frequencyTags[f.kind]: f.thirty}, nil
	}
	return frequencyTags[f.kind], nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *ClassFrequency) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var tag string
		if err := value.Decode(&tag); err != nil {
			return fmt.Errorf("%w: class frequency: %v", ErrParse, err)
		}
		kind, ok := unitFrequencyKinds[tag]
		if !ok {
			return fmt.Errorf("%w: unknown class frequency %q", ErrParse, tag)
		}
		*f = ClassFrequency{kind: kind}
		return nil
	case yaml.MappingNode:
		var tagged map[string]Thirty
		if err := value.Decode(&tagged); err != nil {
			return fmt.Errorf("%w: class frequency: %v", ErrParse, err)
		}
		return f.fromTagged(tagged)
	default:
		return fmt.Errorf("%w: class frequency must be a tag or a single-key mapping", ErrParse)
	}
}

func (f *ClassFrequency) fromTagged(tagged map[string]Thirty) error {
	if len(tagged) != 1 {
		return fmt.Errorf("%w: class frequency must carry exactly one tag", ErrParse)
	}
	for tag, thirty := range tagged {
		kind, ok := taggedFrequencyKinds[tag]
		if !ok {
			return fmt.Errorf("%w: unknown class frequency %q", ErrParse, tag)
		}
		*f = ClassFrequency{kind: kind, thirty: thirty}
	}
	return nil
}

// DefaultContactHours is assumed when a routine entry does not state its
// contact hours.
const DefaultContactHours = 1

// ClassInRoutine is one scheduled class of the weekly routine. Fields are
// not validated and empty strings are permitted: routine files are
// hand-edited and partially filled drafts must still load.
type ClassInRoutine struct {
	Course       string
	Teacher      string
	Period       uint8
	ClassRoom    string
	ContactHours uint8          // defaults to DefaultContactHours when absent from the wire
	Frequency    ClassFrequency // defaults to EveryCycleWithAll
	Comment      string         // extra info, like the topic to be discussed
}

// classInRoutineWire is the shared JSON/YAML form. Pointer fields detect
// absence on decode; on encode they are always set, as the contract emits
// every field of a routine entry.
type classInRoutineWire struct {
	Course       string          `json:"course" yaml:"course"`
	Teacher      string          `json:"teacher" yaml:"teacher"`
	Period       uint8           `json:"period" yaml:"period"`
	ClassRoom    string          `json:"classRoom" yaml:"classRoom"`
	ContactHours *uint8          `json:"contactHours,omitempty" yaml:"contactHours,omitempty"`
	Frequency    *ClassFrequency `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	Comment      *string         `json:"comment,omitempty" yaml:"comment,omitempty"`
}

func (c ClassInRoutine) wire() classInRoutineWire {
	hours, freq, comment := c.ContactHours, c.Frequency, c.Comment
	return classInRoutineWire{
		Course:       c.Course,
		Teacher:      c.Teacher,
		Period:       c.Period,
		ClassRoom:    c.ClassRoom,
		ContactHours: &hours,
		Frequency:    &freq,
		Comment:      &comment,
	}
}

func (c *ClassInRoutine) fromWire(w classInRoutineWire) {
	*c = ClassInRoutine{
		Course:       w.Course,
		Teacher:      w.Teacher,
		Period:       w.Period,
		ClassRoom:    w.ClassRoom,
		ContactHours: DefaultContactHours,
	}
	if w.ContactHours != nil {
		c.ContactHours = *w.ContactHours
	}
	if w.Frequency != nil {
		c.Frequency = *w.Frequency
	}
	if w.Comment != nil {
		c.Comment = *w.Comment
	}
}

// MarshalJSON implements json.Marshaler.
func (c ClassInRoutine) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// UnmarshalJSON implements json.Unmarshaler, applying the documented
// defaults for absent fields.
func (c *ClassInRoutine) UnmarshalJSON(data []byte) error {
	var w classInRoutineWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.fromWire(w)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c ClassInRoutine) MarshalYAML() (interface{}, error) { return c.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler, applying the documented
// defaults for absent fields.
func (c *ClassInRoutine) UnmarshalYAML(value *yaml.Node) error {
	var w classInRoutineWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	c.fromWire(w)
	return nil
}

// WouldSitFor reports whether this class gathers for the given student on
// the given cycle:
//
//	EveryCycleWithAll    always
//	EveryCycleWith(t)    roll's thirty is t
//	OddCyclesWithAll     cycle is odd
//	EvenCyclesWithAll    cycle is even
//	OddCyclesWith(t)     cycle is odd and roll's thirty is t
//
// Cycle 0 counts as even. OddCyclesWith matches nobody on even cycles, not
// even the counterpart thirty that the routine format documents as attending
// then. Downstream consumers depend on that behavior; it stays until the
// domain owners rule otherwise.
func (c *ClassInRoutine) WouldSitFor(roll Roll, cycle uint8) bool {
	odd := cycle%2 != 0
	switch f := c.Frequency; f.kind {
	case freqEveryCycleWithAll:
		return true
	case freqEveryCycleWith:
		return roll.Thirty() == f.thirty
	case freqOddCyclesWithAll:
		return odd
	case freqEvenCyclesWithAll:
		return !odd
	case freqOddCyclesWith:
		return odd && roll.Thirty() == f.thirty
	default:
		return false
	}
}

// ClassRoutine is the recurring weekly schedule: the classes of each day of
// the cycle. Key order is irrelevant; the slice order of a day is
// presentation order and round-trips through serialization.
type ClassRoutine map[Day][]ClassInRoutine
