package unbusy

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Section is a subdivision of a department cohort of up to sixty students.
type Section int

// The three sections of a cohort.
const (
	SectionA Section = iota
	SectionB
	SectionC
)

var sectionNames = [...]string{"A", "B", "C"}

// ParseSection resolves the letter form of a section.
func ParseSection(name string) (Section, error) {
	for i, n := range sectionNames {
		if n == name {
			return Section(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown section %q", ErrParse, name)
}

func (s Section) String() string {
	if s >= SectionA && s <= SectionC {
		return sectionNames[s]
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Section) MarshalText() ([]byte, error) {
	if s < SectionA || s > SectionC {
		return nil, &InvariantError{Message: fmt.Sprintf("unknown section %d", int(s))}
	}
	return []byte(sectionNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Section) UnmarshalText(text []byte) error {
	parsed, err := ParseSection(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Section) MarshalYAML() (interface{}, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Section) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("%w: section: %v", ErrParse, err)
	}
	return s.UnmarshalText([]byte(name))
}

// Thirty identifies a half-section of up to thirty students. Valid runtime
// values are 1 and 2; 0 is the "unspecified" sentinel used only by WhoScope.
// The wire form is the bare number.
type Thirty uint8

// Thirty values.
const (
	ThirtyUnspecified Thirty = 0
	ThirtyFirst       Thirty = 1
	ThirtySecond      Thirty = 2
)

// NewThirty validates v as a thirty identifier.
func NewThirty(v uint8) (Thirty, error) {
	if v > uint8(ThirtySecond) {
		return 0, fmt.Errorf("%w: thirty must be 0, 1 or 2, got %d", ErrParse, v)
	}
	return Thirty(v), nil
}

// UnmarshalJSON implements json.Unmarshaler, rejecting values outside the
// closed set.
func (t *Thirty) UnmarshalJSON(data []byte) error {
	var v uint8
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: thirty: %v", ErrParse, err)
	}
	parsed, err := NewThirty(v)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler, rejecting values outside the
// closed set.
func (t *Thirty) UnmarshalYAML(value *yaml.Node) error {
	var v uint8
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("%w: thirty: %v", ErrParse, err)
	}
	parsed, err := NewThirty(v)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Roll is a RUET roll number: up to seven digits encoding the admission
// series, the department tag and the roll within the department. Values are
// built with NewRoll or ParseRoll, or by deserialization, all of which
// validate; the derivation methods are therefore total. The zero Roll is not
// a valid value, and derivation methods panic with an *InvariantError when
// they observe a roll that did not come from a validated constructor.
type Roll struct {
	value uint32
}

// NewRoll validates v as a roll number. It fails with an error matching
// ErrInvalidRoll, carrying v, unless v has at most seven digits, its
// department digits ((v/1000) mod 100) name a known department tag, and its
// roll-in-department (v mod 1000) lies in [1, 180].
func NewRoll(v uint32) (Roll, error) {
	if v < 10_000_000 {
		if _, ok := DepartmentFromTag(v / 1000 % 100); ok {
			if n := v % 1000; 1 <= n && n <= 180 {
				return Roll{value: v}, nil
			}
		}
	}
	return Roll{}, &RollError{Roll: v}
}

// ParseRoll interprets s as an unsigned decimal roll number and validates
// it. A malformed number yields an error matching ErrParse; a well-formed
// number failing validation yields an error matching ErrInvalidRoll.
func ParseRoll(s string) (Roll, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Roll{}, fmt.Errorf("%w: roll %q: %v", ErrParse, s, err)
	}
	return NewRoll(uint32(v))
}

// Value returns the raw integer form of the roll.
func (r Roll) Value() uint32 { return r.value }

// Series returns the admission-year series of the roll.
func (r Roll) Series() uint32 { return r.value / 100_000 }

// RollInDept returns the roll within the department, in [1, 180].
func (r Roll) RollInDept() uint32 { return r.value % 1000 }

// Department returns the department encoded in the roll.
func (r Roll) Department() Department {
	d, ok := DepartmentFromTag(r.value / 1000 % 100)
	if !ok {
		panic(&InvariantError{Message: fmt.Sprintf("roll %d names no department", r.value)})
	}
	return d
}

// Section returns the section of the student: A for rolls 1-60, B for
// 61-120, C for 121-180.
func (r Roll) Section() Section {
	switch n := r.RollInDept(); {
	case 1 <= n && n <= 60:
		return SectionA
	case 61 <= n && n <= 120:
		return SectionB
	case 121 <= n && n <= 180:
		return SectionC
	default:
		panic(&InvariantError{Message: fmt.Sprintf("invalid roll in department: %d", n)})
	}
}

// Thirty returns the half-section of the student: the first thirty of each
// section gets ThirtyFirst, the second gets ThirtySecond.
func (r Roll) Thirty() Thirty {
	switch n := r.RollInDept(); {
	case 1 <= n && n <= 30, 61 <= n && n <= 90, 121 <= n && n <= 150:
		return ThirtyFirst
	case 31 <= n && n <= 60, 91 <= n && n <= 120, 151 <= n && n <= 180:
		return ThirtySecond
	default:
		panic(&InvariantError{Message: fmt.Sprintf("invalid roll in department: %d", n)})
	}
}

func (r Roll) String() string { return strconv.FormatUint(uint64(r.value), 10) }

// MarshalJSON encodes the roll as its bare integer form.
func (r Roll) MarshalJSON() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalJSON decodes an integer roll and revalidates it.
func (r *Roll) UnmarshalJSON(data []byte) error {
	var v uint32
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: roll: %v", ErrParse, err)
	}
	parsed, err := NewRoll(v)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Roll) MarshalYAML() (interface{}, error) { return r.value, nil }

// UnmarshalYAML implements yaml.Unmarshaler, revalidating the value.
func (r *Roll) UnmarshalYAML(value *yaml.Node) error {
	var v uint32
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("%w: roll: %v", ErrParse, err)
	}
	parsed, err := NewRoll(v)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
