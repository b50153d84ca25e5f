package unbusy

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// WhoScope names the students a notice applies to. The zero value means
// everyone; it is the only value elided from the wire form of a ClassOff
// notice, and decoders reconstitute it when the field is absent.
type WhoScope struct {
	Section *Section `json:"section,omitempty" yaml:"section,omitempty"`
	Thirty  Thirty   `json:"thirty" yaml:"thirty"`
}

// ScopeFor builds a WhoScope narrowed to one section. Pass
// ThirtyUnspecified to cover the whole section.
func ScopeFor(section Section, thirty Thirty) WhoScope {
	return WhoScope{Section: &section, Thirty: thirty}
}

// IsDefault reports whether the scope is the "everyone" default: no section
// and an unspecified thirty.
func (w WhoScope) IsDefault() bool {
	return w.Section == nil && w.Thirty == ThirtyUnspecified
}

// TimeScope is the part of the day a ClassOff notice covers: the whole day,
// optionally extended through a later last day, or one numbered period. The
// zero value is the plain all-day scope. Wire form is externally tagged:
// {"allDay": null}, {"allDay": "2020-03-05"} or {"period": 4}.
type TimeScope struct {
	kind   timeScopeKind
	until  *Date
	period uint8
}

type timeScopeKind int

const (
	scopeAllDay timeScopeKind = iota
	scopePeriod
)

// AllDay covers the entire notice date.
func AllDay() TimeScope { return TimeScope{} }

// AllDayThrough covers every day from the notice date through last,
// inclusive.
func AllDayThrough(last Date) TimeScope {
	return TimeScope{kind: scopeAllDay, until: &last}
}

// AtPeriod covers a single numbered period of the notice date.
func AtPeriod(period uint8) TimeScope {
	return TimeScope{kind: scopePeriod, period: period}
}

// IsAllDay reports whether the scope covers whole days.
func (t TimeScope) IsAllDay() bool { return t.kind == scopeAllDay }

// Through returns the inclusive last day of an all-day scope, when one was
// given.
func (t TimeScope) Through() (Date, bool) {
	if t.kind == scopeAllDay && t.until != nil {
		return *t.until, true
	}
	return Date{}, false
}

// Period returns the period number of a period scope.
func (t TimeScope) Period() (uint8, bool) {
	if t.kind == scopePeriod {
		return t.period, true
	}
	return 0, false
}

func (t TimeScope) String() string {
	switch t.kind {
	case scopePeriod:
		return fmt.Sprintf("period %d", t.period)
	default:
		if t.until != nil {
			return fmt.Sprintf("all day through %s", *t.until)
		}
		return "all day"
	}
}

// MarshalJSON implements json.Marshaler.
func (t TimeScope) MarshalJSON() ([]byte, error) {
	if t.kind == scopePeriod {
		return json.Marshal(map[string]uint8{"period": t.period})
	}
	return json.Marshal(map[string]*Date{"allDay": t.until})
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TimeScope) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("%w: time scope: %v", ErrParse, err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("%w: time scope must carry exactly one tag", ErrParse)
	}
	for tag, raw := range tagged {
		switch tag {
		case "allDay":
			var until *Date
			if err := json.Unmarshal(raw, &until); err != nil {
				return err
			}
			*t = TimeScope{kind: scopeAllDay, until: until}
		case "period":
			var period uint8
			if err := json.Unmarshal(raw, &period); err != nil {
				return fmt.Errorf("%w: time scope period: %v", ErrParse, err)
			}
			*t = AtPeriod(period)
		default:
			return fmt.Errorf("%w: unknown time scope %q", ErrParse, tag)
		}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t TimeScope) MarshalYAML() (interface{}, error) {
	if t.kind == scopePeriod {
		return map[string]uint8{"period": t.period}, nil
	}
	return map[string]*Date{"allDay": t.until}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TimeScope) UnmarshalYAML(value *yaml.Node) error {
	tag, payload, err := singlePair(value, "time scope")
	if err != nil {
		return err
	}
	switch tag {
	case "allDay":
		var until *Date
		if err := payload.Decode(&until); err != nil {
			return err
		}
		*t = TimeScope{kind: scopeAllDay, until: until}
	case "period":
		var period uint8
		if err := payload.Decode(&period); err != nil {
			return fmt.Errorf("%w: time scope period: %v", ErrParse, err)
		}
		*t = AtPeriod(period)
	default:
		return fmt.Errorf("%w: unknown time scope %q", ErrParse, tag)
	}
	return nil
}

// singlePair unpacks an externally tagged YAML node: a mapping with exactly
// one key, returning the tag and the payload node.
func singlePair(value *yaml.Node, what string) (string, *yaml.Node, error) {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return "", nil, fmt.Errorf("%w: %s must be a single-key mapping", ErrParse, what)
	}
	var tag string
	if err := value.Content[0].Decode(&tag); err != nil {
		return "", nil, fmt.Errorf("%w: %s tag: %v", ErrParse, what, err)
	}
	return tag, value.Content[1], nil
}

// ClassOff announces a class suspension. DayOff marks the whole day as
// removed from the cycle calendar, so the day's routine shifts instead of
// being skipped.
type ClassOff struct {
	Date    Date
	Time    TimeScope
	ForWhom WhoScope
	DayOff  bool
}

// classOffWire is the shared JSON/YAML form; ForWhom is a pointer so the
// default scope can be elided on encode and reconstituted on decode.
type classOffWire struct {
	Date    Date      `json:"date" yaml:"date"`
	Time    TimeScope `json:"time" yaml:"time"`
	ForWhom *WhoScope `json:"forWhom,omitempty" yaml:"forWhom,omitempty"`
	DayOff  bool      `json:"dayOff" yaml:"dayOff"`
}

func (c ClassOff) wire() classOffWire {
	w := classOffWire{Date: c.Date, Time: c.Time, DayOff: c.DayOff}
	if !c.ForWhom.IsDefault() {
		scope := c.ForWhom
		w.ForWhom = &scope
	}
	return w
}

func (c *ClassOff) fromWire(w classOffWire) {
	*c = ClassOff{Date: w.Date, Time: w.Time, DayOff: w.DayOff}
	if w.ForWhom != nil {
		c.ForWhom = *w.ForWhom
	}
}

// MarshalJSON implements json.Marshaler, eliding the default ForWhom.
func (c ClassOff) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *ClassOff) UnmarshalJSON(data []byte) error {
	var w classOffWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.fromWire(w)
	return nil
}

// MarshalYAML implements yaml.Marshaler, eliding the default ForWhom.
func (c ClassOff) MarshalYAML() (interface{}, error) { return c.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ClassOff) UnmarshalYAML(value *yaml.Node) error {
	var w classOffWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	c.fromWire(w)
	return nil
}

// ExtraClass announces an additional class at a wall-clock time.
type ExtraClass struct {
	Date    Date      `json:"date" yaml:"date"`
	Time    time.Time `json:"time" yaml:"time"`
	ForWhom WhoScope  `json:"forWhom" yaml:"forWhom"`
}

// ClassTest schedules a test in cycle/day space rather than calendar space:
// the concrete date follows from where the cycle counter stands.
type ClassTest struct {
	Day       Day    `json:"day" yaml:"day"`
	Cycle     uint8  `json:"cycle" yaml:"cycle"`
	Period    uint8  `json:"period" yaml:"period"`
	Course    string `json:"course" yaml:"course"`
	Teacher   string `json:"teacher" yaml:"teacher"`
	ExtraInfo string `json:"extraInfo" yaml:"extraInfo"` // should carry the syllabus
}

// Exam announces an exam.
type Exam struct {
	Date      Date   `json:"date" yaml:"date"`
	Course    string `json:"course" yaml:"course"`
	ExtraInfo string `json:"extraInfo" yaml:"extraInfo"` // should carry the syllabus
}

// Others is a generic announcement.
type Others struct {
	Date    Date   `json:"date" yaml:"date"`
	Message string `json:"message" yaml:"message"`
}

// NoticeKind discriminates the variants of a Notice. The zero NoticeKind is
// invalid, so the zero Notice is recognizably empty.
type NoticeKind int

// Notice variants.
const (
	NoticeClassOff NoticeKind = iota + 1
	NoticeExtraClass
	NoticeClassTest
	NoticeExam
	NoticeOthers
)

var noticeTags = map[NoticeKind]string{
	NoticeClassOff:   "classOff",
	NoticeExtraClass: "extraClass",
	NoticeClassTest:  "classTest",
	NoticeExam:       "exam",
	NoticeOthers:     "others",
}

func (k NoticeKind) String() string {
	if tag, ok := noticeTags[k]; ok {
		return tag
	}
	return fmt.Sprintf("NoticeKind(%d)", int(k))
}

// Notice is a calendar override: a class suspension, an extra class, a class
// test, an exam, or a generic announcement. It is a closed sum: exactly one
// variant is set, and values come from the New* constructors or from
// deserialization. The wire form is externally tagged, an object with a
// single key naming the variant.
type Notice struct {
	kind       NoticeKind
	classOff   *ClassOff
	extraClass *ExtraClass
	classTest  *ClassTest
	exam       *Exam
	others     *Others
}

// NewClassOff wraps a class-suspension announcement as a Notice.
func NewClassOff(v ClassOff) Notice { return Notice{kind: NoticeClassOff, classOff: &v} }

// NewExtraClass wraps an extra-class announcement as a Notice.
func NewExtraClass(v ExtraClass) Notice { return Notice{kind: NoticeExtraClass, extraClass: &v} }

// NewClassTest wraps a class-test announcement as a Notice.
func NewClassTest(v ClassTest) Notice { return Notice{kind: NoticeClassTest, classTest: &v} }

// NewExam wraps an exam announcement as a Notice.
func NewExam(v Exam) Notice { return Notice{kind: NoticeExam, exam: &v} }

// NewOthers wraps a generic announcement as a Notice.
func NewOthers(v Others) Notice { return Notice{kind: NoticeOthers, others: &v} }

// Kind returns the variant discriminator; zero for the empty Notice.
func (n Notice) Kind() NoticeKind { return n.kind }

// ClassOff returns the payload of a class-off notice.
func (n Notice) ClassOff() (ClassOff, bool) {
	if n.classOff != nil {
		return *n.classOff, true
	}
	return ClassOff{}, false
}

// ExtraClass returns the payload of an extra-class notice.
func (n Notice) ExtraClass() (ExtraClass, bool) {
	if n.extraClass != nil {
		return *n.extraClass, true
	}
	return ExtraClass{}, false
}

// ClassTest returns the payload of a class-test notice.
func (n Notice) ClassTest() (ClassTest, bool) {
	if n.classTest != nil {
		return *n.classTest, true
	}
	return ClassTest{}, false
}

// Exam returns the payload of an exam notice.
func (n Notice) Exam() (Exam, bool) {
	if n.exam != nil {
		return *n.exam, true
	}
	return Exam{}, false
}

// Others returns the payload of a generic notice.
func (n Notice) Others() (Others, bool) {
	if n.others != nil {
		return *n.others, true
	}
	return Others{}, false
}

func (n Notice) variant() (string, interface{}, error) {
	switch n.kind {
	case NoticeClassOff:
		if n.classOff != nil {
			return noticeTags[n.kind], n.classOff, nil
		}
	case NoticeExtraClass:
		if n.extraClass != nil {
			return noticeTags[n.kind], n.extraClass, nil
		}
	case NoticeClassTest:
		if n.classTest != nil {
			return noticeTags[n.kind], n.classTest, nil
		}
	case NoticeExam:
		if n.exam != nil {
			return noticeTags[n.kind], n.exam, nil
		}
	case NoticeOthers:
		if n.others != nil {
			return noticeTags[n.kind], n.others, nil
		}
	}
	return "", nil, &InvariantError{Message: "notice carries no variant"}
}

// MarshalJSON implements json.Marshaler.
func (n Notice) MarshalJSON() ([]byte, error) {
	tag, payload, err := n.variant()
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]interface{}{tag: payload})
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Notice) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("%w: notice: %v", ErrParse, err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("%w: notice must carry exactly one tag", ErrParse)
	}
	for tag, raw := range tagged {
		switch tag {
		case "classOff":
			var v ClassOff
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*n = NewClassOff(v)
		case "extraClass":
			var v ExtraClass
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*n = NewExtraClass(v)
		case "classTest":
			var v ClassTest
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*n = NewClassTest(v)
		case "exam":
			var v Exam
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*n = NewExam(v)
		case "others":
			var v Others
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*n = NewOthers(v)
		default:
			return fmt.Errorf("%w: unknown notice %q", ErrParse, tag)
		}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (n Notice) MarshalYAML() (interface{}, error) {
	tag, payload, err := n.variant()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{tag: payload}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Notice) UnmarshalYAML(value *yaml.Node) error {
	tag, payload, err := singlePair(value, "notice")
	if err != nil {
		return err
	}
	switch tag {
	case "classOff":
		var v ClassOff
		if err := payload.Decode(&v); err != nil {
			return err
		}
		*n = NewClassOff(v)
	case "extraClass":
		var v ExtraClass
		if err := payload.Decode(&v); err != nil {
			return err
		}
		*n = NewExtraClass(v)
	case "classTest":
		var v ClassTest
		if err := payload.Decode(&v); err != nil {
			return err
		}
		*n = NewClassTest(v)
	case "exam":
		var v Exam
		if err := payload.Decode(&v); err != nil {
			return err
		}
		*n = NewExam(v)
	case "others":
		var v Others
		if err := payload.Decode(&v); err != nil {
			return err
		}
		*n = NewOthers(v)
	default:
		return fmt.Errorf("%w: unknown notice %q", ErrParse, tag)
	}
	return nil
}
