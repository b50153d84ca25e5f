package unbusy

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Department is an academic department of RUET, identified by a stable
// integer tag. Engineering departments carry tags 0-13; basic-science and
// humanities departments carry tags 100-103. The tags are part of the wire
// contract and never change across releases: a roll number encodes its
// department as these digits, and any numeric rendition of a Department must
// use them. The display form is the identifier spelling ("EEE", "CFPE").
type Department int

// Engineering departments.
const (
	DeptCE   Department = 0
	DeptEEE  Department = 1
	DeptME   Department = 2
	DeptCSE  Department = 3
	DeptETE  Department = 4
	DeptIPE  Department = 5
	DeptGCE  Department = 6
	DeptURP  Department = 7
	DeptMTE  Department = 8
	DeptArch Department = 9
	DeptECE  Department = 10
	DeptCFPE Department = 11
	DeptBECM Department = 12
	DeptMSE  Department = 13
)

// Basic-science and humanities departments.
const (
	DeptChem Department = 100
	DeptMath Department = 101
	DeptPhy  Department = 102
	DeptHum  Department = 103
)

var departmentNames = map[Department]string{
	DeptCE:   "CE",
	DeptEEE:  "EEE",
	DeptME:   "ME",
	DeptCSE:  "CSE",
	DeptETE:  "ETE",
	DeptIPE:  "IPE",
	DeptGCE:  "GCE",
	DeptURP:  "URP",
	DeptMTE:  "MTE",
	DeptArch: "Arch",
	DeptECE:  "ECE",
	DeptCFPE: "CFPE",
	DeptBECM: "BECM",
	DeptMSE:  "MSE",
	DeptChem: "Chem",
	DeptMath: "Math",
	DeptPhy:  "Phy",
	DeptHum:  "Hum",
}

var departmentsByName = func() map[string]Department {
	byName := make(map[string]Department, len(departmentNames))
	for dept, name := range departmentNames {
		byName[name] = dept
	}
	return byName
}()

// Tag returns the stable numeric tag of the department.
func (d Department) Tag() uint32 { return uint32(d) }

// DepartmentFromTag resolves a numeric tag to its department. The second
// return value is false for tags outside the closed set.
func DepartmentFromTag(tag uint32) (Department, bool) {
	d := Department(tag)
	_, ok := departmentNames[d]
	return d, ok
}

// ParseDepartment resolves the identifier spelling of a department.
func ParseDepartment(name string) (Department, error) {
	d, ok := departmentsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown department %q", ErrParse, name)
	}
	return d, nil
}

func (d Department) String() string {
	if name, ok := departmentNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Department(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Department) MarshalText() ([]byte, error) {
	name, ok := departmentNames[d]
	if !ok {
		return nil, &InvariantError{Message: fmt.Sprintf("unknown department tag %d", int(d))}
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Department) UnmarshalText(text []byte) error {
	parsed, err := ParseDepartment(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Department) MarshalYAML() (interface{}, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Department) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("%w: department: %v", ErrParse, err)
	}
	return d.UnmarshalText([]byte(s))
}

// CourseName is the pair of display names of a course.
type CourseName struct {
	Official   string `json:"official" yaml:"official"`
	Colloquial string `json:"colloquial" yaml:"colloquial"`
}

// The course table is data, not code: it ships as an embedded YAML document
// keyed by department and course code, so entries can be added without
// touching Go source.
//
//go:embed courses.yaml
var coursesRaw []byte

var courseTable struct {
	once   sync.Once
	byDept map[Department]map[string]CourseName
	err    error
}

func loadCourseTable() (map[Department]map[string]CourseName, error) {
	courseTable.once.Do(func() {
		var raw map[string]map[string]CourseName
		if err := yaml.Unmarshal(coursesRaw, &raw); err != nil {
			courseTable.err = fmt.Errorf("%w: course table: %v", ErrParse, err)
			return
		}
		byDept := make(map[Department]map[string]CourseName, len(raw))
		for name, courses := range raw {
			dept, err := ParseDepartment(name)
			if err != nil {
				courseTable.err = fmt.Errorf("course table: %w", err)
				return
			}
			byDept[dept] = courses
		}
		courseTable.byDept = byDept
	})
	return courseTable.byDept, courseTable.err
}

// CourseName looks up the official and colloquial display names of a course
// code offered by the department. The table is intentionally sparse; an
// unknown pair yields an error matching ErrCourseNotFound that carries the
// department and, when the department has a table at all, the code.
func (d Department) CourseName(code string) (CourseName, error) {
	table, err := loadCourseTable()
	if err != nil {
		return CourseName{}, err
	}
	courses, ok := table[d]
	if !ok {
		return CourseName{}, &CourseError{Department: d}
	}
	name, ok := courses[code]
	if !ok {
		return CourseName{}, &CourseError{Department: d, Code: code}
	}
	return name, nil
}
