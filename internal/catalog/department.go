package catalog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Department owns its courses, keyed by course code.
type Department struct {
	code    string
	chair   string
	majors  int
	courses map[string]*Course
}

type departmentDoc struct {
	Code    string             `yaml:"code"`
	Chair   string             `yaml:"chair"`
	Majors  int                `yaml:"majors"`
	Courses map[string]*Course `yaml:"courses"`
}

// NewDepartment creates a department that takes ownership of courses.
func NewDepartment(code string, courses map[string]*Course, chair string, majors int) *Department {
	if courses == nil {
		courses = make(map[string]*Course)
	}
	return &Department{
		code:    code,
		chair:   chair,
		majors:  majors,
		courses: courses,
	}
}

func (d *Department) Code() string { return d.code }
func (d *Department) Chair() string { return d.chair }
func (d *Department) MajorCount() int { return d.majors }

// CourseSelection returns the live course mapping. Courses retrieved from it
// may be mutated in place.
func (d *Department) CourseSelection() map[string]*Course {
	return d.courses
}

// Course looks up a course by code.
func (d *Department) Course(code string) (*Course, bool) {
	c, ok := d.courses[code]
	return c, ok
}

// CreateCourse inserts a new course, replacing any course with the same code.
func (d *Department) CreateCourse(code, instructor, location, timeSlot string, capacity int) *Course {
	c := NewCourse(instructor, location, timeSlot, capacity)
	d.courses[code] = c
	return c
}

func (d *Department) AddMajor() {
	d.majors++
}

// DropMajor decrements the major count, stopping at zero.
func (d *Department) DropMajor() {
	if d.majors > 0 {
		d.majors--
	}
}

// Display lists every course in course-code order.
func (d *Department) Display() string {
	var b strings.Builder
	for _, code := range sortedKeys(d.courses) {
		fmt.Fprintf(&b, "%s %s: %s\n", d.code, code, d.courses[code].Display())
	}
	return b.String()
}

// MarshalYAML implements yaml.Marshaler.
func (d *Department) MarshalYAML() (interface{}, error) {
	return departmentDoc{
		Code:    d.code,
		Chair:   d.chair,
		Majors:  d.majors,
		Courses: d.courses,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Department) UnmarshalYAML(value *yaml.Node) error {
	var doc departmentDoc
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode department: %w", err)
	}
	if doc.Courses == nil {
		doc.Courses = make(map[string]*Course)
	}
	d.code = doc.Code
	d.chair = doc.Chair
	d.majors = doc.Majors
	d.courses = doc.Courses
	return nil
}

// Serialize writes the department and all of its courses as YAML.
func (d *Department) Serialize(w io.Writer) error {
	return encode(w, d)
}

// Deserialize replaces the department's state with the YAML read from r.
func (d *Department) Deserialize(r io.Reader) error {
	return yaml.NewDecoder(r).Decode(d)
}
