package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Course is a single course offering owned by a Department.
type Course struct {
	capacity   int
	instructor string
	location   string
	timeSlot   string
	enrolled   int
}

// courseDoc is the serialized form of a Course.
type courseDoc struct {
	Capacity   int    `yaml:"capacity"`
	Instructor string `yaml:"instructor"`
	Location   string `yaml:"location"`
	TimeSlot   string `yaml:"time_slot"`
	Enrolled   int    `yaml:"enrolled"`
}

// NewCourse creates a course with no students enrolled.
func NewCourse(instructor, location, timeSlot string, capacity int) *Course {
	return &Course{
		capacity:   capacity,
		instructor: instructor,
		location:   location,
		timeSlot:   timeSlot,
	}
}

func (c *Course) Capacity() int { return c.capacity }
func (c *Course) Instructor() string { return c.instructor }
func (c *Course) Location() string { return c.location }
func (c *Course) TimeSlot() string { return c.timeSlot }
func (c *Course) EnrolledCount() int { return c.enrolled }

// IsFull reports whether the enrolled count has reached capacity.
func (c *Course) IsFull() bool {
	return c.enrolled >= c.capacity
}

func (c *Course) ReassignInstructor(name string) { c.instructor = name }
func (c *Course) ReassignLocation(location string) { c.location = location }
func (c *Course) ReassignTime(timeSlot string) { c.timeSlot = timeSlot }

// SetEnrolledCount overwrites the enrolled count without checking capacity.
func (c *Course) SetEnrolledCount(n int) {
	c.enrolled = n
}

// Enroll adds one student if a seat is free.
func (c *Course) Enroll() bool {
	if c.enrolled+1 > c.capacity {
		return false
	}
	c.enrolled++
	return true
}

// Drop removes one student if any are enrolled.
func (c *Course) Drop() bool {
	if c.enrolled <= 0 {
		return false
	}
	c.enrolled--
	return true
}

// Display renders the instructor, location and time. Capacity and enrollment are omitted.
func (c *Course) Display() string {
	return fmt.Sprintf("\nInstructor: %s; Location: %s; Time: %s", c.instructor, c.location, c.timeSlot)
}

// MarshalYAML implements yaml.Marshaler.
func (c *Course) MarshalYAML() (interface{}, error) {
	return courseDoc{
		Capacity:   c.capacity,
		Instructor: c.instructor,
		Location:   c.location,
		TimeSlot:   c.timeSlot,
		Enrolled:   c.enrolled,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Course) UnmarshalYAML(value *yaml.Node) error {
	var doc courseDoc
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode course: %w", err)
	}
	c.capacity = doc.Capacity
	c.instructor = doc.Instructor
	c.location = doc.Location
	c.timeSlot = doc.TimeSlot
	c.enrolled = doc.Enrolled
	return nil
}

// Serialize writes the course as YAML.
func (c *Course) Serialize(w io.Writer) error {
	return encode(w, c)
}

// Deserialize replaces the course's state with the YAML read from r.
func (c *Course) Deserialize(r io.Reader) error {
	return yaml.NewDecoder(r).Decode(c)
}
