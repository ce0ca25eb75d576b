package catalog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPhysics() *Department {
	phys1221 := NewCourse("James G. Mccann", "301 PUP", "4:10-5:25", 150)
	phys1221.SetEnrolledCount(118)

	phys2000 := NewCourse("Frank E. L. Banta", "402 CHANDLER", "1:10-3:40", 100)
	phys2000.SetEnrolledCount(98)

	phys3801 := NewCourse("Katherine M. McMahon", "603 MUDD", "4:10-5:25", 150)
	phys3801.SetEnrolledCount(96)

	courses := map[string]*Course{
		"1221": phys1221,
		"2000": phys2000,
		"3801": phys3801,
	}
	return NewDepartment("PHYS", courses, "Marcia L. Newson", 200)
}

func TestDepartment_Display(t *testing.T) {
	expected := "PHYS 1221: \nInstructor: James G. Mccann; Location: 301 PUP; Time: 4:10-5:25\n" +
		"PHYS 2000: \nInstructor: Frank E. L. Banta; Location: 402 CHANDLER; Time: 1:10-3:40\n" +
		"PHYS 3801: \nInstructor: Katherine M. McMahon; Location: 603 MUDD; Time: 4:10-5:25\n"
	assert.Equal(t, expected, newPhysics().Display())
}

func TestDepartment_Empty(t *testing.T) {
	d := NewDepartment("", nil, "", 0)
	assert.Equal(t, 0, d.MajorCount())
	assert.Equal(t, "", d.Chair())
	assert.Empty(t, d.CourseSelection())
	assert.Equal(t, "", d.Display())
}

func TestDepartment_Getters(t *testing.T) {
	d := newPhysics()
	assert.Equal(t, "PHYS", d.Code())
	assert.Equal(t, "Marcia L. Newson", d.Chair())
	assert.Equal(t, 200, d.MajorCount())
	assert.Len(t, d.CourseSelection(), 3)
}

func TestDepartment_CourseSelectionIsLive(t *testing.T) {
	d := newPhysics()

	d.CourseSelection()["1221"].ReassignLocation("NewLocation")

	c, ok := d.Course("1221")
	require.True(t, ok)
	assert.Equal(t, "NewLocation", c.Location())
}

func TestDepartment_CreateCourse(t *testing.T) {
	d := newPhysics()
	d.CreateCourse("1001", "Szabolcs Marka", "301 PUP", "2:40-3:55", 150)

	expected := "PHYS 1001: \nInstructor: Szabolcs Marka; Location: 301 PUP; Time: 2:40-3:55\n" +
		"PHYS 1221: \nInstructor: James G. Mccann; Location: 301 PUP; Time: 4:10-5:25\n" +
		"PHYS 2000: \nInstructor: Frank E. L. Banta; Location: 402 CHANDLER; Time: 1:10-3:40\n" +
		"PHYS 3801: \nInstructor: Katherine M. McMahon; Location: 603 MUDD; Time: 4:10-5:25\n"
	assert.Equal(t, expected, d.Display())

	c, ok := d.Course("1001")
	require.True(t, ok)
	assert.Equal(t, 0, c.EnrolledCount())
}

func TestDepartment_CreateCourseOverwrites(t *testing.T) {
	d := newPhysics()
	d.CreateCourse("1221", "Someone Else", "630 MUDD", "9:00-10:15", 30)

	c, ok := d.Course("1221")
	require.True(t, ok)
	assert.Equal(t, "Someone Else", c.Instructor())
	assert.Equal(t, 0, c.EnrolledCount())
	assert.Len(t, d.CourseSelection(), 3)
}

func TestDepartment_Majors(t *testing.T) {
	d := NewDepartment("PHYS", nil, "Marcia L. Newson", 0)

	for i := 0; i < 200; i++ {
		d.AddMajor()
	}
	assert.Equal(t, 200, d.MajorCount())

	for i := 0; i < 201; i++ {
		d.DropMajor()
	}
	assert.Equal(t, 0, d.MajorCount())
}

func TestDepartment_SerializeRoundTrip(t *testing.T) {
	original := newPhysics()

	var buf bytes.Buffer
	require.NoError(t, original.Serialize(&buf))

	restored := NewDepartment("", nil, "", 0)
	require.NoError(t, restored.Deserialize(&buf))

	assert.Equal(t, original.Code(), restored.Code())
	assert.Equal(t, original.Chair(), restored.Chair())
	assert.Equal(t, original.MajorCount(), restored.MajorCount())
	assert.Equal(t, original.Display(), restored.Display())
	require.Len(t, restored.CourseSelection(), len(original.CourseSelection()))

	for code, want := range original.CourseSelection() {
		got, ok := restored.Course(code)
		require.True(t, ok, "course %s missing after round trip", code)
		assert.Equal(t, want.Instructor(), got.Instructor())
		assert.Equal(t, want.Location(), got.Location())
		assert.Equal(t, want.TimeSlot(), got.TimeSlot())
		assert.Equal(t, want.Capacity(), got.Capacity())
		assert.Equal(t, want.EnrolledCount(), got.EnrolledCount())
		assert.Equal(t, want.IsFull(), got.IsFull())
	}
}
