package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Departments(t *testing.T) {
	db := Catalog()

	mapping := db.DepartmentMapping()
	assert.Len(t, mapping, 5)
	for _, code := range []string{"CHEM", "COMS", "ECON", "IEOR", "PHYS"} {
		_, ok := mapping[code]
		assert.True(t, ok, "missing department %s", code)
	}
}

func TestCatalog_Physics(t *testing.T) {
	phys, ok := Catalog().Department("PHYS")
	require.True(t, ok)

	full, ok := phys.Course("1520")
	require.True(t, ok)
	assert.Equal(t, 150, full.Capacity())
	assert.Equal(t, 150, full.EnrolledCount())
	assert.True(t, full.IsFull())

	open, ok := phys.Course("1221")
	require.True(t, ok)
	assert.Equal(t, 118, open.EnrolledCount())
	assert.False(t, open.IsFull())

	expected := "PHYS 1001: \nInstructor: Szabolcs Marka; Location: 301 PUP; Time: 2:40-3:55\n" +
		"PHYS 1221: \nInstructor: James G. Mccann; Location: 301 PUP; Time: 4:10-5:25\n" +
		"PHYS 1520: \nInstructor: Victor G. Moffat; Location: 630 MUDD; Time: 4:10-5:25\n" +
		"PHYS 2000: \nInstructor: Frank E. L. Banta; Location: 402 CHANDLER; Time: 1:10-3:40\n" +
		"PHYS 3801: \nInstructor: Katherine M. McMahon; Location: 603 MUDD; Time: 4:10-5:25\n" +
		"PHYS 4205: \nInstructor: Michael P. Larkin; Location: 309 HAV; Time: 6:10-9:50\n"
	assert.Equal(t, expected, phys.Display())
}

func TestCatalog_WithinCapacity(t *testing.T) {
	for code, dept := range Catalog().DepartmentMapping() {
		for courseCode, c := range dept.CourseSelection() {
			assert.LessOrEqual(t, c.EnrolledCount(), c.Capacity(), "%s %s over capacity", code, courseCode)
		}
	}
}

func TestCatalog_Independent(t *testing.T) {
	first := Catalog()
	second := Catalog()

	phys, _ := first.Department("PHYS")
	phys.AddMajor()
	c, _ := phys.Course("1221")
	c.ReassignLocation("Elsewhere")

	assert.NotEqual(t, first.Display(), second.Display())
	assert.True(t, strings.HasPrefix(second.Display(), "For the CHEM department:\n"))
}
