package records

import (
	"strconv"

	"course-records-backend/internal/catalog"
)

// Source gives the router access to the live record tree. View and Update
// run fn under a read or write lock respectively and return an error when no
// database is loaded.
type Source interface {
	View(fn func(*catalog.Database) error) error
	Update(fn func(*catalog.Database) error) error
}

// SeatListener is told when a drop leaves a previously full course with a free seat.
type SeatListener func(deptCode, courseCode string)

// Router resolves departments and courses and applies record operations to them.
type Router struct {
	source Source
	onSeat SeatListener
}

// Option configures a Router.
type Option func(*Router)

// WithSeatListener registers l to be called after a seat opens up.
func WithSeatListener(l SeatListener) Option {
	return func(r *Router) {
		r.onSeat = l
	}
}

// NewRouter creates a router over source.
func NewRouter(source Source, opts ...Option) *Router {
	r := &Router{source: source}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) withDepartment(write bool, deptCode string, fn func(*catalog.Department) Result) Result {
	run := r.source.View
	if write {
		run = r.source.Update
	}

	var res Result
	err := run(func(db *catalog.Database) error {
		dept, found := db.Department(deptCode)
		if !found {
			res = notFound(MsgDepartmentNotFound)
			return nil
		}
		res = fn(dept)
		return nil
	})
	if err != nil {
		return unavailable()
	}
	return res
}

func (r *Router) withCourse(write bool, deptCode, courseCode string, fn func(*catalog.Course) Result) Result {
	return r.withDepartment(write, deptCode, func(dept *catalog.Department) Result {
		course, found := dept.Course(courseCode)
		if !found {
			return notFound(MsgCourseNotFound)
		}
		return fn(course)
	})
}

// RetrieveDepartment returns the department's course listing.
func (r *Router) RetrieveDepartment(deptCode string) Result {
	return r.withDepartment(false, deptCode, func(d *catalog.Department) Result {
		return ok(d.Display())
	})
}

// RetrieveCourse returns a single course's details.
func (r *Router) RetrieveCourse(deptCode, courseCode string) Result {
	return r.withCourse(false, deptCode, courseCode, func(c *catalog.Course) Result {
		return ok(c.Display())
	})
}

func (r *Router) IsCourseFull(deptCode, courseCode string) Result {
	return r.withCourse(false, deptCode, courseCode, func(c *catalog.Course) Result {
		return ok(strconv.FormatBool(c.IsFull()))
	})
}

func (r *Router) GetMajorCountFromDept(deptCode string) Result {
	return r.withDepartment(false, deptCode, func(d *catalog.Department) Result {
		return ok("There are: " + strconv.Itoa(d.MajorCount()) + " majors in the department")
	})
}

func (r *Router) IdentifyDeptChair(deptCode string) Result {
	return r.withDepartment(false, deptCode, func(d *catalog.Department) Result {
		return ok(d.Chair() + " is the department chair.")
	})
}

func (r *Router) FindCourseLocation(deptCode, courseCode string) Result {
	return r.withCourse(false, deptCode, courseCode, func(c *catalog.Course) Result {
		return ok(c.Location() + " is where the course is located.")
	})
}

func (r *Router) FindCourseInstructor(deptCode, courseCode string) Result {
	return r.withCourse(false, deptCode, courseCode, func(c *catalog.Course) Result {
		return ok(c.Instructor() + " is the instructor for the course.")
	})
}

func (r *Router) FindCourseTime(deptCode, courseCode string) Result {
	return r.withCourse(false, deptCode, courseCode, func(c *catalog.Course) Result {
		return ok("The course meets at: " + c.TimeSlot())
	})
}

// SetEnrollmentCount overwrites the enrolled count. Capacity is not enforced.
func (r *Router) SetEnrollmentCount(deptCode, courseCode string, count int) Result {
	return r.withCourse(true, deptCode, courseCode, func(c *catalog.Course) Result {
		c.SetEnrolledCount(count)
		return ok(MsgCourseAttributeUpdated)
	})
}

func (r *Router) SetCourseLocation(deptCode, courseCode, location string) Result {
	return r.withCourse(true, deptCode, courseCode, func(c *catalog.Course) Result {
		c.ReassignLocation(location)
		return ok(MsgCourseAttributeUpdated)
	})
}

func (r *Router) SetCourseInstructor(deptCode, courseCode, instructor string) Result {
	return r.withCourse(true, deptCode, courseCode, func(c *catalog.Course) Result {
		c.ReassignInstructor(instructor)
		return ok(MsgCourseAttributeUpdated)
	})
}

func (r *Router) SetCourseTime(deptCode, courseCode, timeSlot string) Result {
	return r.withCourse(true, deptCode, courseCode, func(c *catalog.Course) Result {
		c.ReassignTime(timeSlot)
		return ok(MsgCourseAttributeUpdated)
	})
}

func (r *Router) AddMajorToDept(deptCode string) Result {
	return r.withDepartment(true, deptCode, func(d *catalog.Department) Result {
		d.AddMajor()
		return ok(MsgDepartmentUpdated)
	})
}

// RemoveMajorFromDept reports success even when the count is already zero.
func (r *Router) RemoveMajorFromDept(deptCode string) Result {
	return r.withDepartment(true, deptCode, func(d *catalog.Department) Result {
		d.DropMajor()
		return ok(MsgDepartmentUpdated)
	})
}

// DropStudentFromCourse removes one student, failing with 400 when nobody is enrolled.
func (r *Router) DropStudentFromCourse(deptCode, courseCode string) Result {
	opened := false
	res := r.withCourse(true, deptCode, courseCode, func(c *catalog.Course) Result {
		wasFull := c.IsFull()
		if !c.Drop() {
			return badRequest(MsgStudentNotDropped)
		}
		opened = wasFull && !c.IsFull()
		return ok(MsgStudentDropped)
	})

	if opened && r.onSeat != nil {
		r.onSeat(deptCode, courseCode)
	}
	return res
}

// EnrollStudentInCourse adds one student, failing with 400 when the course is full.
func (r *Router) EnrollStudentInCourse(deptCode, courseCode string) Result {
	return r.withCourse(true, deptCode, courseCode, func(c *catalog.Course) Result {
		if !c.Enroll() {
			return badRequest(MsgStudentNotEnrolled)
		}
		return ok(MsgStudentEnrolled)
	})
}
