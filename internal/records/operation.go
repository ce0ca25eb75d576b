package records

import "fmt"

// Operation names a routed record operation.
type Operation string

const (
	OpRetrieveDepartment    Operation = "retrieveDepartment"
	OpRetrieveCourse        Operation = "retrieveCourse"
	OpIsCourseFull          Operation = "isCourseFull"
	OpGetMajorCountFromDept Operation = "getMajorCountFromDept"
	OpIdentifyDeptChair     Operation = "identifyDeptChair"
	OpFindCourseLocation    Operation = "findCourseLocation"
	OpFindCourseInstructor  Operation = "findCourseInstructor"
	OpFindCourseTime        Operation = "findCourseTime"
	OpSetEnrollmentCount    Operation = "setEnrollmentCount"
	OpSetCourseLocation     Operation = "setCourseLocation"
	OpSetCourseInstructor   Operation = "setCourseInstructor"
	OpSetCourseTime         Operation = "setCourseTime"
	OpAddMajorToDept        Operation = "addMajorToDept"
	OpRemoveMajorFromDept   Operation = "removeMajorFromDept"
	OpDropStudentFromCourse Operation = "dropStudentFromCourse"
	OpEnrollStudentInCourse Operation = "enrollStudentInCourse"
)

// Params carries the already-validated parameters of a call. Value holds the
// new location, instructor or time for the setCourse* operations.
type Params struct {
	DeptCode   string
	CourseCode string
	Count      int
	Value      string
}

// Dispatch runs op with params.
func (r *Router) Dispatch(op Operation, p Params) (Result, error) {
	switch op {
	case OpRetrieveDepartment:
		return r.RetrieveDepartment(p.DeptCode), nil
	case OpRetrieveCourse:
		return r.RetrieveCourse(p.DeptCode, p.CourseCode), nil
	case OpIsCourseFull:
		return r.IsCourseFull(p.DeptCode, p.CourseCode), nil
	case OpGetMajorCountFromDept:
		return r.GetMajorCountFromDept(p.DeptCode), nil
	case OpIdentifyDeptChair:
		return r.IdentifyDeptChair(p.DeptCode), nil
	case OpFindCourseLocation:
		return r.FindCourseLocation(p.DeptCode, p.CourseCode), nil
	case OpFindCourseInstructor:
		return r.FindCourseInstructor(p.DeptCode, p.CourseCode), nil
	case OpFindCourseTime:
		return r.FindCourseTime(p.DeptCode, p.CourseCode), nil
	case OpSetEnrollmentCount:
		return r.SetEnrollmentCount(p.DeptCode, p.CourseCode, p.Count), nil
	case OpSetCourseLocation:
		return r.SetCourseLocation(p.DeptCode, p.CourseCode, p.Value), nil
	case OpSetCourseInstructor:
		return r.SetCourseInstructor(p.DeptCode, p.CourseCode, p.Value), nil
	case OpSetCourseTime:
		return r.SetCourseTime(p.DeptCode, p.CourseCode, p.Value), nil
	case OpAddMajorToDept:
		return r.AddMajorToDept(p.DeptCode), nil
	case OpRemoveMajorFromDept:
		return r.RemoveMajorFromDept(p.DeptCode), nil
	case OpDropStudentFromCourse:
		return r.DropStudentFromCourse(p.DeptCode, p.CourseCode), nil
	case OpEnrollStudentInCourse:
		return r.EnrollStudentInCourse(p.DeptCode, p.CourseCode), nil
	}
	return Result{}, fmt.Errorf("unknown operation %q", op)
}
