package records

import "net/http"

// Response bodies returned by the router.
const (
	MsgDepartmentNotFound = "Department Not Found"
	MsgCourseNotFound     = "Course Not Found"
	MsgNoDatabase         = "Database Not Available"

	MsgCourseAttributeUpdated = "Attribute was updated successfully."
	MsgDepartmentUpdated      = "Attribute was updated successfully"

	MsgStudentDropped     = "Student has been dropped"
	MsgStudentNotDropped  = "Student has not been dropped"
	MsgStudentEnrolled    = "Student has been enrolled"
	MsgStudentNotEnrolled = "Student has not been enrolled"
)

// Result is the outcome of a single routed call.
type Result struct {
	Status int
	Body   string
}

func ok(body string) Result {
	return Result{Status: http.StatusOK, Body: body}
}

func notFound(body string) Result {
	return Result{Status: http.StatusNotFound, Body: body}
}

func badRequest(body string) Result {
	return Result{Status: http.StatusBadRequest, Body: body}
}

func unavailable() Result {
	return Result{Status: http.StatusServiceUnavailable, Body: MsgNoDatabase}
}
