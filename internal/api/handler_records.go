package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-records-backend/internal/records"
)

// Query parameter names.
const (
	paramDept       = "deptCode"
	paramCourse     = "courseCode"
	paramCount      = "count"
	paramLocation   = "location"
	paramInstructor = "instructor"
	paramTime       = "time"
)

const indexMessage = "Welcome! To make an API call, send a request to an endpoint.\n\n" +
	"Use the format: http://<host>:<port>/<endpoint>?deptCode=<DEPT>&courseCode=<CODE>"

// endpoint binds one HTTP route to a record operation.
type endpoint struct {
	method string
	path   string
	op     records.Operation
	params []string
}

var endpoints = []endpoint{
	{http.MethodGet, "/retrieveDept", records.OpRetrieveDepartment, []string{paramDept}},
	{http.MethodGet, "/retrieveCourse", records.OpRetrieveCourse, []string{paramDept, paramCourse}},
	{http.MethodGet, "/isCourseFull", records.OpIsCourseFull, []string{paramDept, paramCourse}},
	{http.MethodGet, "/getMajorCountFromDept", records.OpGetMajorCountFromDept, []string{paramDept}},
	{http.MethodGet, "/idDeptChair", records.OpIdentifyDeptChair, []string{paramDept}},
	{http.MethodGet, "/findCourseLocation", records.OpFindCourseLocation, []string{paramDept, paramCourse}},
	{http.MethodGet, "/findCourseInstructor", records.OpFindCourseInstructor, []string{paramDept, paramCourse}},
	{http.MethodGet, "/findCourseTime", records.OpFindCourseTime, []string{paramDept, paramCourse}},

	{http.MethodPatch, "/addMajorToDept", records.OpAddMajorToDept, []string{paramDept}},
	{http.MethodPatch, "/removeMajorFromDept", records.OpRemoveMajorFromDept, []string{paramDept}},
	{http.MethodPatch, "/setEnrollmentCount", records.OpSetEnrollmentCount, []string{paramDept, paramCourse, paramCount}},
	{http.MethodPatch, "/setCourseLocation", records.OpSetCourseLocation, []string{paramDept, paramCourse, paramLocation}},
	{http.MethodPatch, "/setCourseInstructor", records.OpSetCourseInstructor, []string{paramDept, paramCourse, paramInstructor}},
	{http.MethodPatch, "/setCourseTime", records.OpSetCourseTime, []string{paramDept, paramCourse, paramTime}},
	{http.MethodPatch, "/dropStudentFromCourse", records.OpDropStudentFromCourse, []string{paramDept, paramCourse}},
	{http.MethodPatch, "/enrollStudentInCourse", records.OpEnrollStudentInCourse, []string{paramDept, paramCourse}},
}

// Index handles GET /.
func (h *Handler) Index(c *gin.Context) {
	c.String(http.StatusOK, indexMessage)
}

// Record returns the handler for one record endpoint. Required parameters
// are checked here so the router only sees complete calls.
func (h *Handler) Record(ep endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := bindParams(c, ep.params)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		res, err := h.records.Dispatch(ep.op, p)
		if err != nil {
			h.log.Error("dispatch failed", zap.String("op", string(ep.op)), zap.Error(err))
			c.String(http.StatusInternalServerError, "An Error has occurred")
			return
		}
		c.String(res.Status, res.Body)
	}
}

func bindParams(c *gin.Context, names []string) (records.Params, error) {
	var p records.Params
	for _, name := range names {
		v, ok := c.GetQuery(name)
		if !ok {
			return p, fmt.Errorf("missing required parameter: %s", name)
		}

		switch name {
		case paramDept:
			p.DeptCode = v
		case paramCourse:
			p.CourseCode = v
		case paramCount:
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return p, fmt.Errorf("invalid count %q: must be a non-negative integer", v)
			}
			p.Count = n
		case paramLocation, paramInstructor, paramTime:
			p.Value = v
		}
	}
	return p, nil
}
