package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"course-records-backend/internal/catalog"
)

var (
	// ErrMalformedLine is returned for a listing line that matches no known record.
	ErrMalformedLine = errors.New("malformed listing line")
	// ErrUnencodable is returned when a field cannot be represented in a listing.
	ErrUnencodable = errors.New("field cannot be written to listing")
)

// field matches a Go-quoted string or a bare value without pipes or quotes.
const field = `("(?:[^"\\]|\\.)*"|[^|"]*?)`

var (
	versionRe = regexp.MustCompile(`^VERSION\s+(\d+)$`)
	deptRe    = regexp.MustCompile(`^DEPT\s+([^\s|]+)\s*\|\s*` + field + `\s*\|\s*(\d+)$`)
	courseRe  = regexp.MustCompile(`^COURSE\s+([^\s|]+)\s+([^\s|]+)\s*\|\s*` +
		field + `\s*\|\s*` + field + `\s*\|\s*` + field + `\s*\|\s*(\d+)\s*\|\s*(\d+)$`)
)

// ParseListing reads a department/course listing:
//
//	VERSION 1
//	DEPT PHYS | "Dam Thanh Son" | 43
//	COURSE PHYS 1221 | "James G. Mccann" | "301 PUP" | "4:10-5:25" | 150 | 118
//
// Fields are instructor, location, time, capacity and enrolled count. Text
// fields are Go-quoted strings; bare values are accepted and trimmed. Blank
// lines and lines starting with '#' are skipped. A COURSE line must follow the
// DEPT line of its department.
func ParseListing(r io.Reader) (*catalog.Database, error) {
	db := catalog.NewDatabase()
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case versionRe.MatchString(line):
			m := versionRe.FindStringSubmatch(line)
			v, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if v != catalog.CurrentVersion {
				return nil, fmt.Errorf("line %d: unsupported listing version %d", lineNo, v)
			}

		case deptRe.MatchString(line):
			m := deptRe.FindStringSubmatch(line)
			majors, err := strconv.Atoi(m[3])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			chair, err := unquoteField(m[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			db.AddDepartment(catalog.NewDepartment(m[1], nil, chair, majors))

		case courseRe.MatchString(line):
			m := courseRe.FindStringSubmatch(line)
			dept, ok := db.Department(m[1])
			if !ok {
				return nil, fmt.Errorf("line %d: course %s %s references undeclared department", lineNo, m[1], m[2])
			}
			capacity, err := strconv.Atoi(m[6])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			enrolled, err := strconv.Atoi(m[7])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			var text [3]string
			for i := range text {
				if text[i], err = unquoteField(m[3+i]); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
			}
			dept.CreateCourse(m[2], text[0], text[1], text[2], capacity).SetEnrolledCount(enrolled)

		default:
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrMalformedLine, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}
	return db, nil
}

// WriteListing writes db in the format read by ParseListing, in key order.
func WriteListing(w io.Writer, db *catalog.Database) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "VERSION %d\n", catalog.CurrentVersion)

	mapping := db.DepartmentMapping()
	for _, code := range sortedKeys(mapping) {
		dept := mapping[code]
		if err := checkKey(code); err != nil {
			return err
		}
		fmt.Fprintf(bw, "DEPT %s | %q | %d\n", code, dept.Chair(), dept.MajorCount())

		courses := dept.CourseSelection()
		for _, courseCode := range sortedKeys(courses) {
			c := courses[courseCode]
			if err := checkKey(courseCode); err != nil {
				return err
			}
			fmt.Fprintf(bw, "COURSE %s %s | %q | %q | %q | %d | %d\n",
				code, courseCode, c.Instructor(), c.Location(), c.TimeSlot(), c.Capacity(), c.EnrolledCount())
		}
	}
	return bw.Flush()
}

// checkKey rejects department and course codes the line format cannot carry.
func checkKey(key string) error {
	if key == "" || strings.ContainsAny(key, " \t|\n\r\"") {
		return fmt.Errorf("%w: key %q", ErrUnencodable, key)
	}
	return nil
}

func unquoteField(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	v, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("%w: bad quoted field %s", ErrMalformedLine, s)
	}
	return v, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
