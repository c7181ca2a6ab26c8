package transcript

import (
	"bufio"
	"fmt"
	"github.com/ValentinKolb/dRec/lib/sheet"
	"github.com/ValentinKolb/dRec/lib/store"
	"io"
)

// WriteTranscript writes the transcript block of every student:
//
//	Student ID: <id>
//	Courses:
//	  <course>: <grade>
//	GPA: <gpa>
//	<blank line>
func WriteTranscript(w io.Writer, g IGradebook) error {
	bw := bufio.NewWriter(w)
	g.Range(func(id string, courses []CourseRecord) bool {
		_, _ = fmt.Fprintf(bw, "Student ID: %s\n", id)
		_, _ = fmt.Fprintln(bw, "Courses:")
		writeCourses(bw, courses)
		_, _ = fmt.Fprintf(bw, "GPA: %s\n\n", FormatGrade(ComputeGPA(gradesOf(courses))))
		return true
	})
	return bw.Flush()
}

// WriteStudent writes the result view of a single student
func WriteStudent(w io.Writer, g IGradebook, id string) error {
	courses, ok := g.Courses(id)
	if !ok {
		return store.Errorf(store.RetCNotFound, "student %s not found", id)
	}
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "Results for Student ID: %s\n", id)
	writeCourses(bw, courses)
	_, _ = fmt.Fprintf(bw, "GPA: %s\n", FormatGrade(ComputeGPA(gradesOf(courses))))
	return bw.Flush()
}

func writeCourses(w io.Writer, courses []CourseRecord) {
	for _, c := range courses {
		_, _ = fmt.Fprintf(w, "  %s: %s\n", c.Course, FormatGrade(c.Grade))
	}
}

// ExportXLSX writes one row per course record with the GPA of the student
// repeated on each of its rows.
func ExportXLSX(w io.Writer, g IGradebook) error {
	var rows [][]interface{}
	g.Range(func(id string, courses []CourseRecord) bool {
		gpa := ComputeGPA(gradesOf(courses))
		for _, c := range courses {
			rows = append(rows, []interface{}{id, c.Course, c.Grade, gpa})
		}
		return true
	})
	return sheet.Write(w, "Transcript", []string{"Student ID", "Course", "Grade", "GPA"}, rows)
}
