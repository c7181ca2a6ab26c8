// Package transcript implements the academic transcript generator: a
// gradebook of per-student course grades, GPA computation, persistence and
// the transcript reports.
//
// Key Components:
//
//   - IGradebook: student id -> ordered []CourseRecord, backed by an
//     insertion-ordered db.Table. AddCourse, EditCourse and DeleteCourse
//     validate their input and report their outcome through *store.Error.
//     Deleting the last course of a student removes the student.
//
//   - ComputeGPA / FormatGrade: mean of the grades rounded to two decimals,
//     rendered with at least one decimal ("3.0", "3.5", "1.67").
//
//   - ReadLines / WriteLines: the id,course,grade text format. The reader
//     never fails on bad content; it returns a list of LineIssue values and
//     applies a GradePolicy to grades that are not plain numbers.
//
//   - Load / Save: file persistence for the line format and the versioned
//     Snapshot used by the json, yaml and gob codecs.
//
//   - WriteTranscript / WriteStudent / ExportXLSX: reports.
//
// Usage Example:
//
//	g, issues, err := transcript.Load("student_data.txt", common.FormatLines, transcript.PolicyDefault)
//	if err != nil {
//	    return err
//	}
//	if err := g.AddCourse("S1", "Math", "3.5"); err != nil {
//	    fmt.Println(err)
//	}
//	_ = transcript.WriteTranscript(os.Stdout, g)
//	err = transcript.Save("student_data.txt", common.FormatLines, g)
//
// Thread-safety: nothing in this package is safe for concurrent use.
package transcript
