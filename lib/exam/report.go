package exam

import (
	"bufio"
	"fmt"
	"github.com/ValentinKolb/dRec/lib/sheet"
	"io"
	"strings"
)

func examLine(e Exam) string {
	return fmt.Sprintf("%s (Department: %s, %d questions)", e.Name, e.Department, len(e.Questions))
}

// WriteExams lists exams, one "Exam: <name> (Department: <d>, <n> questions)" line each
func WriteExams(w io.Writer, exams []Exam) error {
	bw := bufio.NewWriter(w)
	if len(exams) == 0 {
		_, _ = fmt.Fprintln(bw, "No exams available.")
	}
	for _, e := range exams {
		_, _ = fmt.Fprintf(bw, "Exam: %s\n", examLine(e))
	}
	return bw.Flush()
}

// WriteAvailableExams lists the exams a student can take, numbered from 1
func WriteAvailableExams(w io.Writer, exams []Exam) error {
	bw := bufio.NewWriter(w)
	if len(exams) == 0 {
		_, _ = fmt.Fprintln(bw, "No exams available for your department.")
		return bw.Flush()
	}
	_, _ = fmt.Fprintln(bw, "Available Exams:")
	for i, e := range exams {
		_, _ = fmt.Fprintf(bw, "  %d. %s\n", i+1, examLine(e))
	}
	return bw.Flush()
}

// WriteQuestions lists the questions of an exam with their options and correct answer
func WriteQuestions(w io.Writer, e Exam) error {
	bw := bufio.NewWriter(w)
	if len(e.Questions) == 0 {
		_, _ = fmt.Fprintln(bw, "No questions available in this exam.")
		return bw.Flush()
	}
	_, _ = fmt.Fprintf(bw, "Questions in exam '%s':\n", e.Name)
	for i, q := range e.Questions {
		_, _ = fmt.Fprintf(bw, "%d. %s\n", i+1, q.Text)
		for j, o := range q.Options {
			_, _ = fmt.Fprintf(bw, "   %d. %s\n", j+1, o)
		}
		_, _ = fmt.Fprintf(bw, "   Correct Answer: %s\n", q.Correct)
	}
	return bw.Flush()
}

// WriteQuestion prints question i (0-based) the way it is shown to a student
func WriteQuestion(w io.Writer, i int, q Question) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "Q%d: %s\n", i+1, q.Text)
	for j, o := range q.Options {
		_, _ = fmt.Fprintf(bw, "  %d. %s\n", j+1, o)
	}
	return bw.Flush()
}

// WriteStudentResults lists "<exam>: <score>" for every exam the student took.
// Retaken exams show the latest score at the position of the first attempt.
func WriteStudentResults(w io.Writer, results []ScoreRecord) error {
	bw := bufio.NewWriter(w)
	if len(results) == 0 {
		_, _ = fmt.Fprintln(bw, "No results available.")
		return bw.Flush()
	}

	var order []string
	latest := make(map[string]int)
	for _, r := range results {
		if _, seen := latest[r.Exam]; !seen {
			order = append(order, r.Exam)
		}
		latest[r.Exam] = r.Score
	}
	for _, name := range order {
		_, _ = fmt.Fprintf(bw, "%s: %d\n", name, latest[name])
	}
	return bw.Flush()
}

// WriteRankedResults prints the ranked results table. results must already be
// ranked, see RankResults.
func WriteRankedResults(w io.Writer, results []ScoreRecord) error {
	bw := bufio.NewWriter(w)
	if len(results) == 0 {
		_, _ = fmt.Fprintln(bw, "No student results available.")
		return bw.Flush()
	}
	_, _ = fmt.Fprintln(bw, "\nStudent Results:")
	_, _ = fmt.Fprintf(bw, "%-12s%-15s%-15s%-30s%-10s\n", "Serial No.", "Student Name", "Department", "Exam Name", "Result")
	_, _ = fmt.Fprintln(bw, strings.Repeat("=", 80))
	for i, r := range results {
		_, _ = fmt.Fprintf(bw, "%-12d%-15s%-15s%-30s%-10d\n", i+1, r.Student, r.Department, r.Exam, r.Score)
	}
	return bw.Flush()
}

// ExportXLSX writes the ranked results as a workbook
func ExportXLSX(w io.Writer, results []ScoreRecord) error {
	rows := make([][]interface{}, len(results))
	for i, r := range results {
		rows[i] = []interface{}{i + 1, r.Student, r.Department, r.Exam, r.Score, r.Total}
	}
	return sheet.Write(w, "Results", []string{"Serial No.", "Student Name", "Department", "Exam Name", "Result", "Questions"}, rows)
}
