package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/ValentinKolb/dRec/lib/store"
	"io"
	"strconv"
	"strings"
)

// IssueKind classifies a problem found while reading the line format
type IssueKind int

const (
	// IssueTooFewFields marks a line with fewer than three comma separated fields; it is skipped
	IssueTooFewFields IssueKind = iota
	// IssueBadGrade marks a line whose grade is not a number; the GradePolicy decides its fate
	IssueBadGrade
)

func (k IssueKind) String() string {
	switch k {
	case IssueTooFewFields:
		return "too few fields"
	case IssueBadGrade:
		return "grade is not a number"
	default:
		return "unknown issue"
	}
}

// LineIssue describes one irregular line of a line format store
type LineIssue struct {
	Line    int // 1-based line number
	Text    string
	Kind    IssueKind
	Dropped bool // the line did not make it into the gradebook
}

func (i LineIssue) String() string {
	action := "kept with grade 0.0"
	if i.Dropped {
		action = "skipped"
	}
	return fmt.Sprintf("line %d: %s, %s: %q", i.Line, i.Kind, action, i.Text)
}

// isLineGrade reports whether s is digits with at most one '.' somewhere in it.
// Signs, exponents and blanks are not accepted.
func isLineGrade(s string) bool {
	s = strings.Replace(s, ".", "", 1)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ReadLines parses the id,course,grade line format.
//
// Every line is trimmed, then split at commas. Fields beyond the third are
// ignored and fields are not trimmed individually. Lines with fewer than three
// fields are skipped, grades that are not plain numbers are handled according
// to policy. Both cases are reported as issues; they are never errors.
func ReadLines(r io.Reader, policy GradePolicy) (IGradebook, []LineIssue, error) {
	g := newGradebookImpl()
	var issues []LineIssue

	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		raw, err := br.ReadString('\n')
		if raw == "" && errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, err
		}

		line := strings.TrimSpace(raw)
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			issues = append(issues, LineIssue{Line: lineNo, Text: line, Kind: IssueTooFewFields, Dropped: true})
			continue
		}

		id, course, gradeText := parts[0], parts[1], parts[2]
		grade := 0.0
		if isLineGrade(gradeText) {
			grade, _ = strconv.ParseFloat(gradeText, 64)
		} else {
			dropped := policy == PolicyReject
			issues = append(issues, LineIssue{Line: lineNo, Text: line, Kind: IssueBadGrade, Dropped: dropped})
			if dropped {
				continue
			}
		}
		g.appendRecord(id, CourseRecord{Course: course, Grade: grade})
	}
	return g, issues, nil
}

// checkLines returns a validation-failed error for the first record whose
// grade would not read back from the line format (negative grades).
func checkLines(g IGradebook) error {
	var err error
	g.Range(func(id string, courses []CourseRecord) bool {
		for _, c := range courses {
			if text := fixedGrade(c.Grade); !isLineGrade(text) {
				err = store.Errorf(store.RetCValidationFailed, "grade %s of student %s in %s cannot be stored in the lines format", text, id, c.Course)
				return false
			}
		}
		return true
	})
	return err
}

// WriteLines writes the gradebook as one id,course,grade line per record,
// students in insertion order. Grades are written without exponent so they
// read back unchanged. A gradebook with a grade the format cannot hold is
// rejected before anything is written.
func WriteLines(w io.Writer, g IGradebook) error {
	if err := checkLines(g); err != nil {
		return err
	}
	var err error
	g.Range(func(id string, courses []CourseRecord) bool {
		for _, c := range courses {
			if _, err = fmt.Fprintf(w, "%s,%s,%s\n", id, c.Course, fixedGrade(c.Grade)); err != nil {
				return false
			}
		}
		return true
	})
	return err
}
