package transcript

import "fmt"

// CourseRecord is one graded course of a student. Grades are not bounded.
type CourseRecord struct {
	Course string  `json:"course" yaml:"course"`
	Grade  float64 `json:"grade" yaml:"grade"`
}

// GradePolicy decides what the line loader does with a grade that is not a number
type GradePolicy string

const (
	// PolicyDefault keeps the line with grade 0.0
	PolicyDefault GradePolicy = "default"
	// PolicyReject drops the line
	PolicyReject GradePolicy = "reject"
)

// ParseGradePolicy validates a policy name
func ParseGradePolicy(s string) (GradePolicy, error) {
	switch p := GradePolicy(s); p {
	case PolicyDefault, PolicyReject:
		return p, nil
	case "":
		return PolicyDefault, nil
	default:
		return "", fmt.Errorf("invalid grade policy %s (expected default or reject)", s)
	}
}
