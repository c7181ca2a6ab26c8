package transcript

import (
	"math"
	"strconv"
	"strings"
)

// ComputeGPA returns the arithmetic mean of grades rounded to two decimals,
// or 0.0 for no grades. Ties are resolved to even on the exact binary value.
func ComputeGPA(grades []float64) float64 {
	if len(grades) == 0 {
		return 0.0
	}
	var sum float64
	for _, g := range grades {
		sum += g
	}
	return round2(sum / float64(len(grades)))
}

func round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return r
}

// gradesOf extracts the grades of courses in order
func gradesOf(courses []CourseRecord) []float64 {
	grades := make([]float64, len(courses))
	for i, c := range courses {
		grades[i] = c.Grade
	}
	return grades
}

// FormatGrade renders a grade or GPA the way it appears in reports:
// shortest representation, always with a fractional part ("3.0", "1.67"),
// exponent notation below 1e-4 and from 1e16 on.
func FormatGrade(g float64) string {
	switch {
	case math.IsNaN(g):
		return "nan"
	case math.IsInf(g, 1):
		return "inf"
	case math.IsInf(g, -1):
		return "-inf"
	}
	if abs := math.Abs(g); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(g, 'e', -1, 64)
	}
	return fixedGrade(g)
}

// fixedGrade renders g without exponent and with at least one decimal
func fixedGrade(g float64) string {
	s := strconv.FormatFloat(g, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
