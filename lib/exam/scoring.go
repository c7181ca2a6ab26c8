package exam

import (
	"github.com/ValentinKolb/dRec/lib/store"
	"sort"
)

// Grade scores answers against questions. answers holds one 1-based option
// number per question; the score is the number of answers whose option text
// equals the correct text.
func Grade(questions []Question, answers []int) (int, error) {
	if len(answers) != len(questions) {
		return 0, store.Errorf(store.RetCValidationFailed, "expected %d answers, got %d", len(questions), len(answers))
	}
	score := 0
	for i, q := range questions {
		a := answers[i]
		if a < 1 || a > len(q.Options) {
			return 0, store.Errorf(store.RetCValidationFailed, "answer %d to question %d is not a valid option number (1-%d)", a, i+1, len(q.Options))
		}
		if q.Options[a-1] == q.Correct {
			score++
		}
	}
	return score, nil
}

// RankResults returns the results ordered by department, then student.
// Records with equal keys keep their relative order.
func RankResults(results []ScoreRecord) []ScoreRecord {
	ranked := make([]ScoreRecord, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Department != ranked[j].Department {
			return ranked[i].Department < ranked[j].Department
		}
		return ranked[i].Student < ranked[j].Student
	})
	return ranked
}

// AvailableExamsFor returns the exams whose department equals department
// exactly, in catalog order.
func AvailableExamsFor(department string, exams []Exam) []Exam {
	var available []Exam
	for _, e := range exams {
		if e.Department == department {
			available = append(available, e)
		}
	}
	return available
}
