package exam

import (
	"errors"
	"testing"

	"github.com/ValentinKolb/dRec/lib/metrics"
	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExam(t *testing.T) {
	s := newTestSystem(t)

	assert.Equal(t, store.RetCValidationFailed, store.CodeOf(s.AddExam("root", "Algorithms", "EEE")))
	assert.Equal(t, store.RetCValidationFailed, store.CodeOf(s.AddExam("root", "", "CSE")))
	assert.Equal(t, store.RetCValidationFailed, store.CodeOf(s.AddExam("root", "Networks", " ")))
	assert.Equal(t, store.RetCNotFound, store.CodeOf(s.AddExam("ghost", "Networks", "CSE")))

	require.NoError(t, s.SignUpAdmin("other", "pw"))
	require.NoError(t, s.AddExam("other", "Networks", "CSE"))

	names := func(exams []Exam) []string {
		var n []string
		for _, e := range exams {
			n = append(n, e.Name)
		}
		return n
	}
	assert.Equal(t, []string{"Algorithms", "Circuits", "Networks"}, names(s.Exams()))
	assert.Equal(t, []string{"Algorithms", "Circuits"}, names(s.ExamsOwnedBy("root")))
	assert.Equal(t, []string{"Networks"}, names(s.ExamsOwnedBy("other")))
}

func TestDeleteExam(t *testing.T) {
	s := newTestSystem(t)
	_, err := s.TakeExam("alice", "Algorithms", []int{2, 1})
	require.NoError(t, err)

	require.NoError(t, s.DeleteExam("root", "Algorithms"))
	_, ok := s.Exam("Algorithms")
	assert.False(t, ok)

	err = s.DeleteExam("root", "Algorithms")
	assert.True(t, errors.Is(err, store.ErrNotFound))

	// recorded scores survive and keep their department
	results := s.StudentResults("alice")
	require.Len(t, results, 1)
	assert.Equal(t, "CSE", results[0].Department)
}

func TestAddQuestion(t *testing.T) {
	s := newTestSystem(t)

	before, _ := s.Exam("Algorithms")
	tests := []struct {
		name string
		exam string
		q    Question
	}{
		{"correct not in options", "Algorithms", Question{Text: "Q", Options: []string{"a", "b"}, Correct: "c"}},
		{"one option", "Algorithms", Question{Text: "Q", Options: []string{"a"}, Correct: "a"}},
		{"blank text", "Algorithms", Question{Text: "  ", Options: []string{"a", "b"}, Correct: "a"}},
		{"blank option", "Algorithms", Question{Text: "Q", Options: []string{"a", ""}, Correct: "a"}},
		{"unknown exam", "Nope", Question{Text: "Q", Options: []string{"a", "b"}, Correct: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddQuestion("root", tt.exam, tt.q)
			assert.True(t, errors.Is(err, store.ErrValidationFailed), "got %v", err)
			after, _ := s.Exam("Algorithms")
			assert.Equal(t, before, after)
		})
	}

	err := s.AddQuestion("root", "Algorithms", Question{Text: "Q", Options: []string{"a", "b"}, Correct: "c"})
	assert.Equal(t, "correct option must be one of the provided options", err.Error())

	q := Question{Text: "Big O of binary search?", Options: []string{"n", "log n"}, Correct: "log n"}
	require.NoError(t, s.AddQuestion("root", "Algorithms", q))
	e, _ := s.Exam("Algorithms")
	require.Len(t, e.Questions, 3)
	assert.Equal(t, q, e.Questions[2])

	// the stored question does not alias the caller's slice
	q.Options[0] = "changed"
	e, _ = s.Exam("Algorithms")
	assert.Equal(t, "n", e.Questions[2].Options[0])
}

func TestEditQuestion(t *testing.T) {
	s := newTestSystem(t)
	before, _ := s.Exam("Algorithms")
	valid := Question{Text: "New?", Options: []string{"x", "y"}, Correct: "y"}

	for _, idx := range []int{0, -1, 3} {
		err := s.EditQuestion("root", "Algorithms", idx, valid)
		assert.True(t, errors.Is(err, store.ErrValidationFailed), "index %d: got %v", idx, err)
	}
	err := s.EditQuestion("root", "Algorithms", 1, Question{Text: "New?", Options: []string{"x", "y"}, Correct: "z"})
	assert.True(t, errors.Is(err, store.ErrValidationFailed))
	err = s.EditQuestion("root", "Nope", 1, valid)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	after, _ := s.Exam("Algorithms")
	assert.Equal(t, before, after)

	require.NoError(t, s.EditQuestion("root", "Algorithms", 2, valid))
	after, _ = s.Exam("Algorithms")
	assert.Equal(t, before.Questions[0], after.Questions[0])
	assert.Equal(t, valid, after.Questions[1])
}

func TestExamOwnership(t *testing.T) {
	s := newTestSystem(t)
	require.NoError(t, s.SignUpAdmin("other", "pw"))
	require.NoError(t, s.AddExam("other", "Networks", "CSE"))
	before, _ := s.Exam("Algorithms")
	valid := Question{Text: "Q", Options: []string{"a", "b"}, Correct: "a"}

	err := s.DeleteExam("other", "Algorithms")
	assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)
	assert.Equal(t, "exam Algorithms does not exist", err.Error())

	err = s.AddQuestion("other", "Algorithms", valid)
	assert.True(t, errors.Is(err, store.ErrValidationFailed), "got %v", err)

	err = s.EditQuestion("other", "Algorithms", 1, valid)
	assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)

	_, err = s.OwnedExam("other", "Algorithms")
	assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)

	after, ok := s.Exam("Algorithms")
	require.True(t, ok)
	assert.Equal(t, before, after)

	// suggestions only name exams of the acting admin
	err = s.DeleteExam("other", "Networx")
	assert.Equal(t, "exam Networx does not exist (did you mean Networks?)", err.Error())
	err = s.DeleteExam("other", "algoritms")
	assert.Equal(t, "exam algoritms does not exist", err.Error())

	require.NoError(t, s.AddQuestion("other", "Networks", valid))
	e, err := s.OwnedExam("other", "Networks")
	require.NoError(t, err)
	assert.Len(t, e.Questions, 1)
	require.NoError(t, s.DeleteExam("other", "Networks"))
}

func TestExamReturnsCopy(t *testing.T) {
	s := newTestSystem(t)
	e, _ := s.Exam("Algorithms")
	e.Questions[0].Options[0] = "changed"
	e.Questions[0].Text = "changed"

	again, _ := s.Exam("Algorithms")
	assert.Equal(t, "2+2?", again.Questions[0].Text)
	assert.Equal(t, "3", again.Questions[0].Options[0])
}

func TestTakeExam(t *testing.T) {
	s := newTestSystem(t)

	rec, err := s.TakeExam("alice", "Algorithms", []int{2, 2})
	require.NoError(t, err)
	assert.Equal(t, ScoreRecord{Student: "alice", Exam: "Algorithms", Department: "CSE", Score: 1, Total: 2}, rec)

	rec, err = s.TakeExam("alice", "Algorithms", []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Score)

	tests := []struct {
		name    string
		student string
		exam    string
		answers []int
		code    store.RetCode
	}{
		{"unknown student", "carol", "Algorithms", []int{1, 1}, store.RetCNotFound},
		{"unknown exam", "alice", "Nope", []int{1}, store.RetCNotFound},
		{"other department", "bob", "Algorithms", []int{1, 1}, store.RetCValidationFailed},
		{"no questions", "bob", "Circuits", nil, store.RetCValidationFailed},
		{"too few answers", "alice", "Algorithms", []int{1}, store.RetCValidationFailed},
		{"answer out of range", "alice", "Algorithms", []int{1, 4}, store.RetCValidationFailed},
		{"answer zero", "alice", "Algorithms", []int{0, 1}, store.RetCValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.TakeExam(tt.student, tt.exam, tt.answers)
			assert.Equal(t, tt.code, store.CodeOf(err), "got %v", err)
		})
	}

	assert.Len(t, s.StudentResults("alice"), 2)
	assert.Empty(t, s.StudentResults("bob"))
}

func TestRecordScore(t *testing.T) {
	s := newTestSystem(t)

	rec, err := s.RecordScore("zoe", "Algorithms", 2)
	require.NoError(t, err)
	assert.Equal(t, "CSE", rec.Department)
	assert.Equal(t, 2, rec.Total)

	_, err = s.RecordScore("zoe", "Algorithms", 3)
	assert.Equal(t, store.RetCValidationFailed, store.CodeOf(err))
	_, err = s.RecordScore("", "Algorithms", 1)
	assert.Equal(t, store.RetCValidationFailed, store.CodeOf(err))
	_, err = s.RecordScore("zoe", "Nope", 1)
	assert.Equal(t, store.RetCNotFound, store.CodeOf(err))

	assert.Len(t, s.AllResults(), 1)
}

func TestRankedResults(t *testing.T) {
	s := newTestSystem(t)
	require.NoError(t, s.SignUpStudent("aaron", "pw", "CSE"))
	require.NoError(t, s.AddQuestion("root", "Circuits", Question{Text: "Ohm?", Options: []string{"V=IR", "E=mc2"}, Correct: "V=IR"}))

	_, err := s.TakeExam("bob", "Circuits", []int{1})
	require.NoError(t, err)
	_, err = s.TakeExam("alice", "Algorithms", []int{1, 1})
	require.NoError(t, err)
	_, err = s.TakeExam("aaron", "Algorithms", []int{2, 1})
	require.NoError(t, err)

	ranked := s.RankedResults()
	var order []string
	for _, r := range ranked {
		order = append(order, r.Department+"/"+r.Student)
	}
	assert.Equal(t, []string{"CSE/aaron", "CSE/alice", "EEE/bob"}, order)
}

func TestAvailableExams(t *testing.T) {
	s := newTestSystem(t)
	exams, err := s.AvailableExams("alice")
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, "Algorithms", exams[0].Name)

	_, err = s.AvailableExams("nobody")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestExamNotFoundSuggestion(t *testing.T) {
	s := newTestSystem(t)
	err := s.DeleteExam("root", "algoritms")
	assert.Equal(t, "exam algoritms does not exist (did you mean Algorithms?)", err.Error())

	err = s.DeleteExam("root", "Zoology")
	assert.Equal(t, "exam Zoology does not exist", err.Error())
}

func TestExamMutationMetrics(t *testing.T) {
	before := metrics.Mutations(metricsTool, "delete_exam", store.RetCNotFound)
	s := newTestSystem(t)
	_ = s.DeleteExam("root", "missing")
	assert.Equal(t, before+1, metrics.Mutations(metricsTool, "delete_exam", store.RetCNotFound))
}
