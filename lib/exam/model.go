package exam

import "slices"

// Question is a multiple choice question. Correct holds the text of the
// correct option.
type Question struct {
	Text    string   `json:"question" yaml:"question"`
	Options []string `json:"options" yaml:"options"`
	Correct string   `json:"correct" yaml:"correct"`
}

// Exam is a named, ordered list of questions for one department
type Exam struct {
	Name       string     `json:"name" yaml:"name"`
	Department string     `json:"department" yaml:"department"`
	Owner      string     `json:"owner" yaml:"owner"` // admin who created the exam
	Questions  []Question `json:"questions" yaml:"questions,omitempty"`
}

// ScoreRecord is the outcome of one attempt of a student at an exam.
// The department is copied from the exam when the score is recorded.
type ScoreRecord struct {
	Student    string `json:"student" yaml:"student"`
	Exam       string `json:"exam" yaml:"exam"`
	Department string `json:"department" yaml:"department"`
	Score      int    `json:"score" yaml:"score"`
	Total      int    `json:"total" yaml:"total"`
}

// clone returns a deep copy of the question
func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// clone returns a deep copy of the exam
func (e Exam) clone() Exam {
	e.Questions = slices.Clone(e.Questions)
	for i := range e.Questions {
		e.Questions[i] = e.Questions[i].clone()
	}
	return e
}
