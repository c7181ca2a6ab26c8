package exam

import (
	"github.com/ValentinKolb/dRec/lib/db"
	"github.com/ValentinKolb/dRec/lib/db/engines/ordered"
	"github.com/ValentinKolb/dRec/lib/metrics"
	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/ValentinKolb/dRec/lib/validate"
	"github.com/go-playground/validator/v10"
	"github.com/lni/dragonboat/v4/logger"
	"slices"
	"strings"
)

var plog = logger.GetLogger("exam")

// metricsTool labels the mutation counters of this package
const metricsTool = "exam"

// correctOptionTag names the struct level rule that the correct answer is one of the options
const correctOptionTag = "correct_option"

func init() {
	validate.RegisterRule(correctOptionTag, "must be one of the provided options", questionStructValidation, questionInput{})
}

// System is the application context of the exam tool. It owns the account,
// exam and score tables; every operation goes through it.
//
// Mutations return nil if they were applied and a *store.Error with code
// RetCNotFound or RetCValidationFailed otherwise. A failed mutation changes
// nothing.
//
// Thread-safety: a System is not safe for concurrent use.
type System struct {
	admins   db.Table[AdminAccount]
	students db.Table[StudentAccount]
	exams    db.Table[Exam]
	scores   db.Table[[]ScoreRecord] // student -> attempts in the order they were recorded
}

// NewSystem creates an empty system
func NewSystem() *System {
	return &System{
		admins:   ordered.NewOrderedTable[AdminAccount](),
		students: ordered.NewOrderedTable[StudentAccount](),
		exams:    ordered.NewOrderedTable[Exam](),
		scores:   ordered.NewOrderedTable[[]ScoreRecord](),
	}
}

// --------------------------------------------------------------------------
// Input validation
// --------------------------------------------------------------------------

type adminInput struct {
	Username string `validate:"notblank"`
	Password string `validate:"notblank"`
}

type studentInput struct {
	Username   string `validate:"notblank"`
	Password   string `validate:"notblank"`
	Department string `validate:"notblank"`
}

type examInput struct {
	Owner      string `validate:"notblank"`
	Name       string `name:"exam name" validate:"notblank"`
	Department string `validate:"notblank"`
}

type questionInput struct {
	Text    string   `name:"question" validate:"notblank"`
	Options []string `validate:"min=2,dive,notblank"`
	Correct string   `name:"correct option"`
}

func questionStructValidation(sl validator.StructLevel) {
	if in, ok := sl.Current().Interface().(questionInput); ok {
		if len(in.Options) > 0 && !slices.Contains(in.Options, in.Correct) {
			sl.ReportError(in.Correct, "correct option", "Correct", correctOptionTag, "")
		}
	}
}

func validateQuestion(q Question) error {
	return validate.Struct(questionInput{Text: q.Text, Options: q.Options, Correct: q.Correct})
}

// examNotFound builds the error for an unknown exam name, with a suggestion if
// a similar name is among candidates.
func examNotFound(code store.RetCode, name string, candidates []string) *store.Error {
	if match, ok := suggest(name, candidates); ok {
		return store.Errorf(code, "exam %s does not exist (did you mean %s?)", name, match)
	}
	return store.Errorf(code, "exam %s does not exist", name)
}

// ownedExam returns the exam name of the admin owner. Exams of other admins
// are reported as missing and never suggested.
func (s *System) ownedExam(code store.RetCode, owner, name string) (Exam, error) {
	e, ok := s.exams.Get(name)
	if ok && e.Owner == owner {
		return e, nil
	}
	var candidates []string
	for _, own := range s.ExamsOwnedBy(owner) {
		candidates = append(candidates, own.Name)
	}
	return Exam{}, examNotFound(code, name, candidates)
}

// --------------------------------------------------------------------------
// Accounts
// --------------------------------------------------------------------------

// SignUpAdmin creates an admin account. Username and password must not be
// blank and the username must be new.
func (s *System) SignUpAdmin(username, password string) error {
	return metrics.Observe(metricsTool, "signup_admin", s.signUpAdmin(username, password))
}

func (s *System) signUpAdmin(username, password string) error {
	username = strings.TrimSpace(username)
	if err := validate.Struct(adminInput{Username: username, Password: password}); err != nil {
		return err
	}
	if s.admins.Has(username) {
		return store.Errorf(store.RetCValidationFailed, "admin username %s already exists", username)
	}
	acc := AdminAccount{Username: username}
	if err := acc.SetPassword(password); err != nil {
		return err
	}
	s.admins.Set(username, acc)
	plog.Infof("created admin account %s", username)
	return nil
}

// SignUpStudent creates a student account of a department
func (s *System) SignUpStudent(username, password, department string) error {
	return metrics.Observe(metricsTool, "signup_student", s.signUpStudent(username, password, department))
}

func (s *System) signUpStudent(username, password, department string) error {
	username, department = strings.TrimSpace(username), strings.TrimSpace(department)
	in := studentInput{Username: username, Password: password, Department: department}
	if err := validate.Struct(in); err != nil {
		return err
	}
	if s.students.Has(username) {
		return store.Errorf(store.RetCValidationFailed, "student username %s already exists", username)
	}
	acc := StudentAccount{Username: username, Department: department}
	if err := acc.SetPassword(password); err != nil {
		return err
	}
	s.students.Set(username, acc)
	plog.Infof("created student account %s (%s)", username, department)
	return nil
}

// LoginAdmin returns the admin account if the credentials match
func (s *System) LoginAdmin(username, password string) (AdminAccount, error) {
	acc, ok := s.admins.Get(strings.TrimSpace(username))
	if !ok || !acc.Login(strings.TrimSpace(username), password) {
		return AdminAccount{}, store.NewError(store.RetCNotFound, "invalid credentials")
	}
	plog.Debugf("%s logged in", acc.Describe())
	return acc, nil
}

// LoginStudent returns the student account if the credentials match
func (s *System) LoginStudent(username, password string) (StudentAccount, error) {
	acc, ok := s.students.Get(strings.TrimSpace(username))
	if !ok || !acc.Login(strings.TrimSpace(username), password) {
		return StudentAccount{}, store.NewError(store.RetCNotFound, "invalid credentials")
	}
	plog.Debugf("%s logged in", acc.Describe())
	return acc, nil
}

// Student returns the student account with the given username
func (s *System) Student(username string) (StudentAccount, bool) {
	return s.students.Get(username)
}

// --------------------------------------------------------------------------
// Exams
// --------------------------------------------------------------------------

// AddExam creates an empty exam owned by the admin owner. Exam names are unique.
func (s *System) AddExam(owner, name, department string) error {
	return metrics.Observe(metricsTool, "add_exam", s.addExam(owner, name, department))
}

func (s *System) addExam(owner, name, department string) error {
	in := examInput{Owner: strings.TrimSpace(owner), Name: strings.TrimSpace(name), Department: strings.TrimSpace(department)}
	if err := validate.Struct(in); err != nil {
		return err
	}
	if !s.admins.Has(in.Owner) {
		return store.Errorf(store.RetCNotFound, "admin %s does not exist", in.Owner)
	}
	if s.exams.Has(in.Name) {
		return store.Errorf(store.RetCValidationFailed, "exam %s already exists", in.Name)
	}
	s.exams.Set(in.Name, Exam{Name: in.Name, Department: in.Department, Owner: in.Owner})
	plog.Infof("exam %s under department %s added by %s", in.Name, in.Department, in.Owner)
	return nil
}

// DeleteExam removes an exam of the admin owner. Recorded scores of the exam
// are kept.
func (s *System) DeleteExam(owner, name string) error {
	return metrics.Observe(metricsTool, "delete_exam", s.deleteExam(owner, name))
}

func (s *System) deleteExam(owner, name string) error {
	name = strings.TrimSpace(name)
	if _, err := s.ownedExam(store.RetCNotFound, owner, name); err != nil {
		return err
	}
	s.exams.Delete(name)
	plog.Infof("exam %s deleted by %s", name, owner)
	return nil
}

// AddQuestion appends a question to an exam of the admin owner. An unknown
// exam is reported as a validation failure, like the other rejected inputs.
func (s *System) AddQuestion(owner, examName string, q Question) error {
	return metrics.Observe(metricsTool, "add_question", s.addQuestion(owner, examName, q))
}

func (s *System) addQuestion(owner, examName string, q Question) error {
	examName = strings.TrimSpace(examName)
	e, err := s.ownedExam(store.RetCValidationFailed, owner, examName)
	if err != nil {
		return err
	}
	if err := validateQuestion(q); err != nil {
		return err
	}
	e = e.clone()
	e.Questions = append(e.Questions, q.clone())
	s.exams.Set(examName, e)
	plog.Debugf("question %d added to exam %s", len(e.Questions), examName)
	return nil
}

// EditQuestion replaces the question at the 1-based index of an exam of the
// admin owner
func (s *System) EditQuestion(owner, examName string, index int, q Question) error {
	return metrics.Observe(metricsTool, "edit_question", s.editQuestion(owner, examName, index, q))
}

func (s *System) editQuestion(owner, examName string, index int, q Question) error {
	examName = strings.TrimSpace(examName)
	e, err := s.ownedExam(store.RetCNotFound, owner, examName)
	if err != nil {
		return err
	}
	if index < 1 || index > len(e.Questions) {
		return store.Errorf(store.RetCValidationFailed, "invalid question index %d (exam %s has %d questions)", index, examName, len(e.Questions))
	}
	if err := validateQuestion(q); err != nil {
		return err
	}
	e = e.clone()
	e.Questions[index-1] = q.clone()
	s.exams.Set(examName, e)
	plog.Debugf("question %d of exam %s replaced", index, examName)
	return nil
}

// OwnedExam returns a copy of the exam name if it was created by the admin
// owner, a not-found error otherwise
func (s *System) OwnedExam(owner, name string) (Exam, error) {
	e, err := s.ownedExam(store.RetCNotFound, owner, strings.TrimSpace(name))
	if err != nil {
		return Exam{}, err
	}
	return e.clone(), nil
}

// Exam returns a copy of the exam with the given name
func (s *System) Exam(name string) (Exam, bool) {
	e, ok := s.exams.Get(name)
	if !ok {
		return Exam{}, false
	}
	return e.clone(), true
}

// Exams returns copies of all exams in catalog order
func (s *System) Exams() []Exam {
	exams := make([]Exam, 0, s.exams.Len())
	s.exams.Range(func(_ string, e Exam) bool {
		exams = append(exams, e.clone())
		return true
	})
	return exams
}

// ExamsOwnedBy returns the exams created by the admin owner, in catalog order
func (s *System) ExamsOwnedBy(owner string) []Exam {
	var exams []Exam
	for _, e := range s.Exams() {
		if e.Owner == owner {
			exams = append(exams, e)
		}
	}
	return exams
}

// --------------------------------------------------------------------------
// Scores
// --------------------------------------------------------------------------

// RecordScore appends a score of student for an existing exam to the score store
func (s *System) RecordScore(student, examName string, score int) (ScoreRecord, error) {
	rec, err := s.recordScore(student, examName, score)
	return rec, metrics.Observe(metricsTool, "record_score", err)
}

func (s *System) recordScore(student, examName string, score int) (ScoreRecord, error) {
	student = strings.TrimSpace(student)
	if student == "" {
		return ScoreRecord{}, store.NewError(store.RetCValidationFailed, "student cannot be empty")
	}
	e, ok := s.exams.Get(examName)
	if !ok {
		return ScoreRecord{}, examNotFound(store.RetCNotFound, examName, s.exams.Keys())
	}
	if score < 0 || score > len(e.Questions) {
		return ScoreRecord{}, store.Errorf(store.RetCValidationFailed, "score %d is out of range (0-%d)", score, len(e.Questions))
	}

	rec := ScoreRecord{
		Student:    student,
		Exam:       e.Name,
		Department: e.Department,
		Score:      score,
		Total:      len(e.Questions),
	}
	records, _ := s.scores.Get(student)
	s.scores.Set(student, append(slices.Clone(records), rec))
	plog.Infof("recorded %d/%d for %s in exam %s", rec.Score, rec.Total, student, e.Name)
	return rec, nil
}

// TakeExam grades the answers of a student and records the score. The exam
// must belong to the student's department and have at least one question.
func (s *System) TakeExam(student, examName string, answers []int) (ScoreRecord, error) {
	rec, err := s.takeExam(student, examName, answers)
	return rec, metrics.Observe(metricsTool, "take_exam", err)
}

func (s *System) takeExam(student, examName string, answers []int) (ScoreRecord, error) {
	acc, ok := s.students.Get(strings.TrimSpace(student))
	if !ok {
		return ScoreRecord{}, store.Errorf(store.RetCNotFound, "student %s does not exist", student)
	}
	examName = strings.TrimSpace(examName)
	e, ok := s.exams.Get(examName)
	if !ok {
		return ScoreRecord{}, examNotFound(store.RetCNotFound, examName, s.exams.Keys())
	}
	if e.Department != acc.Department {
		return ScoreRecord{}, store.Errorf(store.RetCValidationFailed, "exam %s is not available for department %s", examName, acc.Department)
	}
	if len(e.Questions) == 0 {
		return ScoreRecord{}, store.Errorf(store.RetCValidationFailed, "no questions available for exam %s", examName)
	}

	score, err := Grade(e.Questions, answers)
	if err != nil {
		return ScoreRecord{}, err
	}
	return s.recordScore(acc.Username, examName, score)
}

// StudentResults returns all recorded attempts of a student in recording order
func (s *System) StudentResults(student string) []ScoreRecord {
	records, _ := s.scores.Get(student)
	return slices.Clone(records)
}

// AllResults returns every recorded attempt, grouped by student in the order
// the students first recorded a score.
func (s *System) AllResults() []ScoreRecord {
	var all []ScoreRecord
	s.scores.Range(func(_ string, records []ScoreRecord) bool {
		all = append(all, records...)
		return true
	})
	return all
}

// RankedResults returns AllResults ordered by department, then student
func (s *System) RankedResults() []ScoreRecord {
	return RankResults(s.AllResults())
}

// AvailableExams returns the exams of the student's department
func (s *System) AvailableExams(student string) ([]Exam, error) {
	acc, ok := s.students.Get(student)
	if !ok {
		return nil, store.Errorf(store.RetCNotFound, "student %s does not exist", student)
	}
	return AvailableExamsFor(acc.Department, s.Exams()), nil
}
