package transcript

import (
	"github.com/ValentinKolb/dRec/lib/db"
	"github.com/ValentinKolb/dRec/lib/db/engines/ordered"
	"github.com/ValentinKolb/dRec/lib/metrics"
	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/ValentinKolb/dRec/lib/validate"
	"github.com/lni/dragonboat/v4/logger"
	"slices"
	"strings"
)

var plog = logger.GetLogger("transcript")

// metricsTool labels the mutation counters of this package
const metricsTool = "transcript"

// IGradebook maps student ids to their ordered course records.
//
// Every mutation returns nil if it was applied and a *store.Error with code
// RetCNotFound or RetCValidationFailed otherwise. A failed mutation changes
// nothing.
//
// Thread-safety: a gradebook is not safe for concurrent use.
type IGradebook interface {
	// AddCourse appends a course record to the student, creating the student if needed.
	// id and course must not be blank, grade must parse as a number.
	AddCourse(id, course, grade string) error

	// EditCourse replaces the grade of the first record of course.
	EditCourse(id, course, grade string) error

	// DeleteCourse removes the first record of course. A student without
	// courses is removed from the gradebook.
	DeleteCourse(id, course string) error

	// Courses returns a copy of the records of a student
	Courses(id string) (courses []CourseRecord, found bool)

	// GPA computes the GPA of a student, see ComputeGPA
	GPA(id string) (float64, error)

	// Students returns all student ids in insertion order
	Students() []string

	// Range calls fn for every student in insertion order until fn returns false.
	// fn must not modify courses.
	Range(fn func(id string, courses []CourseRecord) bool)

	// Len returns the number of students
	Len() int

	// Entries returns copies of all students with their records in insertion order
	Entries() []db.Entry[[]CourseRecord]
}

type gradebookImpl struct {
	students db.Table[[]CourseRecord]
}

// NewGradebook creates an empty gradebook backed by an ordered table
func NewGradebook() IGradebook {
	return newGradebookImpl()
}

func newGradebookImpl() *gradebookImpl {
	return &gradebookImpl{
		students: ordered.NewOrderedTable[[]CourseRecord](),
	}
}

// appendRecord adds a record without validation, used by the loaders
func (g *gradebookImpl) appendRecord(id string, rec CourseRecord) {
	courses, _ := g.students.Get(id)
	g.students.Set(id, append(courses, rec))
}

// courseIndex returns the index of the first record of course, or -1
func courseIndex(courses []CourseRecord, course string) int {
	return slices.IndexFunc(courses, func(c CourseRecord) bool {
		return c.Course == course
	})
}

// --------------------------------------------------------------------------
// Input validation
// --------------------------------------------------------------------------

type courseInput struct {
	ID     string `name:"student id" validate:"notblank,linesafe"`
	Course string `validate:"notblank,linesafe"`
	Grade  string `validate:"grade"`
}

type courseRef struct {
	ID     string `name:"student id" validate:"notblank"`
	Course string `validate:"notblank"`
}

// --------------------------------------------------------------------------
// Interface Methods (docu see IGradebook)
// --------------------------------------------------------------------------

func (g *gradebookImpl) AddCourse(id, course, grade string) error {
	return metrics.Observe(metricsTool, "add_course", g.addCourse(id, course, grade))
}

func (g *gradebookImpl) addCourse(id, course, grade string) error {
	in := courseInput{ID: strings.TrimSpace(id), Course: strings.TrimSpace(course), Grade: grade}
	if err := validate.Struct(in); err != nil {
		return err
	}
	value, _ := validate.ParseGrade(in.Grade)

	courses, _ := g.students.Get(in.ID)
	g.students.Set(in.ID, append(slices.Clone(courses), CourseRecord{Course: in.Course, Grade: value}))
	plog.Debugf("added %s=%v for student %s", in.Course, value, in.ID)
	return nil
}

func (g *gradebookImpl) EditCourse(id, course, grade string) error {
	return metrics.Observe(metricsTool, "edit_course", g.editCourse(id, course, grade))
}

func (g *gradebookImpl) editCourse(id, course, grade string) error {
	ref := courseRef{ID: strings.TrimSpace(id), Course: strings.TrimSpace(course)}
	if err := validate.Struct(ref); err != nil {
		return err
	}

	courses, ok := g.students.Get(ref.ID)
	if !ok {
		return store.Errorf(store.RetCNotFound, "student %s not found", ref.ID)
	}
	idx := courseIndex(courses, ref.Course)
	if idx < 0 {
		return store.Errorf(store.RetCNotFound, "course %s not found for student %s", ref.Course, ref.ID)
	}

	value, ok := validate.ParseGrade(grade)
	if !ok {
		return store.Errorf(store.RetCValidationFailed, "invalid grade %q: must be a number", grade)
	}

	updated := slices.Clone(courses)
	updated[idx].Grade = value
	g.students.Set(ref.ID, updated)
	plog.Debugf("set %s=%v for student %s", ref.Course, value, ref.ID)
	return nil
}

func (g *gradebookImpl) DeleteCourse(id, course string) error {
	return metrics.Observe(metricsTool, "delete_course", g.deleteCourse(id, course))
}

func (g *gradebookImpl) deleteCourse(id, course string) error {
	ref := courseRef{ID: strings.TrimSpace(id), Course: strings.TrimSpace(course)}
	if err := validate.Struct(ref); err != nil {
		return err
	}

	courses, ok := g.students.Get(ref.ID)
	if !ok {
		return store.Errorf(store.RetCNotFound, "student %s not found", ref.ID)
	}
	idx := courseIndex(courses, ref.Course)
	if idx < 0 {
		return store.Errorf(store.RetCNotFound, "course %s not found for student %s", ref.Course, ref.ID)
	}

	remaining := slices.Delete(slices.Clone(courses), idx, idx+1)
	if len(remaining) == 0 {
		g.students.Delete(ref.ID)
		plog.Debugf("removed student %s (no courses left)", ref.ID)
		return nil
	}
	g.students.Set(ref.ID, remaining)
	plog.Debugf("removed %s for student %s", ref.Course, ref.ID)
	return nil
}

func (g *gradebookImpl) Courses(id string) ([]CourseRecord, bool) {
	courses, ok := g.students.Get(id)
	if !ok {
		return nil, false
	}
	return slices.Clone(courses), true
}

func (g *gradebookImpl) GPA(id string) (float64, error) {
	courses, ok := g.students.Get(id)
	if !ok {
		return 0, store.Errorf(store.RetCNotFound, "student %s not found", id)
	}
	return ComputeGPA(gradesOf(courses)), nil
}

func (g *gradebookImpl) Students() []string {
	return g.students.Keys()
}

func (g *gradebookImpl) Range(fn func(id string, courses []CourseRecord) bool) {
	g.students.Range(fn)
}

func (g *gradebookImpl) Len() int {
	return g.students.Len()
}

func (g *gradebookImpl) Entries() []db.Entry[[]CourseRecord] {
	entries := db.Entries(g.students)
	for i := range entries {
		entries[i].Value = slices.Clone(entries[i].Value)
	}
	return entries
}
