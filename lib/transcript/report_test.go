package transcript

import (
	"bytes"
	"testing"

	"github.com/ValentinKolb/dRec/lib/sheet"
	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSameText fails with a unified diff if got differs from want
func assertSameText(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Errorf("output mismatch:\n%s", diff)
}

func TestWriteTranscript(t *testing.T) {
	g := newTestGradebook(t)
	require.NoError(t, g.AddCourse("S3", "A", "1"))
	require.NoError(t, g.AddCourse("S3", "B", "2"))
	require.NoError(t, g.AddCourse("S3", "C", "2"))

	var buf bytes.Buffer
	require.NoError(t, WriteTranscript(&buf, g))

	assertSameText(t, `Student ID: S1
Courses:
  Math: 3.0
  Physics: 4.0
GPA: 3.5

Student ID: S2
Courses:
  Math: 2.5
GPA: 2.5

Student ID: S3
Courses:
  A: 1.0
  B: 2.0
  C: 2.0
GPA: 1.67

`, buf.String())
}

func TestWriteTranscriptEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTranscript(&buf, NewGradebook()))
	assert.Empty(t, buf.String())
}

func TestWriteStudent(t *testing.T) {
	g := newTestGradebook(t)

	var buf bytes.Buffer
	require.NoError(t, WriteStudent(&buf, g, "S1"))
	assertSameText(t, "Results for Student ID: S1\n  Math: 3.0\n  Physics: 4.0\nGPA: 3.5\n", buf.String())

	err := WriteStudent(&buf, g, "S9")
	assert.Equal(t, store.RetCNotFound, store.CodeOf(err))
}

func TestExportXLSX(t *testing.T) {
	g := newTestGradebook(t)

	var buf bytes.Buffer
	require.NoError(t, ExportXLSX(&buf, g))

	name, rows, err := sheet.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Transcript", name)
	assert.Equal(t, [][]string{
		{"Student ID", "Course", "Grade", "GPA"},
		{"S1", "Math", "3", "3.5"},
		{"S1", "Physics", "4", "3.5"},
		{"S2", "Math", "2.5", "2.5"},
	}, rows)
}
