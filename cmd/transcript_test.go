package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTranscriptCommands(t *testing.T) {
	dir := t.TempDir()
	flags := []string{"--data-dir", dir}
	args := func(a ...string) []string { return append(append([]string{"transcript"}, a...), flags...) }

	runCLITests(t, []cliTest{
		{name: "empty list", args: args("list"), want: []string{"No data available."}},
		{name: "add", args: args("add", "S1", "Math", "3.0"), want: []string{"Result added successfully."}},
		{name: "add second", args: args("add", "S1", "Physics", "4"), want: []string{"Result added successfully."}},
		{name: "add other", args: args("add", "S2", "Math", "2.5")},
		{name: "add bad grade", args: args("add", "S1", "Chem", "A+"), wantErr: true, want: []string{"grade must be a number"}},
		{name: "add negative grade", args: args("add", "S1", "Chem", "-3"), wantErr: true, want: []string{"grade -3.0 of student S1 in Chem cannot be stored in the lines format"}},
		{name: "show", args: args("show", "S1"), want: []string{"Results for Student ID: S1", "  Math: 3.0", "  Physics: 4.0", "GPA: 3.5"}},
		{name: "show missing", args: args("show", "S9"), wantErr: true, want: []string{"student S9 not found"}},
		{name: "edit", args: args("edit", "S1", "Physics", "5"), want: []string{"Result updated successfully."}},
		{name: "edit missing course", args: args("edit", "S1", "Art", "5"), wantErr: true, want: []string{"course Art not found"}},
		{name: "list", args: args("list"), want: []string{"Student ID: S1", "GPA: 4.0", "Student ID: S2", "GPA: 2.5"}},
		{name: "delete", args: args("delete", "S2", "Math"), want: []string{"Result deleted successfully."}},
		{name: "show deleted", args: args("show", "S2"), wantErr: true},
	})

	data, err := os.ReadFile(filepath.Join(dir, "student_data.txt"))
	if err != nil {
		t.Fatalf("store not written: %v", err)
	}
	if string(data) != "S1,Math,3.0\nS1,Physics,5.0\n" {
		t.Errorf("unexpected store content %q", data)
	}
}

func TestTranscriptShellRefusesNegativeGradeOnExit(t *testing.T) {
	dir := t.TempDir()
	input := "1\nS1\nMath\n-2\n" + // add
		"6\n" + // exit refused
		"2\nS1\nMath\n2\n" + // fix the grade
		"6\n"

	runCLITests(t, []cliTest{
		{
			name:  "session",
			stdin: input,
			args:  []string{"transcript", "shell", "--data-dir", dir},
			want:  []string{"grade -2.0 of student S1 in Math cannot be stored in the lines format", "Result updated successfully.", "Data saved. Exiting."},
		},
	})

	data, err := os.ReadFile(filepath.Join(dir, "student_data.txt"))
	if err != nil {
		t.Fatalf("store not written: %v", err)
	}
	if string(data) != "S1,Math,2.0\n" {
		t.Errorf("unexpected store content %q", data)
	}
}

func TestTranscriptNegativeGradeStructured(t *testing.T) {
	dir := t.TempDir()
	args := func(a ...string) []string {
		return append(append([]string{"transcript"}, a...), "--data-dir", dir, "--format", "json")
	}
	runCLITests(t, []cliTest{
		{name: "add", args: args("add", "S1", "Chem", "-3"), want: []string{"Result added successfully."}},
		{name: "show", args: args("show", "S1"), want: []string{"  Chem: -3.0", "GPA: -3.0"}},
	})
}

func TestTranscriptReportAndExport(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "student_data.txt"), []byte("S1,Math,3\nS1,Art,x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	report := filepath.Join(dir, "transcript.txt")
	workbook := filepath.Join(dir, "transcript.xlsx")

	runCLITests(t, []cliTest{
		{name: "report", args: []string{"transcript", "report", "--data-dir", dir, "-o", report}, want: []string{"Transcript has been generated in"}},
		{name: "export", args: []string{"transcript", "export", "--data-dir", dir, "-o", workbook}, want: []string{"Workbook has been exported to"}},
		{name: "reject policy", args: []string{"transcript", "show", "S1", "--data-dir", dir, "--grade-policy", "reject"}, want: []string{"GPA: 3.0"}},
	})

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	want := "Student ID: S1\nCourses:\n  Math: 3.0\n  Art: 0.0\nGPA: 1.5\n\n"
	if string(data) != want {
		t.Errorf("expected report %q, got %q", want, data)
	}
	if _, err := os.Stat(workbook); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
}

func TestTranscriptStructuredFormat(t *testing.T) {
	dir := t.TempDir()
	runCLITests(t, []cliTest{
		{name: "add", args: []string{"transcript", "add", "S1", "Math", "3.5", "--data-dir", dir, "--format", "yaml"}},
		{name: "show", args: []string{"transcript", "show", "S1", "--data-dir", dir, "--format", "yaml"}, want: []string{"GPA: 3.5"}},
	})
	if _, err := os.Stat(filepath.Join(dir, "student_data.yaml")); err != nil {
		t.Errorf("yaml store not written: %v", err)
	}
}

func TestTranscriptShell(t *testing.T) {
	dir := t.TempDir()
	input := "1\nS1\nMath\n3\n" + // add
		"1\nS1\nPhysics\nabc\n" + // add with invalid grade
		"2\nS1\nMath\n4\n" + // edit
		"2\nS9\n" + // edit unknown student
		"3\nS1\n" + // show
		"9\n" + // invalid choice
		"5\nS1\nChem\n" + // delete unknown course
		"4\n" + // show all
		"6\n" // exit

	runCLITests(t, []cliTest{
		{
			name:  "session",
			stdin: input,
			args:  []string{"transcript", "shell", "--data-dir", dir},
			want: []string{
				"1. Add Result",
				"Result added successfully.",
				"grade must be a number",
				"Result updated successfully.",
				"Student ID not found.",
				"Results for Student ID: S1\n  Math: 4.0\nGPA: 4.0",
				"Invalid choice. Please try again.",
				"Course not found.",
				"Student ID: S1\nCourses:\n  Math: 4.0\nGPA: 4.0\n",
				"Data saved. Exiting.",
			},
		},
		{
			name:  "changes are not saved without exit",
			stdin: "1\nS2\nArt\n2\n",
			args:  []string{"transcript", "shell", "--data-dir", dir},
		},
		{
			name: "saved data",
			args: []string{"transcript", "list", "--data-dir", dir},
			want: []string{"Student ID: S1"},
		},
	})

	data, _ := os.ReadFile(filepath.Join(dir, "student_data.txt"))
	if string(data) != "S1,Math,4.0\n" {
		t.Errorf("unexpected store content %q", data)
	}
}
