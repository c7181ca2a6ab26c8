package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExamCommands(t *testing.T) {
	dir := t.TempDir()
	args := func(a ...string) []string { return append(append([]string{"exam"}, a...), "--data-dir", dir) }
	admin := func(a ...string) []string { return append(args(a...), "--user", "root") }
	student := func(name string, a ...string) []string { return append(args(a...), "--user", name) }

	runCLITests(t, []cliTest{
		{name: "signup admin", stdin: "secret\n", args: args("signup-admin", "root"), want: []string{"Admin account created successfully."}},
		{name: "duplicate admin", stdin: "x\n", args: args("signup-admin", "root"), wantErr: true, want: []string{"already exists"}},
		{name: "signup student", stdin: "pw\n", args: args("signup-student", "alice", "CSE"), want: []string{"Student account created successfully."}},
		{name: "signup other student", stdin: "pw\n", args: args("signup-student", "bob", "EEE")},
		{name: "missing user", args: args("exam-list"), wantErr: true, want: []string{"--user is required"}},
		{name: "wrong password", stdin: "nope\n", args: admin("exam-list"), wantErr: true, want: []string{"invalid credentials"}},
		{name: "add exam", stdin: "secret\n", args: admin("exam-add", "Algorithms", "CSE"), want: []string{"Exam 'Algorithms' under department 'CSE' added successfully."}},
		{name: "add exam 2", stdin: "secret\n", args: admin("exam-add", "Circuits", "EEE")},
		{name: "add question", stdin: "secret\n", args: admin("question-add", "Algorithms", "2+2?", "3, 4", "4"), want: []string{"Question added successfully."}},
		{name: "add question 2", stdin: "secret\n", args: admin("question-add", "Algorithms", "Sort?", "quick,bogo", "quick")},
		{name: "add bad question", stdin: "secret\n", args: admin("question-add", "Algorithms", "Q", "a,b", "c"), wantErr: true, want: []string{"correct option must be one of the provided options"}},
		{name: "add question unknown exam", stdin: "secret\n", args: admin("question-add", "Algoritms", "Q", "a,b", "a"), wantErr: true, want: []string{"did you mean Algorithms?"}},
		{name: "edit question", stdin: "secret\n", args: admin("question-edit", "Algorithms", "2", "Sort fast?", "quick,bogo", "quick"), want: []string{"Question updated successfully."}},
		{name: "edit question index", stdin: "secret\n", args: admin("question-edit", "Algorithms", "3", "Q", "a,b", "a"), wantErr: true, want: []string{"invalid question index 3"}},
		{name: "list exams", stdin: "secret\n", args: admin("exam-list"), want: []string{"Exam: Algorithms (Department: CSE, 2 questions)", "Exam: Circuits (Department: EEE, 0 questions)"}},
		{name: "list questions", stdin: "secret\n", args: admin("question-list", "Algorithms"), want: []string{"1. 2+2?", "   2. 4", "   Correct Answer: 4", "2. Sort fast?"}},
		{name: "available", stdin: "pw\n", args: student("alice", "available"), want: []string{"Available Exams:", "  1. Algorithms (Department: CSE, 2 questions)"}},
		{name: "available none", stdin: "pw\n", args: student("bob", "available"), want: []string{"No exams available for your department."}},
		{name: "take", stdin: "pw\n", args: student("alice", "take", "Algorithms", "2", "1"), want: []string{"Exam completed. Your score: 2/2"}},
		{name: "take interactive", stdin: "pw\nx\n5\n1\n2\n", args: student("alice", "take", "Algorithms"), want: []string{
			"Starting exam: Algorithms", "Q1: 2+2?", "Invalid input. Please enter a number.", "Invalid choice. Please select a valid option number.", "Q2: Sort fast?", "Exam completed. Your score: 0/2",
		}},
		{name: "take other department", stdin: "pw\n", args: student("bob", "take", "Algorithms", "1", "1"), wantErr: true, want: []string{"not available for department EEE"}},
		{name: "take bad answer", stdin: "pw\n", args: student("alice", "take", "Algorithms", "1", "x"), wantErr: true},
		{name: "my results", stdin: "pw\n", args: student("alice", "my-results"), want: []string{"Algorithms: 0"}},
		{name: "results", stdin: "secret\n", args: admin("results"), want: []string{"Student Results:", "Serial No.  Student Name", "1           alice          CSE            Algorithms                    2", "2           alice          CSE            Algorithms                    0"}},
		{name: "student cannot view results", stdin: "pw\n", args: student("alice", "results"), wantErr: true},
		{name: "delete exam", stdin: "secret\n", args: admin("exam-delete", "Algorithms"), want: []string{"Exam 'Algorithms' deleted successfully."}},
		{name: "results survive delete", stdin: "secret\n", args: admin("results"), want: []string{"Algorithms"}},
	})

	for _, f := range []string{"admins.json", "students.json", "exams.json", "scores.json"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("store file %s not written: %v", f, err)
		}
	}
	data, _ := os.ReadFile(filepath.Join(dir, "admins.json"))
	if strings.Contains(string(data), "secret") {
		t.Errorf("password stored in clear text")
	}
}

func TestExamOtherAdminRefused(t *testing.T) {
	dir := t.TempDir()
	args := func(user string, a ...string) []string {
		return append(append([]string{"exam"}, a...), "--data-dir", dir, "--user", user)
	}
	runCLITests(t, []cliTest{
		{name: "signup alice", stdin: "pw-a\n", args: []string{"exam", "signup-admin", "alice", "--data-dir", dir}},
		{name: "signup bob", stdin: "pw-b\n", args: []string{"exam", "signup-admin", "bob", "--data-dir", dir}},
		{name: "alice adds exam", stdin: "pw-a\n", args: args("alice", "exam-add", "Algo", "CSE")},
		{name: "alice adds question", stdin: "pw-a\n", args: args("alice", "question-add", "Algo", "2+2?", "3,4", "4")},
		{name: "bob lists nothing", stdin: "pw-b\n", args: args("bob", "exam-list"), want: []string{"No exams available."}},
		{name: "bob cannot delete", stdin: "pw-b\n", args: args("bob", "exam-delete", "Algo"), wantErr: true, want: []string{"exam Algo does not exist"}},
		{name: "bob cannot add question", stdin: "pw-b\n", args: args("bob", "question-add", "Algo", "Q", "a,b", "a"), wantErr: true, want: []string{"exam Algo does not exist"}},
		{name: "bob cannot edit question", stdin: "pw-b\n", args: args("bob", "question-edit", "Algo", "1", "Q", "a,b", "a"), wantErr: true, want: []string{"exam Algo does not exist"}},
		{name: "bob cannot list questions", stdin: "pw-b\n", args: args("bob", "question-list", "Algo"), wantErr: true, want: []string{"exam Algo does not exist"}},
		{name: "exam unchanged", stdin: "pw-a\n", args: args("alice", "question-list", "Algo"), want: []string{"1. 2+2?", "   Correct Answer: 4"}},
	})

	input := strings.Join([]string{
		"1", "bob", "pw-b",
		"2", "Algo", // delete
		"3", "Algo", "Q", "a,b", "a", // add question
		"5", "Algo", // view questions
		"6", "Algo", // edit question
		"8",
		"5",
	}, "\n") + "\n"
	out, err := execute(t, input, "exam", "shell", "--data-dir", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, w := range []string{"exam Algo does not exist", "Exam does not exist.", "Invalid exam name. Please try again."} {
		if !strings.Contains(out, w) {
			t.Errorf("expected output to contain %q, got:\n%s", w, out)
		}
	}
	if strings.Contains(out, "deleted successfully") || strings.Contains(out, "Question added successfully.") {
		t.Errorf("bob changed an exam of alice:\n%s", out)
	}
}

func TestExamExport(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "results.xlsx")
	runCLITests(t, []cliTest{
		{name: "signup", stdin: "secret\n", args: []string{"exam", "signup-admin", "root", "--data-dir", dir}},
		{name: "export", stdin: "secret\n", args: []string{"exam", "export", "--user", "root", "-o", workbook, "--data-dir", dir}, want: []string{"Results have been exported to"}},
	})
	if _, err := os.Stat(workbook); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
}

func TestExamShell(t *testing.T) {
	dir := t.TempDir()
	input := strings.Join([]string{
		"4", "alice", "pw", "CSE", // student sign-up
		"3", "root", "secret", // admin sign-up
		"3", "root", "x", // duplicate admin
		"1", "root", "wrong", // failed login
		"1", "root", "secret", // admin login
		"1", "Algorithms", "CSE", // add exam
		"3", "Algorithms", "2+2?", "3,4", "5", // bad question
		"3", "Algorithms", "2+2?", "3,4", "4", // add question
		"4",                                         // view exams
		"5", "Algorithms",                           // view questions
		"6", "Algorithms", "x",                      // edit with invalid number
		"6", "Algorithms", "1", "2+3?", "5,6", "5", // edit question
		"8",             // logout
		"2", "alice", "pw", // student login
		"1",                  // available exams
		"2", "Algorithms", "1", // take exam
		"3", // view results
		"4", // logout
		"1", "root", "secret",
		"7", // ranked results
		"2", "Algorithms", // delete exam
		"8",
		"7", // invalid choice
		"5", // exit
	}, "\n") + "\n"

	runCLITests(t, []cliTest{
		{
			name:  "session",
			stdin: input,
			args:  []string{"exam", "shell", "--data-dir", dir, "--format", "yaml"},
			want: []string{
				"Welcome to the Online Examination System",
				"Student account created successfully.",
				"Admin account created successfully.",
				"admin username root already exists",
				"Invalid credentials. Please try again.",
				"Admin logged in successfully.",
				"Exam 'Algorithms' under department 'CSE' added successfully.",
				"correct option must be one of the provided options",
				"Question added successfully.",
				"Exam: Algorithms (Department: CSE, 1 questions)",
				"Questions in exam 'Algorithms':",
				"Invalid input. Please enter a valid question number.",
				"Question updated successfully.",
				"Logged out.",
				"Student logged in successfully.",
				"  1. Algorithms (Department: CSE, 1 questions)",
				"Q1: 2+3?",
				"Exam completed. Your score: 1/1",
				"Algorithms: 1",
				"1           alice          CSE            Algorithms                    1",
				"Exam 'Algorithms' deleted successfully.",
				"Invalid choice. Please enter a number between 1 and 5.",
				"Exiting the system. Goodbye!",
			},
		},
		{
			name:  "data persisted",
			stdin: "secret\n",
			args:  []string{"exam", "results", "--user", "root", "--data-dir", dir, "--format", "yaml"},
			want:  []string{"alice"},
		},
	})

	if _, err := os.Stat(filepath.Join(dir, "scores.yaml")); err != nil {
		t.Errorf("scores not saved: %v", err)
	}
}
