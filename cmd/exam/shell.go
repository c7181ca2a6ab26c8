package exam

import (
	"errors"
	"github.com/ValentinKolb/dRec/cmd/util"
	"github.com/ValentinKolb/dRec/lib/exam"
	"github.com/spf13/cobra"
	"io"
	"strconv"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive menu for admins and students",
	Long:  `Starts the interactive menu. Accounts are saved on sign-up, exams when an admin logs out, scores when a student logs out and everything on "Exit". Closing the input (Ctrl-D) leaves without saving.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSystem(cmd)
		if err != nil {
			return err
		}
		err = runShell(s)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	},
}

const (
	mainMenu = `
Welcome to the Online Examination System
1. Admin Login
2. Student Login
3. Admin Sign-Up
4. Student Sign-Up
5. Exit`

	adminMenu = `
Admin Menu
1. Add Exam
2. Delete Exam
3. Add Question to Exam
4. View Exams
5. View Questions in Exam
6. Edit Question in Exam
7. View All Student Results
8. Logout`

	studentMenu = `
Student Menu
1. View Available Exams
2. Take Exam
3. View Results
4. Logout`
)

// runShell runs the main menu until the user exits or the input ends
func runShell(s *session) error {
	p := s.prompt
	for {
		p.Println(mainMenu)
		choice, err := p.Ask("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = shellAdminLogin(s)
		case "2":
			err = shellStudentLogin(s)
		case "3":
			err = shellSignUpAdmin(s)
		case "4":
			err = shellSignUpStudent(s)
		case "5":
			if err := s.save(); err != nil {
				return err
			}
			p.Println("Exiting the system. Goodbye!")
			return nil
		default:
			p.Println("Invalid choice. Please enter a number between 1 and 5.")
		}
		if err != nil {
			return err
		}
	}
}

// printResult prints err, or success if err is nil
func printResult(p *util.Prompter, err error, success string) {
	if err != nil {
		p.Println(err)
		return
	}
	p.Println(success)
}

// askAll asks the prompts in order and stops at the first read error
func askAll(p *util.Prompter, prompts ...string) ([]string, error) {
	answers := make([]string, len(prompts))
	for i, prompt := range prompts {
		a, err := p.Ask(prompt)
		if err != nil {
			return nil, err
		}
		answers[i] = a
	}
	return answers, nil
}

// --------------------------------------------------------------------------
// Sign-up
// --------------------------------------------------------------------------

func shellSignUpAdmin(s *session) error {
	p := s.prompt
	username, err := p.Ask("Enter new admin username: ")
	if err != nil {
		return err
	}
	password, err := p.AskPassword("Enter new admin password: ")
	if err != nil {
		return err
	}
	if err := s.sys.SignUpAdmin(username, password); err != nil {
		p.Println(err)
		return nil
	}
	if err := s.save(exam.FileAdmins); err != nil {
		return err
	}
	p.Println("Admin account created successfully.")
	return nil
}

func shellSignUpStudent(s *session) error {
	p := s.prompt
	username, err := p.Ask("Enter new student username: ")
	if err != nil {
		return err
	}
	password, err := p.AskPassword("Enter new student password: ")
	if err != nil {
		return err
	}
	department, err := p.Ask("Enter department: ")
	if err != nil {
		return err
	}
	if err := s.sys.SignUpStudent(username, password, department); err != nil {
		p.Println(err)
		return nil
	}
	if err := s.save(exam.FileStudents); err != nil {
		return err
	}
	p.Println("Student account created successfully.")
	return nil
}

// --------------------------------------------------------------------------
// Admin menu
// --------------------------------------------------------------------------

func shellAdminLogin(s *session) error {
	p := s.prompt
	username, err := p.Ask("Enter admin username: ")
	if err != nil {
		return err
	}
	password, err := p.AskPassword("Enter admin password: ")
	if err != nil {
		return err
	}
	admin, err := s.sys.LoginAdmin(username, password)
	if err != nil {
		p.Println("Invalid credentials. Please try again.")
		return nil
	}
	p.Println("\nAdmin logged in successfully.")

	for {
		p.Println(adminMenu)
		choice, err := p.Ask("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = shellAddExam(s, admin)
		case "2":
			var name string
			if name, err = p.Ask("Enter exam name to delete: "); err == nil {
				printResult(p, s.sys.DeleteExam(admin.Username, name), "Exam '"+name+"' deleted successfully.")
			}
		case "3":
			err = shellAddQuestion(s, admin)
		case "4":
			err = exam.WriteExams(p.Out(), s.sys.ExamsOwnedBy(admin.Username))
		case "5":
			err = shellViewQuestions(s, admin)
		case "6":
			err = shellEditQuestion(s, admin)
		case "7":
			err = exam.WriteRankedResults(p.Out(), s.sys.RankedResults())
		case "8":
			if err := s.save(exam.FileExams); err != nil {
				return err
			}
			p.Println("Logged out.")
			return nil
		default:
			p.Println("Invalid choice. Please select a valid option.")
		}
		if err != nil {
			return err
		}
	}
}

func shellAddExam(s *session, admin exam.AdminAccount) error {
	in, err := askAll(s.prompt, "Enter exam name: ", "Enter department name: ")
	if err != nil {
		return err
	}
	printResult(s.prompt, s.sys.AddExam(admin.Username, in[0], in[1]),
		"Exam '"+in[0]+"' under department '"+in[1]+"' added successfully.")
	return nil
}

func shellAddQuestion(s *session, admin exam.AdminAccount) error {
	in, err := askAll(s.prompt, "Enter exam name: ", "Enter question: ", "Enter options separated by commas: ", "Enter the correct option: ")
	if err != nil {
		return err
	}
	q := exam.Question{Text: in[1], Options: splitOptions(in[2]), Correct: in[3]}
	printResult(s.prompt, s.sys.AddQuestion(admin.Username, in[0], q), "Question added successfully.")
	return nil
}

func shellViewQuestions(s *session, admin exam.AdminAccount) error {
	name, err := s.prompt.Ask("Enter exam name: ")
	if err != nil {
		return err
	}
	e, err := s.sys.OwnedExam(admin.Username, name)
	if err != nil {
		s.prompt.Println("Exam does not exist.")
		return nil
	}
	return exam.WriteQuestions(s.prompt.Out(), e)
}

func shellEditQuestion(s *session, admin exam.AdminAccount) error {
	p := s.prompt
	name, err := p.Ask("Enter exam name: ")
	if err != nil {
		return err
	}
	if _, err := s.sys.OwnedExam(admin.Username, name); err != nil {
		p.Println("Invalid exam name. Please try again.")
		return nil
	}
	number, err := p.Ask("Enter the question number to edit: ")
	if err != nil {
		return err
	}
	index, convErr := strconv.Atoi(number)
	if convErr != nil {
		p.Println("Invalid input. Please enter a valid question number.")
		return nil
	}
	in, err := askAll(p, "Enter the new question: ", "Enter the new options separated by commas: ", "Enter the new correct option: ")
	if err != nil {
		return err
	}
	q := exam.Question{Text: in[0], Options: splitOptions(in[1]), Correct: in[2]}
	printResult(p, s.sys.EditQuestion(admin.Username, name, index, q), "Question updated successfully.")
	return nil
}

// --------------------------------------------------------------------------
// Student menu
// --------------------------------------------------------------------------

func shellStudentLogin(s *session) error {
	p := s.prompt
	username, err := p.Ask("Enter student username: ")
	if err != nil {
		return err
	}
	password, err := p.AskPassword("Enter student password: ")
	if err != nil {
		return err
	}
	student, err := s.sys.LoginStudent(username, password)
	if err != nil {
		p.Println("Invalid credentials. Please try again.")
		return nil
	}
	p.Println("\nStudent logged in successfully.")

	for {
		p.Println(studentMenu)
		choice, err := p.Ask("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = exam.WriteAvailableExams(p.Out(), exam.AvailableExamsFor(student.Department, s.sys.Exams()))
		case "2":
			err = shellTakeExam(s, student)
		case "3":
			err = exam.WriteStudentResults(p.Out(), s.sys.StudentResults(student.Username))
		case "4":
			if err := s.save(exam.FileScores); err != nil {
				return err
			}
			p.Println("Logged out.")
			return nil
		default:
			p.Println("Invalid choice. Please select a valid option.")
		}
		if err != nil {
			return err
		}
	}
}

func shellTakeExam(s *session, student exam.StudentAccount) error {
	p := s.prompt
	available := exam.AvailableExamsFor(student.Department, s.sys.Exams())
	if err := exam.WriteAvailableExams(p.Out(), available); err != nil {
		return err
	}
	if len(available) == 0 {
		return nil
	}

	name, err := p.Ask("Enter the exam name you want to take: ")
	if err != nil {
		return err
	}
	rec, err := takeInteractive(s, student, name)
	if errors.Is(err, io.EOF) {
		return err
	}
	if err != nil {
		p.Println(err)
		return nil
	}
	p.Printf("Exam completed. Your score: %d/%d\n", rec.Score, rec.Total)
	return nil
}
