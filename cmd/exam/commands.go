package exam

import (
	"fmt"
	"github.com/ValentinKolb/dRec/lib/exam"
	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/ValentinKolb/dRec/lib/store/filestore"
	"github.com/spf13/cobra"
	"io"
	"strconv"
)

var (
	signupAdminCmd = &cobra.Command{
		Use:   "signup-admin [username]",
		Short: "Creates an admin account, the password is prompted for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSystem(cmd)
			if err != nil {
				return err
			}
			pwd, err := s.prompt.AskPassword("Enter new admin password: ")
			if err != nil {
				return err
			}
			if err := s.sys.SignUpAdmin(args[0], pwd); err != nil {
				return err
			}
			if err := s.save(exam.FileAdmins); err != nil {
				return err
			}
			s.prompt.Println("Admin account created successfully.")
			return nil
		},
	}
	signupStudentCmd = &cobra.Command{
		Use:   "signup-student [username] [department]",
		Short: "Creates a student account, the password is prompted for",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSystem(cmd)
			if err != nil {
				return err
			}
			pwd, err := s.prompt.AskPassword("Enter new student password: ")
			if err != nil {
				return err
			}
			if err := s.sys.SignUpStudent(args[0], pwd, args[1]); err != nil {
				return err
			}
			if err := s.save(exam.FileStudents); err != nil {
				return err
			}
			s.prompt.Println("Student account created successfully.")
			return nil
		},
	}
	examAddCmd = &cobra.Command{
		Use:   "exam-add [name] [department]",
		Short: "Adds an empty exam for a department (admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return adminMutation(cmd, exam.FileExams, func(s *session, admin exam.AdminAccount) (string, error) {
				if err := s.sys.AddExam(admin.Username, args[0], args[1]); err != nil {
					return "", err
				}
				return fmt.Sprintf("Exam '%s' under department '%s' added successfully.", args[0], args[1]), nil
			})
		},
	}
	examDeleteCmd = &cobra.Command{
		Use:   "exam-delete [name]",
		Short: "Deletes an exam of the admin, recorded scores are kept (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return adminMutation(cmd, exam.FileExams, func(s *session, admin exam.AdminAccount) (string, error) {
				if err := s.sys.DeleteExam(admin.Username, args[0]); err != nil {
					return "", err
				}
				return fmt.Sprintf("Exam '%s' deleted successfully.", args[0]), nil
			})
		},
	}
	examListCmd = &cobra.Command{
		Use:   "exam-list",
		Short: "Lists the exams created by the admin (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, admin, err := adminSession(cmd)
			if err != nil {
				return err
			}
			return exam.WriteExams(cmd.OutOrStdout(), s.sys.ExamsOwnedBy(admin.Username))
		},
	}
	questionAddCmd = &cobra.Command{
		Use:   "question-add [exam] [question] [options] [correct]",
		Short: "Adds a question to an exam of the admin, options are comma separated (admin)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return adminMutation(cmd, exam.FileExams, func(s *session, admin exam.AdminAccount) (string, error) {
				q := exam.Question{Text: args[1], Options: splitOptions(args[2]), Correct: args[3]}
				if err := s.sys.AddQuestion(admin.Username, args[0], q); err != nil {
					return "", err
				}
				return "Question added successfully.", nil
			})
		},
	}
	questionEditCmd = &cobra.Command{
		Use:   "question-edit [exam] [number] [question] [options] [correct]",
		Short: "Replaces the question with the given number (admin)",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return store.Errorf(store.RetCValidationFailed, "question number must be a number: %s", args[1])
			}
			return adminMutation(cmd, exam.FileExams, func(s *session, admin exam.AdminAccount) (string, error) {
				q := exam.Question{Text: args[2], Options: splitOptions(args[3]), Correct: args[4]}
				if err := s.sys.EditQuestion(admin.Username, args[0], index, q); err != nil {
					return "", err
				}
				return "Question updated successfully.", nil
			})
		},
	}
	questionListCmd = &cobra.Command{
		Use:   "question-list [exam]",
		Short: "Lists the questions of an exam of the admin with the correct answers (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, admin, err := adminSession(cmd)
			if err != nil {
				return err
			}
			e, err := s.sys.OwnedExam(admin.Username, args[0])
			if err != nil {
				return err
			}
			return exam.WriteQuestions(cmd.OutOrStdout(), e)
		},
	}
	availableCmd = &cobra.Command{
		Use:   "available",
		Short: "Lists the exams of the student's department (student)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, student, err := studentSession(cmd)
			if err != nil {
				return err
			}
			return exam.WriteAvailableExams(cmd.OutOrStdout(), exam.AvailableExamsFor(student.Department, s.sys.Exams()))
		},
	}
	takeCmd = &cobra.Command{
		Use:   "take [exam] [answers...]",
		Short: "Takes an exam (student)",
		Long:  `Takes an exam. Answers are option numbers, one per question. Without answers every question is shown and the answer is prompted for.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, student, err := studentSession(cmd)
			if err != nil {
				return err
			}

			var rec exam.ScoreRecord
			if len(args) == 1 {
				rec, err = takeInteractive(s, student, args[0])
			} else {
				var answers []int
				if answers, err = parseAnswers(args[1:]); err == nil {
					rec, err = s.sys.TakeExam(student.Username, args[0], answers)
				}
			}
			if err != nil {
				return err
			}
			if err := s.save(exam.FileScores); err != nil {
				return err
			}
			s.prompt.Printf("Exam completed. Your score: %d/%d\n", rec.Score, rec.Total)
			return nil
		},
	}
	resultsCmd = &cobra.Command{
		Use:   "results",
		Short: "Shows the ranked results of all students (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := adminSession(cmd)
			if err != nil {
				return err
			}
			return exam.WriteRankedResults(cmd.OutOrStdout(), s.sys.RankedResults())
		},
	}
	myResultsCmd = &cobra.Command{
		Use:   "my-results",
		Short: "Shows the scores of the student (student)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, student, err := studentSession(cmd)
			if err != nil {
				return err
			}
			return exam.WriteStudentResults(cmd.OutOrStdout(), s.sys.StudentResults(student.Username))
		},
	}
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Exports the ranked results as an XLSX workbook (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			s, _, err := adminSession(cmd)
			if err != nil {
				return err
			}
			if err := filestore.Write(output, func(w io.Writer) error {
				return exam.ExportXLSX(w, s.sys.RankedResults())
			}); err != nil {
				return err
			}
			s.prompt.Printf("Results have been exported to '%s'.\n", output)
			return nil
		},
	}
)

// adminSession loads the system and logs in the admin given by --user
func adminSession(cmd *cobra.Command) (*session, exam.AdminAccount, error) {
	s, err := openSystem(cmd)
	if err != nil {
		return nil, exam.AdminAccount{}, err
	}
	admin, err := s.admin()
	return s, admin, err
}

// studentSession loads the system and logs in the student given by --user
func studentSession(cmd *cobra.Command) (*session, exam.StudentAccount, error) {
	s, err := openSystem(cmd)
	if err != nil {
		return nil, exam.StudentAccount{}, err
	}
	student, err := s.student()
	return s, student, err
}

// adminMutation runs op as the logged in admin, saves file and prints the returned message
func adminMutation(cmd *cobra.Command, file exam.StoreFile, op func(s *session, admin exam.AdminAccount) (string, error)) error {
	s, admin, err := adminSession(cmd)
	if err != nil {
		return err
	}
	msg, err := op(s, admin)
	if err != nil {
		return err
	}
	if err := s.save(file); err != nil {
		return err
	}
	s.prompt.Println(msg)
	return nil
}

// parseAnswers converts option numbers given as arguments
func parseAnswers(args []string) ([]int, error) {
	answers := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, store.Errorf(store.RetCValidationFailed, "answer %d is not a number: %s", i+1, a)
		}
		answers[i] = n
	}
	return answers, nil
}

// takeInteractive shows every question of an exam and prompts for the answers
// until each one is a valid option number.
func takeInteractive(s *session, student exam.StudentAccount, name string) (exam.ScoreRecord, error) {
	e, ok := s.sys.Exam(name)
	if !ok || e.Department != student.Department {
		// let TakeExam produce the error
		return s.sys.TakeExam(student.Username, name, nil)
	}
	if len(e.Questions) == 0 {
		return exam.ScoreRecord{}, store.NewError(store.RetCValidationFailed, "No questions available for this exam.")
	}

	s.prompt.Printf("Starting exam: %s\n\n", e.Name)
	answers := make([]int, len(e.Questions))
	for i, q := range e.Questions {
		if err := exam.WriteQuestion(s.prompt.Out(), i, q); err != nil {
			return exam.ScoreRecord{}, err
		}
		for {
			input, err := s.prompt.Ask("Your answer: ")
			if err != nil {
				return exam.ScoreRecord{}, err
			}
			n, err := strconv.Atoi(input)
			if err != nil {
				s.prompt.Println("Invalid input. Please enter a number.")
				continue
			}
			if n < 1 || n > len(q.Options) {
				s.prompt.Println("Invalid choice. Please select a valid option number.")
				continue
			}
			answers[i] = n
			break
		}
	}
	return s.sys.TakeExam(student.Username, e.Name, answers)
}
