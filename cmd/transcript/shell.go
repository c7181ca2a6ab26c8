package transcript

import (
	"errors"
	"github.com/ValentinKolb/dRec/cmd/util"
	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/ValentinKolb/dRec/lib/transcript"
	"github.com/spf13/cobra"
	"io"
	"slices"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive menu for managing results",
	Long:  `Starts the interactive menu. Changes are kept in memory and saved when the menu is left with "Exit"; closing the input (Ctrl-D) leaves without saving.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openGradebook()
		if err != nil {
			return err
		}
		err = runShell(util.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), s)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	},
}

const menu = `
Choose an option:
1. Add Result
2. Edit Result
3. Show Specific Result
4. Show All
5. Delete Result
6. Exit`

// runShell runs the menu loop until the user exits or the input ends
func runShell(p *util.Prompter, s *gradebookSession) error {
	for {
		p.Println(menu)
		choice, err := p.Ask("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = shellAdd(p, s.book)
		case "2":
			err = shellEdit(p, s.book)
		case "3":
			err = shellShow(p, s.book)
		case "4":
			err = writeAll(p.Out(), s.book)
		case "5":
			err = shellDelete(p, s.book)
		case "6":
			if err := s.save(); errors.Is(err, store.ErrValidationFailed) {
				p.Println(err)
				continue
			} else if err != nil {
				return err
			}
			p.Println("Data saved. Exiting.")
			return nil
		default:
			p.Println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// report prints the outcome of a mutation
func report(p *util.Prompter, err error, success string) {
	if err != nil {
		p.Println(err)
		return
	}
	p.Println(success)
}

// askStudent asks for a student id. courses is nil if the student does not exist.
func askStudent(p *util.Prompter, book transcript.IGradebook) (string, []transcript.CourseRecord, error) {
	id, err := p.Ask("Enter Student ID: ")
	if err != nil {
		return "", nil, err
	}
	courses, ok := book.Courses(id)
	if !ok {
		p.Println("Student ID not found.")
		return "", nil, nil
	}
	return id, courses, nil
}

func hasCourse(courses []transcript.CourseRecord, course string) bool {
	return slices.ContainsFunc(courses, func(c transcript.CourseRecord) bool { return c.Course == course })
}

func shellAdd(p *util.Prompter, book transcript.IGradebook) error {
	id, err := p.Ask("Enter Student ID: ")
	if err != nil {
		return err
	}
	course, err := p.Ask("Enter Course Name: ")
	if err != nil {
		return err
	}
	grade, err := p.Ask("Enter Grade: ")
	if err != nil {
		return err
	}
	report(p, book.AddCourse(id, course, grade), "Result added successfully.")
	return nil
}

func shellEdit(p *util.Prompter, book transcript.IGradebook) error {
	id, courses, err := askStudent(p, book)
	if err != nil || courses == nil {
		return err
	}
	course, err := p.Ask("Enter Course Name to Edit: ")
	if err != nil {
		return err
	}
	if !hasCourse(courses, course) {
		p.Println("Course not found.")
		return nil
	}
	grade, err := p.Ask("Enter New Grade for " + course + ": ")
	if err != nil {
		return err
	}
	report(p, book.EditCourse(id, course, grade), "Result updated successfully.")
	return nil
}

func shellShow(p *util.Prompter, book transcript.IGradebook) error {
	id, courses, err := askStudent(p, book)
	if err != nil || courses == nil {
		return err
	}
	return transcript.WriteStudent(p.Out(), book, id)
}

func shellDelete(p *util.Prompter, book transcript.IGradebook) error {
	id, courses, err := askStudent(p, book)
	if err != nil || courses == nil {
		return err
	}
	course, err := p.Ask("Enter Course Name to Delete: ")
	if err != nil {
		return err
	}
	if !hasCourse(courses, course) {
		p.Println("Course not found.")
		return nil
	}
	report(p, book.DeleteCourse(id, course), "Result deleted successfully.")
	return nil
}
