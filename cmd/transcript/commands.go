package transcript

import (
	"fmt"
	"github.com/ValentinKolb/dRec/lib/store/filestore"
	"github.com/ValentinKolb/dRec/lib/transcript"
	"github.com/spf13/cobra"
	"io"
)

var (
	addCmd = &cobra.Command{
		Use:   "add [student-id] [course] [grade]",
		Short: "Adds a course result to a student",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, "Result added successfully.", func(book transcript.IGradebook) error {
				return book.AddCourse(args[0], args[1], args[2])
			})
		},
	}
	editCmd = &cobra.Command{
		Use:   "edit [student-id] [course] [grade]",
		Short: "Changes the grade of the first result of a course",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, "Result updated successfully.", func(book transcript.IGradebook) error {
				return book.EditCourse(args[0], args[1], args[2])
			})
		},
	}
	deleteCmd = &cobra.Command{
		Use:   "delete [student-id] [course]",
		Short: "Deletes the first result of a course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, "Result deleted successfully.", func(book transcript.IGradebook) error {
				return book.DeleteCourse(args[0], args[1])
			})
		},
	}
	showCmd = &cobra.Command{
		Use:   "show [student-id]",
		Short: "Shows the results and GPA of one student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openGradebook()
			if err != nil {
				return err
			}
			return transcript.WriteStudent(cmd.OutOrStdout(), s.book, args[0])
		},
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Shows the results and GPA of all students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openGradebook()
			if err != nil {
				return err
			}
			return writeAll(cmd.OutOrStdout(), s.book)
		},
	}
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Writes the transcript of all students to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			s, err := openGradebook()
			if err != nil {
				return err
			}
			if err := filestore.Write(output, func(w io.Writer) error {
				return transcript.WriteTranscript(w, s.book)
			}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Transcript has been generated in '%s'.\n", output)
			return nil
		},
	}
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Exports all results and GPAs as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			s, err := openGradebook()
			if err != nil {
				return err
			}
			if err := filestore.Write(output, func(w io.Writer) error {
				return transcript.ExportXLSX(w, s.book)
			}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Workbook has been exported to '%s'.\n", output)
			return nil
		},
	}
)

// mutate loads the gradebook, applies op and saves the result if op succeeded
func mutate(cmd *cobra.Command, success string, op func(book transcript.IGradebook) error) error {
	s, err := openGradebook()
	if err != nil {
		return err
	}
	if err := op(s.book); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), success)
	return nil
}

// writeAll prints every transcript block, or a notice for an empty gradebook
func writeAll(w io.Writer, book transcript.IGradebook) error {
	if book.Len() == 0 {
		_, err := fmt.Fprintln(w, "No data available.")
		return err
	}
	return transcript.WriteTranscript(w, book)
}
