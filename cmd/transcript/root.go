package transcript

import (
	"github.com/ValentinKolb/dRec/cmd/util"
	"github.com/ValentinKolb/dRec/lib/common"
	"github.com/ValentinKolb/dRec/lib/transcript"
	"github.com/spf13/cobra"
)

// StoreName is the base name of the gradebook file in the data directory
const StoreName = "student_data"

var (
	// TranscriptCommands represents the transcript command group
	TranscriptCommands = &cobra.Command{
		Use:   "transcript",
		Short: "Academic transcript generator",
		Long:  `Keep course grades per student in the data directory and compute GPAs. Every command loads the gradebook, and commands that change it save it again.`,
	}
)

func init() {
	// Add subcommands
	TranscriptCommands.AddCommand(addCmd)
	TranscriptCommands.AddCommand(editCmd)
	TranscriptCommands.AddCommand(deleteCmd)
	TranscriptCommands.AddCommand(showCmd)
	TranscriptCommands.AddCommand(listCmd)
	TranscriptCommands.AddCommand(reportCmd)
	TranscriptCommands.AddCommand(exportCmd)
	TranscriptCommands.AddCommand(shellCmd)

	reportCmd.Flags().StringP("output", "o", "transcript.txt", util.WrapString("File the transcript is written to"))
	exportCmd.Flags().StringP("output", "o", "transcript.xlsx", util.WrapString("File the workbook is written to"))
}

// gradebookSession bundles a loaded gradebook with where it came from
type gradebookSession struct {
	conf *common.Config
	path string
	book transcript.IGradebook
}

// openGradebook loads the gradebook configured for the command
func openGradebook() (*gradebookSession, error) {
	conf, err := util.GetConfig()
	if err != nil {
		return nil, err
	}
	policy, err := transcript.ParseGradePolicy(conf.GradePolicy)
	if err != nil {
		return nil, err
	}

	path := conf.StorePath(StoreName)
	book, _, err := transcript.Load(path, conf.Format, policy)
	if err != nil {
		return nil, err
	}
	return &gradebookSession{conf: conf, path: path, book: book}, nil
}

// save writes the gradebook back to where it was loaded from
func (s *gradebookSession) save() error {
	return transcript.Save(s.path, s.conf.Format, s.book)
}
