package exam

import (
	"fmt"
	"github.com/ValentinKolb/dRec/cmd/util"
	"github.com/ValentinKolb/dRec/lib/common"
	"github.com/ValentinKolb/dRec/lib/exam"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

var (
	// ExamCommands represents the exam command group
	ExamCommands = &cobra.Command{
		Use:   "exam",
		Short: "Online exam system",
		Long: `Admins author multiple choice exams for a department, students of that department take them and admins view the ranked results.

Commands acting on behalf of an account need --user. The password is read from DREC_PASSWORD or prompted for.`,
	}
)

func init() {
	ExamCommands.PersistentFlags().StringP("user", "u", "", util.WrapString("Username of the admin or student account running the command"))

	// Add subcommands
	ExamCommands.AddCommand(signupAdminCmd)
	ExamCommands.AddCommand(signupStudentCmd)
	ExamCommands.AddCommand(examAddCmd)
	ExamCommands.AddCommand(examDeleteCmd)
	ExamCommands.AddCommand(examListCmd)
	ExamCommands.AddCommand(questionAddCmd)
	ExamCommands.AddCommand(questionEditCmd)
	ExamCommands.AddCommand(questionListCmd)
	ExamCommands.AddCommand(availableCmd)
	ExamCommands.AddCommand(takeCmd)
	ExamCommands.AddCommand(resultsCmd)
	ExamCommands.AddCommand(myResultsCmd)
	ExamCommands.AddCommand(exportCmd)
	ExamCommands.AddCommand(shellCmd)

	exportCmd.Flags().StringP("output", "o", "results.xlsx", util.WrapString("File the workbook is written to"))
}

// session bundles the loaded system with its configuration and the prompter of the command
type session struct {
	conf   *common.Config
	sys    *exam.System
	prompt *util.Prompter
}

// openSystem loads all exam stores configured for the command
func openSystem(cmd *cobra.Command) (*session, error) {
	conf, err := util.GetConfig()
	if err != nil {
		return nil, err
	}
	sys, err := exam.Load(conf)
	if err != nil {
		return nil, err
	}
	return &session{
		conf:   conf,
		sys:    sys,
		prompt: util.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
	}, nil
}

// save writes the given store files (all if none are given)
func (s *session) save(files ...exam.StoreFile) error {
	return s.sys.Save(s.conf, files...)
}

// credentials returns the --user flag and the password from DREC_PASSWORD or a prompt
func (s *session) credentials() (string, string, error) {
	user := strings.TrimSpace(viper.GetString("user"))
	if user == "" {
		return "", "", fmt.Errorf("--user is required for this command")
	}
	if pwd := viper.GetString("password"); pwd != "" {
		return user, pwd, nil
	}
	pwd, err := s.prompt.AskPassword("Enter password: ")
	return user, pwd, err
}

// admin logs in the admin given by --user
func (s *session) admin() (exam.AdminAccount, error) {
	user, pwd, err := s.credentials()
	if err != nil {
		return exam.AdminAccount{}, err
	}
	return s.sys.LoginAdmin(user, pwd)
}

// student logs in the student given by --user
func (s *session) student() (exam.StudentAccount, error) {
	user, pwd, err := s.credentials()
	if err != nil {
		return exam.StudentAccount{}, err
	}
	return s.sys.LoginStudent(user, pwd)
}

// splitOptions splits a comma separated option list and trims every option
func splitOptions(s string) []string {
	options := strings.Split(strings.TrimSpace(s), ",")
	for i := range options {
		options[i] = strings.TrimSpace(options[i])
	}
	return options
}
