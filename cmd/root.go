package cmd

import (
	"fmt"
	"github.com/ValentinKolb/dRec/cmd/exam"
	"github.com/ValentinKolb/dRec/cmd/transcript"
	"github.com/ValentinKolb/dRec/cmd/util"
	"github.com/ValentinKolb/dRec/lib/common"
	"github.com/ValentinKolb/dRec/lib/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

const (
	Version = "1.0.0"
)

var plog = logger.GetLogger("cmd")

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "drec",
		Short: "academic records toolkit",
		Long: fmt.Sprintf(`dRec (v%s)

Command line tools for academic records: a transcript generator that keeps
course grades per student and computes GPAs, and an online exam system with
admin and student accounts, multiple choice exams and ranked results.`, Version),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dRec",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dRec v%s\n", Version)
		},
	}
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long:  `Print the configuration after applying drec.yaml, environment variables (DREC_<FLAG>, e.g. DREC_DATA_DIR=./data) and command line flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := util.GetConfig()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), conf.String())
			return nil
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)
	cobra.OnFinalize(writeMetrics)

	// Add Commands
	RootCmd.AddCommand(transcript.TranscriptCommands)
	RootCmd.AddCommand(exam.ExamCommands)
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(configCmd)

	// Add Flags
	util.SetupStoreFlags(RootCmd)
}

// setup binds the flags, validates the configuration and initializes the loggers
func setup(cmd *cobra.Command, _ []string) error {
	if err := util.ReadConfigFile(); err != nil {
		return err
	}
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	conf, err := util.GetConfig()
	if err != nil {
		return err
	}
	if err := common.InitLoggers(*conf); err != nil {
		return err
	}
	plog.Debugf("configuration: %s", conf)
	return nil
}

// writeMetrics dumps the counters if a metrics file is configured
func writeMetrics() {
	path := viper.GetString("metrics-file")
	if path == "" {
		return
	}
	if err := metrics.WriteFile(path); err != nil {
		plog.Errorf("failed to write metrics to %s: %v", path, err)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
