package util

import (
	"errors"
	"fmt"
	"github.com/ValentinKolb/dRec/lib/common"
	"github.com/ValentinKolb/dRec/lib/transcript"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// ConfigName is the base name of the optional config file in the working directory
	ConfigName = "drec"
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupStoreFlags adds the flags shared by all tools to a command
func SetupStoreFlags(cmd *cobra.Command) {
	key := "data-dir"
	cmd.PersistentFlags().String(key, ".", WrapString("Directory holding the record store files"))

	key = "format"
	cmd.PersistentFlags().String(key, string(common.FormatLines), WrapString("On-disk format of the record stores (lines, json, yaml, gob). The exam tool uses json instead of lines"))

	key = "grade-policy"
	cmd.PersistentFlags().String(key, string(transcript.PolicyDefault), WrapString("What to do with transcript lines whose grade is not a number: default (use 0.0) or reject (skip the line)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))

	key = "metrics-file"
	cmd.PersistentFlags().String(key, "", WrapString("If set, the mutation counters are written to this file in the Prometheus text format on exit"))
}

// InitConfig loads .env files and sets up environment variable lookup.
// Variables have the form DREC_<FLAG> (e.g. DREC_DATA_DIR=./data).
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("drec")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// ReadConfigFile reads drec.yaml from the working directory if it exists.
// Flags and environment variables take precedence over the file.
func ReadConfigFile() error {
	viper.SetConfigName(ConfigName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// GetConfig reads and validates the configuration from viper
func GetConfig() (*common.Config, error) {
	conf := &common.Config{
		DataDir:     viper.GetString("data-dir"),
		Format:      common.StoreFormat(strings.ToLower(viper.GetString("format"))),
		GradePolicy: viper.GetString("grade-policy"),
		MetricsFile: viper.GetString("metrics-file"),
		LogLevel:    viper.GetString("log-level"),
	}

	switch conf.Format {
	case common.FormatLines, common.FormatJSON, common.FormatYAML, common.FormatGOB:
	default:
		return nil, fmt.Errorf("invalid format %s (expected one of lines, json, yaml, gob)", conf.Format)
	}
	if _, err := transcript.ParseGradePolicy(conf.GradePolicy); err != nil {
		return nil, err
	}
	if _, err := common.ParseLogLevel(conf.LogLevel); err != nil {
		return nil, err
	}
	return conf, nil
}
