package common

import (
	"fmt"
	"path/filepath"
	"strings"
)

// --------------------------------------------------------------------------
// Store formats
// --------------------------------------------------------------------------

// StoreFormat names the on-disk representation of a record store
type StoreFormat string

const (
	// FormatLines is the comma separated id,course,grade format of the transcript tool
	FormatLines StoreFormat = "lines"
	FormatJSON  StoreFormat = "json"
	FormatYAML  StoreFormat = "yaml"
	FormatGOB   StoreFormat = "gob"
)

// Ext returns the file extension used for the format
func (f StoreFormat) Ext() string {
	switch f {
	case FormatLines:
		return "txt"
	default:
		return string(f)
	}
}

// --------------------------------------------------------------------------
// Configuration struct
// --------------------------------------------------------------------------

// Config holds all configuration parameters shared by the dRec tools.
type Config struct {
	// DataDir is the directory holding the record store files
	DataDir string

	// Format is the on-disk format of the record stores
	Format StoreFormat

	// GradePolicy decides what happens to transcript lines with an unparseable grade ("default" or "reject")
	GradePolicy string

	// MetricsFile receives a Prometheus text dump of the counters on exit (empty = disabled)
	MetricsFile string

	// Logging configuration
	LogLevel string
}

// StorePath returns the path of the store file with the given base name
func (c *Config) StorePath(name string) string {
	return filepath.Join(c.DataDir, name+"."+c.Format.Ext())
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// Storage
	addSection("Storage")
	addField("Data Directory", c.DataDir)
	addField("Format", string(c.Format))
	addField("Grade Policy", c.GradePolicy)

	// Observability
	addSection("Observability")
	addField("Log Level", c.LogLevel)
	metricsFile := c.MetricsFile
	if metricsFile == "" {
		metricsFile = "(disabled)"
	}
	addField("Metrics File", metricsFile)

	return sb.String()
}
