package common

import (
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"io"
	"log"
	"os"
	"strings"
)

// --------------------------------------------------------------------------
// Levels
// --------------------------------------------------------------------------

// logLevels maps the accepted log-level values to dragonboat levels
var logLevels = map[string]logger.LogLevel{
	"debug":   logger.DEBUG,
	"info":    logger.INFO,
	"warn":    logger.WARNING,
	"warning": logger.WARNING,
	"error":   logger.ERROR,
}

// levelLabels is the column printed in front of every message
var levelLabels = map[logger.LogLevel]string{
	logger.DEBUG:   "DEBUG",
	logger.INFO:    "INFO",
	logger.WARNING: "WARN",
	logger.ERROR:   "ERROR",
}

// ParseLogLevel converts a log-level value (debug, info, warn, error) to a dragonboat level
func ParseLogLevel(level string) (logger.LogLevel, error) {
	l, ok := logLevels[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return 0, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}
	return l, nil
}

// --------------------------------------------------------------------------
// Package logger
// --------------------------------------------------------------------------

// pkgLogger writes "LEVEL | pkg | message" lines for one package
type pkgLogger struct {
	name  string
	level logger.LogLevel
	out   *log.Logger
}

func (l *pkgLogger) SetLevel(level logger.LogLevel) { l.level = level }

func (l *pkgLogger) Debugf(format string, args ...interface{}) {
	l.logf(logger.DEBUG, format, args...)
}

func (l *pkgLogger) Infof(format string, args ...interface{}) {
	l.logf(logger.INFO, format, args...)
}

func (l *pkgLogger) Warningf(format string, args ...interface{}) {
	l.logf(logger.WARNING, format, args...)
}

func (l *pkgLogger) Errorf(format string, args ...interface{}) {
	l.logf(logger.ERROR, format, args...)
}

// Panicf panics regardless of the level
func (l *pkgLogger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.out.Printf("%-5s | %-10s | %s", "PANIC", l.name, msg)
	panic(msg)
}

func (l *pkgLogger) logf(level logger.LogLevel, format string, args ...interface{}) {
	if l.level < level {
		return
	}
	l.out.Printf("%-5s | %-10s | %s", levelLabels[level], l.name, fmt.Sprintf(format, args...))
}

// --------------------------------------------------------------------------
// Factory
// --------------------------------------------------------------------------

// logOutput is where all loggers write to. Reports go to stdout.
var logOutput io.Writer = os.Stderr

// CreateLogger is the logger.Factory installed by InitLoggers
func CreateLogger(pkgName string) logger.ILogger {
	return &pkgLogger{
		name:  pkgName,
		level: logger.WARNING,
		out:   log.New(logOutput, "", log.Ldate|log.Ltime),
	}
}

// LoggerNames lists every package logger used by dRec
var LoggerNames = []string{"cmd", "store", "transcript", "exam"}

// InitLoggers installs CreateLogger and sets the level of every dRec logger
func InitLoggers(config Config) error {
	level, err := ParseLogLevel(config.LogLevel)
	if err != nil {
		return err
	}

	logger.SetLoggerFactory(CreateLogger)
	for _, name := range LoggerNames {
		logger.GetLogger(name).SetLevel(level)
	}
	return nil
}
