// Package common provides the configuration structure and the logging
// implementation shared by the transcript and exam tools.
//
// Key Components:
//
//   - Config: The resolved configuration of a dRec invocation (data directory,
//     store format, load policy, logging and metrics settings). Its String
//     method renders a sectioned overview used by `drec config`.
//
//   - Logger: Custom logging implementation plugged into Dragonboat's logger
//     facade. Packages obtain their logger with logger.GetLogger(name) and
//     InitLoggers installs the factory and the configured level for all of them.
//     Log lines are written to stderr so they never interleave with reports.
package common
