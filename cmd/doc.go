// Package cmd implements the command-line interface of dRec. It provides a
// hierarchical command structure with one command group per tool.
//
// The package is organized into several subpackages:
//
//   - transcript: Commands for the academic transcript generator (add, edit, delete, show, report, shell, ...)
//   - exam: Commands for the online exam system (sign-up, exams, questions, taking exams, results, shell, ...)
//   - util: Shared utilities for configuration, flags and interactive prompts (internal use)
//
// Configuration is read from command line flags, DREC_* environment variables
// (also from .env and .env.local) and an optional drec.yaml in the working
// directory, in that order of precedence.
//
// See drec -help for a list of all commands.
package cmd
