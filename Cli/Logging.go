package Cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/op/go-logging.v1"
)

// A Verbosity is used as a flag to define logging verbosity.
// It accepts level names (error, warning, notice, info, debug) or their numbers.
type Verbosity logging.Level

// UnmarshalFlag implements the flags.Unmarshaler interface.
func (v *Verbosity) UnmarshalFlag(in string) error {
	if i, err := strconv.Atoi(in); err == nil {
		if i < int(logging.CRITICAL) || i > int(logging.DEBUG) {
			return fmt.Errorf("%w: verbosity %d out of range [%d, %d]", ErrUsage, i, logging.CRITICAL, logging.DEBUG)
		}
		*v = Verbosity(i)
		return nil
	}
	level, err := logging.LogLevel(strings.ToUpper(in))
	if err != nil {
		return fmt.Errorf("%w: unknown verbosity %q", ErrUsage, in)
	}
	*v = Verbosity(level)
	return nil
}

const logFormat = `%{time:15:04:05.000} %{level:7s}: %{message}`

// InitLogging sends warnings and errors to stderr and everything down to verbosity to
// stdout, so progress and diagnostics can be redirected separately.
func InitLogging(verbosity Verbosity) {
	logging.SetBackend(newBackends(os.Stdout, os.Stderr, verbosity)...)
}

func newBackends(info, diag io.Writer, verbosity Verbosity) []logging.Backend {
	formatter := logging.MustStringFormatter(logFormat)
	diagnostics := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(diag, "", 0), formatter))
	diagnostics.SetLevel(min(logging.WARNING, logging.Level(verbosity)), "")
	progress := logging.AddModuleLevel(progressOnly{logging.NewBackendFormatter(logging.NewLogBackend(info, "", 0), formatter)})
	progress.SetLevel(logging.Level(verbosity), "")
	return []logging.Backend{diagnostics, progress}
}

// progressOnly drops everything that goes to the diagnostics backend.
type progressOnly struct {
	logging.Backend
}

func (p progressOnly) Log(level logging.Level, calldepth int, rec *logging.Record) error {
	if level <= logging.WARNING {
		return nil
	}
	return p.Backend.Log(level, calldepth+1, rec)
}
