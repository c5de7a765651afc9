// Package Cli contains the command-line plumbing shared by the gridstat binaries:
// option parsing and logging setup.
package Cli

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/thought-machine/go-flags"
)

// ErrUsage is wrapped by errors that are the caller's fault rather than the environment's.
var ErrUsage = errors.New("usage")

// ParseFlags parses args into data, which must be a pointer to a struct carrying go-flags
// tags. A string field named Usage on that struct becomes the long description shown in
// the help output. Options must come before the first positional argument; everything from
// there on is positional, so values such as -1 reach positional fields unchanged.
// Returns the parser so callers can print help themselves.
func ParseFlags(appname string, data interface{}, args []string) (*flags.Parser, error) {
	parser := flags.NewParser(data, flags.HelpFlag|flags.PassDoubleDash|flags.PassAfterNonOption)
	parser.Name = appname
	if v := reflect.ValueOf(data).Elem().FieldByName("Usage"); v.IsValid() && v.Kind() == reflect.String {
		parser.LongDescription = v.String()
	}
	extra, err := parser.ParseArgs(args)
	if err != nil {
		return parser, err
	}
	if len(extra) > 0 {
		return parser, fmt.Errorf("%w: unexpected arguments %q", ErrUsage, extra)
	}
	return parser, nil
}

// ParseFlagsOrDie parses os.Args into data. It prints help and exits 0 for --help, and
// prints help plus the error and exits 2 for anything else that fails.
func ParseFlagsOrDie(appname string, data interface{}) {
	parser, err := ParseFlags(appname, data, os.Args[1:])
	if err == nil {
		return
	}
	var ferr *flags.Error
	if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
		fmt.Println(err)
		os.Exit(0)
	}
	parser.WriteHelp(os.Stderr)
	fmt.Fprintf(os.Stderr, "\n%s\n", err)
	os.Exit(2)
}

// A Duration is a time.Duration that go-flags can parse from strings like "5s".
type Duration time.Duration

// UnmarshalFlag implements the flags.Unmarshaler interface.
func (d *Duration) UnmarshalFlag(in string) error {
	dur, err := time.ParseDuration(in)
	*d = Duration(dur)
	return err
}
