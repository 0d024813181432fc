// Package cli parses SimpleSAT's command-line options, grounded on
// original_source/src/options.c's parse_options but expressed with
// flag.FlagSet rather than hand-rolled argv scanning.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/ChristopherPtak/SimpleSAT/version"
)

// Action names which of the three things main should do, mirroring
// original_source/src/options.h's Action enum.
type Action int

const (
	ActionSolve Action = iota
	ActionShowHelp
	ActionShowVersion
)

// Options is the result of a successful Parse.
type Options struct {
	// InFile is the instance file to read, or "" to read from stdin.
	InFile string
	// OutFile is the file to write the solution to, or "" to write to
	// stdout.
	OutFile string
	Action  Action
}

// UsageError reports a command-line misuse: an unknown flag, a missing
// argument to -o, or more than one positional filename. It corresponds to
// original_source/src/error.h's ERROR_INVALID_USAGE.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// Parse parses args (typically os.Args[1:]) into an Options value.
func Parse(args []string) (*Options, error) {
	fs := flag.NewFlagSet(version.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	help := fs.Bool("help", false, "Show this help text")
	ver := fs.Bool("version", false, "Show the program version")
	outFile := fs.String("o", "", "Set the output file")

	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{Msg: err.Error()}
	}

	opts := &Options{OutFile: *outFile}

	switch {
	case *help:
		opts.Action = ActionShowHelp
		return opts, nil
	case *ver:
		opts.Action = ActionShowVersion
		return opts, nil
	}
	opts.Action = ActionSolve

	switch fs.NArg() {
	case 0:
		// Read from stdin.
	case 1:
		opts.InFile = fs.Arg(0)
	default:
		return nil, &UsageError{Msg: fmt.Sprintf("%s: extra argument", fs.Arg(1))}
	}

	return opts, nil
}

// Usage writes the --help text to w, matching original_source/src/options.c's
// show_help.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options] <file>\n", version.Name)
	fmt.Fprint(w, "Options:\n")
	fmt.Fprint(w, "  --help     Show this help text\n")
	fmt.Fprint(w, "  --version  Show the program version\n")
	fmt.Fprint(w, "  -o <file>  Set the output file\n")
}

// VersionString returns the --version output, matching
// original_source/src/options.c's show_version.
func VersionString() string {
	return fmt.Sprintf("%s %s\n", version.Fancy, version.Version)
}
