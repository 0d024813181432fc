package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ChristopherPtak/SimpleSAT/internal/cli"
	"github.com/ChristopherPtak/SimpleSAT/internal/dimacs"
	"github.com/ChristopherPtak/SimpleSAT/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run implements the dispatch of original_source/src/main.c's main: parse
// options, act on them, and map any error to a one-line stderr diagnostic
// and a nonzero exit code. A *cli.UsageError additionally gets the
// "Try --help for usage" hint main.c prints for ERROR_INVALID_USAGE.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", version.Name, err)
		fmt.Fprintln(stderr, "Try --help for usage")
		return 1
	}

	switch opts.Action {
	case cli.ActionShowHelp:
		cli.Usage(stdout)
		return 0
	case cli.ActionShowVersion:
		fmt.Fprint(stdout, cli.VersionString())
		return 0
	default:
		return solveProblem(opts, stdout, stderr)
	}
}

// solveProblem mirrors main.c's solve_problem: read the instance, run the
// search, and write the solution, reading from stdin and writing to stdout
// when no file was given.
func solveProblem(opts *cli.Options, stdout, stderr io.Writer) int {
	in := io.Reader(os.Stdin)
	if opts.InFile != "" {
		f, err := os.Open(opts.InFile)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s: %s\n", version.Name, opts.InFile, err)
			return 1
		}
		defer f.Close()
		in = f
	}

	inst, err := dimacs.ReadInstance(in)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", version.Name, err)
		return 1
	}

	s := inst.NewSolver()
	s.Solve()

	out := io.Writer(stdout)
	if opts.OutFile != "" {
		f, err := os.Create(opts.OutFile)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s: %s\n", version.Name, opts.OutFile, err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := dimacs.WriteSolution(out, s); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", version.Name, err)
		return 1
	}
	return 0
}
