package dimacs

import (
	"fmt"
	"io"

	"github.com/ChristopherPtak/SimpleSAT/internal/sat"
	"github.com/ChristopherPtak/SimpleSAT/version"
)

// maxLineWidth is the soft wrap column for "v" lines, matching
// original_source/src/format.c's column-79 wrap.
const maxLineWidth = 79

// WriteSolution writes s's verdict and, if satisfiable, its model, to w in
// DIMACS output form: a generator-identification comment, a three-line
// performance-statistics comment block, the "s" line, and — only when
// satisfiable — "v" lines listing the signed literal of every assigned
// variable, soft-wrapped at column 79 and terminated by a "0" literal.
// Variables left unassigned by the search are omitted.
//
// Grounded on original_source/src/format.c's write_solution.
func WriteSolution(w io.Writer, s *sat.Solver) error {
	if err := writeHeader(w, s); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "s %s\n", s.Solution); err != nil {
		return err
	}
	if s.Solution == sat.Satisfiable {
		if err := writeModel(w, s); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(w io.Writer, s *sat.Solver) error {
	_, err := fmt.Fprintf(w,
		"c Generated by %s %s\n"+
			"c\n"+
			"c Performance statistics\n"+
			"c ----------------------\n"+
			"c Elapsed time:       %f (s)\n"+
			"c Attempted branches: %d\n"+
			"c Unit propagations:  %d\n"+
			"c\n",
		version.Fancy, version.Version,
		s.Elapsed().Seconds(),
		s.TotalBranches,
		s.TotalUnitProps,
	)
	return err
}

func writeModel(w io.Writer, s *sat.Solver) error {
	column := 1
	if _, err := io.WriteString(w, "v"); err != nil {
		return err
	}

	for v := 0; v < s.NumVars(); v++ {
		if !s.IsAssigned(v) {
			continue
		}

		n := v + 1
		if !s.Model(v) {
			n = -n
		}
		token := fmt.Sprintf(" %d", n)

		if column+len(token) > maxLineWidth {
			if _, err := io.WriteString(w, "\nv"); err != nil {
				return err
			}
			column = 1
		}
		if _, err := io.WriteString(w, token); err != nil {
			return err
		}
		column += len(token)
	}

	terminator := " 0\n"
	if column+len(terminator)-1 > maxLineWidth {
		terminator = "\nv 0\n"
	}
	_, err := io.WriteString(w, terminator)
	return err
}
