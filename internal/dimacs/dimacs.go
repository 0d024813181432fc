// Package dimacs reads and writes the DIMACS CNF format used by SAT solver
// input and output files.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ChristopherPtak/SimpleSAT/internal/sat"
)

// FormatError reports a malformed DIMACS document. It wraps the underlying
// cause, if any, so callers can use errors.Is/errors.As on it while main
// still reduces every FormatError to a single stderr line.
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErrorf(format string, args ...any) error {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// Instance is a parsed CNF formula: its variable and clause counts, the
// clauses themselves in signed-int DIMACS form, and any leading comment
// lines.
type Instance struct {
	NumVars    int
	NumClauses int
	Clauses    [][]int
	Comments   []string
}

// ReadInstance reads a DIMACS CNF document from r.
//
// Grounded on original_source/src/format.c's read_problem: leading comment
// lines are collected, the problem line is parsed and validated
// (p cnf <vars> <clauses>, nothing but whitespace after it), then exactly
// NumClauses zero-terminated clauses are read as a flat stream of
// whitespace-separated integers spanning line boundaries — matching the
// original's fscanf(" %d") loop, comments are not recognized once clause
// reading has started. Anything but whitespace after the last clause's
// terminating 0 is a format error.
func ReadInstance(r io.Reader) (*Instance, error) {
	br := bufio.NewReader(r)

	inst := &Instance{}
	line, err := readProblemLine(br, inst)
	if err != nil {
		return nil, err
	}

	if err := parseProblemLine(inst, line); err != nil {
		return nil, err
	}

	inst.Clauses = make([][]int, 0, inst.NumClauses)
	tok := newTokenizer(br)
	for i := 0; i < inst.NumClauses; i++ {
		clause, err := readClause(tok)
		if err != nil {
			return nil, err
		}
		inst.Clauses = append(inst.Clauses, clause)
	}

	if err := expectEndOfInput(tok); err != nil {
		return nil, err
	}

	return inst, nil
}

// readProblemLine skips leading 'c' comment lines and returns the first
// line that is not one, recording the comments seen along the way.
func readProblemLine(br *bufio.Reader, inst *Instance) (string, error) {
	for {
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return "", formatErrorf("expected problem line")
		}
		line = strings.TrimRight(line, "\r\n")

		if strings.HasPrefix(line, "c") {
			inst.Comments = append(inst.Comments, line)
			if err == io.EOF {
				return "", formatErrorf("expected problem line")
			}
			continue
		}
		return line, nil
	}
}

func parseProblemLine(inst *Instance, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" {
		return formatErrorf("expected problem line")
	}
	if fields[1] != "cnf" {
		return formatErrorf("instance of type %q is not supported", fields[1])
	}

	nVars, err := strconv.Atoi(fields[2])
	if err != nil {
		return formatErrorf("invalid problem line")
	}
	nClauses, err := strconv.Atoi(fields[3])
	if err != nil {
		return formatErrorf("invalid problem line")
	}
	if nVars <= 0 {
		return formatErrorf("invalid number of variables")
	}
	if nClauses <= 0 {
		return formatErrorf("invalid number of clauses")
	}

	inst.NumVars = nVars
	inst.NumClauses = nClauses
	return nil
}

// tokenizer scans a stream of whitespace-separated integer tokens without
// regard to line boundaries, as original_source's fscanf(" %d") loop does.
type tokenizer struct {
	br  *bufio.Reader
	eof bool
}

func newTokenizer(br *bufio.Reader) *tokenizer {
	return &tokenizer{br: br}
}

// next returns the next integer token, or ok == false at end of input.
func (t *tokenizer) next() (repr int, ok bool, err error) {
	for {
		b, err := t.br.ReadByte()
		if err == io.EOF {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		if !isSpace(b) {
			t.br.UnreadByte()
			break
		}
	}

	var sb strings.Builder
	for {
		b, err := t.br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, false, err
		}
		if isSpace(b) {
			break
		}
		sb.WriteByte(b)
	}

	repr, convErr := strconv.Atoi(sb.String())
	if convErr != nil {
		return 0, false, formatErrorf("expected an integer, found %q", sb.String())
	}
	return repr, true, nil
}

// remainderIsBlank reports whether everything left in the underlying reader
// is whitespace.
func (t *tokenizer) remainderIsBlank() (bool, error) {
	for {
		b, err := t.br.ReadByte()
		if err == io.EOF {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		if !isSpace(b) {
			return false, nil
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func readClause(tok *tokenizer) ([]int, error) {
	var clause []int
	for {
		repr, ok, err := tok.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, formatErrorf("expected more clauses")
		}
		if repr == 0 {
			return clause, nil
		}
		clause = append(clause, repr)
	}
}

func expectEndOfInput(tok *tokenizer) error {
	blank, err := tok.remainderIsBlank()
	if err != nil {
		return err
	}
	if !blank {
		return formatErrorf("expected end of input")
	}
	return nil
}

// NewSolver builds a sat.Solver from the instance, adding every literal of
// every clause via sat.Solver.AddLiteralToClause.
func (inst *Instance) NewSolver() *sat.Solver {
	s := sat.NewSolver(inst.NumVars, len(inst.Clauses))
	for i, clause := range inst.Clauses {
		for _, repr := range clause {
			s.AddLiteralToClause(i, sat.LitFromInt(repr))
		}
	}
	return s
}
