package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, &stdout, &stderr)

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Usage:") {
		t.Errorf("stdout = %q, want it to contain %q", stdout.String(), "Usage:")
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--version"}, &stdout, &stderr)

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "SimpleSAT") {
		t.Errorf("stdout = %q, want it to contain %q", stdout.String(), "SimpleSAT")
	}
}

func TestRun_UsageErrorPrintsHint(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"one.cnf", "two.cnf"}, &stdout, &stderr)

	if code == 0 {
		t.Errorf("exit code = %d, want nonzero", code)
	}
	if !strings.Contains(stderr.String(), "Try --help for usage") {
		t.Errorf("stderr = %q, want it to contain the usage hint", stderr.String())
	}
}

func TestRun_MissingFileIsAFileAccessError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "does-not-exist.cnf")}, &stdout, &stderr)

	if code == 0 {
		t.Errorf("exit code = %d, want nonzero", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestRun_SolvesAndWritesToFile(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "unit.cnf")
	outFile := filepath.Join(dir, "unit.sol")

	writeFile(t, inFile, "p cnf 1 1\n1 0\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", outFile, inFile}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}

	got := readFile(t, outFile)
	if !strings.Contains(got, "s SATISFIABLE") {
		t.Errorf("solution file = %q, want it to contain %q", got, "s SATISFIABLE")
	}
	if !strings.Contains(got, "v 1 0") {
		t.Errorf("solution file = %q, want it to contain the model line", got)
	}
}

func TestRun_MalformedInstanceIsAFormatError(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "broken.cnf")
	writeFile(t, inFile, "not a dimacs file")

	var stdout, stderr bytes.Buffer
	code := run([]string{inFile}, &stdout, &stderr)

	if code == 0 {
		t.Errorf("exit code = %d, want nonzero", code)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write %s: %s", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read %s: %s", path, err)
	}
	return string(content)
}
