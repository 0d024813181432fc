// Package version holds the build identification strings shown by
// --version and used as the diagnostic-message prefix, mirroring
// original_source/src/constants.h's PROGRAM_NAME / PROGRAM_NAME_FANCY /
// PROGRAM_VERSION.
package version

const (
	// Name is the argv[0]-style program name used to prefix diagnostics.
	Name = "simplesat"

	// Fancy is the human-readable name shown by --version and in the
	// solution file's "Generated by" comment.
	Fancy = "SimpleSAT"

	// Version is the current release identifier.
	Version = "1.0.0"
)
