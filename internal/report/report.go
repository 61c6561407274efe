// Package report translates invocation outcomes into process exit codes and
// user-facing diagnostics.
//
// Every failure, whether argument validation or transport, maps to the same
// exit status and a single-line message on the error stream. The message
// format ("ERROR: <description> ... processing halted", blank lines around
// it) is a long-standing convention of this tool that downstream scripts
// grep for, so it is kept stable here.
package report

import (
	"fmt"
	"io"
)

const (
	// ExitOK is returned when the command fully parsed, the request was
	// issued, and the agent accepted it.
	ExitOK = 0

	// ExitFailure is returned for every validation or transport error.
	// Uniform on purpose: callers branch on success/failure, not error kind.
	ExitFailure = 1
)

// Failure writes the failure diagnostic for err to w and returns the exit
// status for the process.
func Failure(w io.Writer, err error) int {
	fmt.Fprintf(w, "\nERROR: %v ... processing halted\n\n", err)
	return ExitFailure
}
