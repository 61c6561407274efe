// Package dispatch routes a raw invocation to the catalog request boundary.
//
// The dispatcher owns the first positional token: it maps the sub-command
// word to its grammar entry, hands the remaining tokens to the parser, and
// forwards the validated command to an Executor. Parse failures stop the
// invocation before the executor is ever touched, so no network interaction
// happens for invalid input.
package dispatch

import (
	"github.com/vhsjwp01/consul-client/internal/grammar"
	"github.com/vhsjwp01/consul-client/internal/parse"
)

// Executor is the boundary to the request builder and catalog backend. It
// receives one fully validated command and returns the raw response payload
// (empty for write operations) or a transport/build error.
type Executor interface {
	Execute(cmd *parse.ParsedCommand) (string, error)
}

// Resolve maps the leading token case-sensitively to its command. Fails with
// an UnknownCommand error for anything else, including the empty string.
func Resolve(token string) (grammar.Command, error) {
	switch token {
	case "query":
		return grammar.Query, nil
	case "register":
		return grammar.Register, nil
	case "deregister":
		return grammar.Deregister, nil
	default:
		return 0, &parse.Error{Kind: parse.UnknownCommand, Command: token}
	}
}

// Dispatch validates a complete argument vector (sub-command word first) and
// forwards the parsed command to the executor, relaying its result.
func Dispatch(args []string, exec Executor) (string, error) {
	if len(args) == 0 {
		return "", &parse.Error{Kind: parse.UnknownCommand}
	}

	kind, err := Resolve(args[0])
	if err != nil {
		return "", err
	}

	return Run(kind, args[1:], exec)
}

// Run parses the tokens for an already selected command and forwards the
// result to the executor. Used by the CLI sub-commands, which resolve the
// command word through cobra before the strict grammar takes over.
func Run(kind grammar.Command, tokens []string, exec Executor) (string, error) {
	cmd, err := parse.Parse(kind, tokens)
	if err != nil {
		return "", err
	}

	return exec.Execute(cmd)
}
