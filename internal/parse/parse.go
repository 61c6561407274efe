// Package parse validates raw command-line tokens against the consulctl
// grammar and produces structured, immutable command records.
//
// The parser is deliberately strict: tokens are consumed left-to-right in
// --flag value pairs with no reordering, no lookahead beyond one token, and
// no recovery. The first invalid token terminates the parse with a typed
// error and no partial result. Repeated flags are rejected rather than
// silently overwritten, so every recorded value is the one the operator
// actually typed once.
package parse

import (
	"strings"

	"github.com/vhsjwp01/consul-client/internal/grammar"
)

// ParsedCommand is the validated result of parsing one invocation's
// arguments. Fields maps flag names to their supplied values; every key is a
// flag registered for Kind and no key is recorded twice. Instances are
// created by Parse and must not be mutated afterwards.
type ParsedCommand struct {
	Kind   grammar.Command
	Fields map[string]string
}

// Get returns the recorded value for a flag and whether it was supplied.
func (pc *ParsedCommand) Get(name string) (string, bool) {
	v, ok := pc.Fields[name]
	return v, ok
}

// Has reports whether the flag was supplied in this invocation.
func (pc *ParsedCommand) Has(name string) bool {
	_, ok := pc.Fields[name]
	return ok
}

// Parse consumes the token sequence following the sub-command word and
// returns the structured command, or a *Error describing the first problem
// encountered. Pure: it never touches process state and repeated calls on
// the same input yield the same outcome.
func Parse(kind grammar.Command, tokens []string) (*ParsedCommand, error) {
	if len(tokens) == 0 {
		return nil, &Error{Kind: EmptyArguments, Command: kind.String()}
	}

	fields := make(map[string]string, len(tokens)/2)

	for i := 0; i < len(tokens); i += 2 {
		tok := tokens[i]
		if !strings.HasPrefix(tok, "--") {
			return nil, &Error{Kind: MalformedFlag, Command: kind.String(), Flag: tok}
		}

		name := tok[2:]
		if !grammar.IsKnownFlag(kind, name) {
			return nil, &Error{Kind: UnknownFlag, Command: kind.String(), Flag: name}
		}

		if _, seen := fields[name]; seen {
			return nil, &Error{Kind: DuplicateFlag, Command: kind.String(), Flag: name}
		}

		if i+1 >= len(tokens) || tokens[i+1] == "" {
			return nil, &Error{Kind: MissingValue, Command: kind.String(), Flag: name}
		}
		value := tokens[i+1]

		if allowed := grammar.AllowedValues(kind, name); allowed != nil && !contains(allowed, value) {
			return nil, &Error{
				Kind:    InvalidEnumValue,
				Command: kind.String(),
				Flag:    name,
				Value:   value,
				Allowed: allowed,
			}
		}

		fields[name] = value
	}

	return &ParsedCommand{Kind: kind, Fields: fields}, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
