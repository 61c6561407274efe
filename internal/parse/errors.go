package parse

import (
	"fmt"
	"strings"
)

// ErrorKind classifies argument validation failures. Every failure mode the
// parser and dispatcher can produce has exactly one kind, so callers and
// tests can assert on the class of a failure instead of matching message
// strings.
type ErrorKind int

const (
	// EmptyArguments: a sub-command was given with no flags at all.
	EmptyArguments ErrorKind = iota
	// MalformedFlag: a token expected to be a flag does not start with "--".
	MalformedFlag
	// UnknownFlag: the flag is not registered for the active sub-command.
	UnknownFlag
	// MissingValue: a recognized flag has no following value token, or the
	// value token is empty.
	MissingValue
	// InvalidEnumValue: the value is outside the flag's enumerated domain.
	InvalidEnumValue
	// DuplicateFlag: the flag was already recorded earlier in this parse.
	DuplicateFlag
	// UnknownCommand: the leading token is not one of the three sub-commands.
	UnknownCommand
)

// Error is a typed argument validation failure. All fields beyond Kind are
// informational and populated where they make sense for the kind.
type Error struct {
	Kind    ErrorKind
	Command string   // active sub-command word, when one was selected
	Flag    string   // offending flag name or raw token
	Value   string   // offending value, for enum violations
	Allowed []string // legal values, for enum violations
}

func (e *Error) Error() string {
	switch e.Kind {
	case EmptyArguments:
		return fmt.Sprintf("the %q command requires at least one --flag value pair", e.Command)
	case MalformedFlag:
		return fmt.Sprintf("expected a --flag token but found %q", e.Flag)
	case UnknownFlag:
		return fmt.Sprintf("unknown flag --%s for the %q command", e.Flag, e.Command)
	case MissingValue:
		return fmt.Sprintf("flag --%s requires a value", e.Flag)
	case InvalidEnumValue:
		return fmt.Sprintf("invalid value %q for flag --%s (must be one of: %s)",
			e.Value, e.Flag, strings.Join(e.Allowed, ", "))
	case DuplicateFlag:
		return fmt.Sprintf("flag --%s supplied more than once", e.Flag)
	case UnknownCommand:
		if e.Command == "" {
			return "no command given (expected one of: query, register, deregister)"
		}
		return fmt.Sprintf("unknown command %q (expected one of: query, register, deregister)", e.Command)
	default:
		return "argument validation failed"
	}
}
