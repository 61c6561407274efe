// Package grammar declares the static command grammar for the consulctl CLI.
//
// Each sub-command accepts a fixed set of --flag value pairs. The table below
// is the single source of truth for which flags are legal per command and
// which flags constrain their value to an enumerated domain. It is built once
// at process start and never mutated, so it can be read without locking from
// anywhere in the CLI.
package grammar

// Command identifies one of the three catalog sub-commands.
type Command int

const (
	Query Command = iota
	Register
	Deregister
)

// String returns the sub-command word as it appears on the command line.
func (c Command) String() string {
	switch c {
	case Query:
		return "query"
	case Register:
		return "register"
	case Deregister:
		return "deregister"
	default:
		return "unknown"
	}
}

// FlagSpec describes one recognized flag for a command. Every flag in the
// grammar takes exactly one value; AllowedValues is nil unless the value is
// constrained to an enumerated set.
type FlagSpec struct {
	Name          string
	RequiresValue bool
	AllowedValues []string
}

// QueryTypes enumerates the legal values of the query --type flag, each
// selecting a different catalog listing.
var QueryTypes = []string{"datacenter", "services", "nodes"}

// flagTable maps each command to its ordered flag set. Flag names are unique
// within a command.
var flagTable = map[Command][]FlagSpec{
	Query: {
		{Name: "type", RequiresValue: true, AllowedValues: QueryTypes},
		{Name: "datacenter", RequiresValue: true},
		{Name: "service", RequiresValue: true},
		{Name: "node", RequiresValue: true},
	},
	Register: {
		{Name: "datacenter", RequiresValue: true},
		{Name: "node", RequiresValue: true},
		{Name: "node_address", RequiresValue: true},
		{Name: "service_id", RequiresValue: true},
		{Name: "service_name", RequiresValue: true},
		{Name: "tags", RequiresValue: true},
		{Name: "service_address", RequiresValue: true},
		{Name: "service_port", RequiresValue: true},
		{Name: "check_node", RequiresValue: true},
		{Name: "check_id", RequiresValue: true},
		{Name: "check_name", RequiresValue: true},
		{Name: "check_notes", RequiresValue: true},
		{Name: "check_status", RequiresValue: true},
		{Name: "check_serviceid", RequiresValue: true},
	},
	Deregister: {
		{Name: "datacenter", RequiresValue: true},
		{Name: "node", RequiresValue: true},
		{Name: "service_id", RequiresValue: true},
	},
}

// Commands lists every registered command in a stable order. Useful for
// iterating the whole grammar in help text and tests.
func Commands() []Command {
	return []Command{Query, Register, Deregister}
}

// FlagsFor returns the ordered flag set registered for a command. Total over
// all Command values: every command has a non-empty set, and an out-of-range
// value yields nil rather than panicking.
func FlagsFor(c Command) []FlagSpec {
	return flagTable[c]
}

// IsKnownFlag reports whether name is a registered flag for the command.
func IsKnownFlag(c Command, name string) bool {
	for _, f := range flagTable[c] {
		if f.Name == name {
			return true
		}
	}
	return false
}

// AllowedValues returns the enumerated value domain for a flag, or nil when
// the flag is unknown or unconstrained.
func AllowedValues(c Command, name string) []string {
	for _, f := range flagTable[c] {
		if f.Name == name {
			return f.AllowedValues
		}
	}
	return nil
}
