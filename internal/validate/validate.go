// Package validate provides input validation utilities for consulctl.
//
// Implements address and field validation on top of the go-playground/validator
// library so that user-provided configuration (agent addresses, ports, value
// domains at the request boundary) is checked consistently with clear error
// messages instead of ad-hoc comparisons scattered through the CLI.
//
// VALIDATION FEATURES:
//   - IP Address: IPv4 and IPv6 format validation
//   - Port Range: valid port numbers for client connections (1-65535)
//   - Format: proper "host:port" address formatting
//   - Field: single-value validation against arbitrary validator tags
package validate

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// NetworkAddress represents a validated network address with host and port
// components. Struct tags drive validation through the validator library, so
// every address that reaches the HTTP client has already passed IP and port
// range checks.
type NetworkAddress struct {
	Host string `validate:"required,ip"`
	Port int    `validate:"required,min=0,max=65535"`
}

// String returns the address in standard "host:port" form.
func (na NetworkAddress) String() string {
	return fmt.Sprintf("%s:%d", na.Host, na.Port)
}

// ParseAddress parses and validates a "host:port" address string. Returns a
// validated NetworkAddress or a descriptive error for malformed input,
// invalid IPs, or out-of-range ports.
func ParseAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}

	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// ValidateField validates a single value against validator tags without
// requiring a struct definition.
//
// Example: ValidateField("passing", "oneof=passing warning critical")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidatePortRange validates that a port is usable for client connections
// (1-65535). Port 0 is rejected: there is nothing to connect to on an
// OS-assigned port.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}
