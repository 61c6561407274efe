// Package config provides configuration management for the consulctl CLI.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vhsjwp01/consul-client/internal/logging"
	"github.com/vhsjwp01/consul-client/internal/validate"
)

// ValidateGlobalConfig loads and validates the environment-driven
// configuration before running any command. Acts as the capability check of
// the request boundary: a command never parses, let alone issues a request,
// against an address that cannot be connected to.
func ValidateGlobalConfig(cmd *cobra.Command, args []string) error {
	if err := LoadFromEnv(); err != nil {
		return err
	}

	if err := ValidateHTTPAddr(); err != nil {
		return err
	}

	if err := ValidateTimeout(); err != nil {
		return err
	}

	return ValidateOutputFormat()
}

// ValidateHTTPAddr validates the configured agent address.
func ValidateHTTPAddr() error {
	netAddr, err := validate.ParseAddress(Global.HTTPAddr)
	if err != nil {
		logging.Error("Invalid agent address '%s': %v", Global.HTTPAddr, err)
		return fmt.Errorf("invalid agent address - expected format: host:port (e.g., 127.0.0.1:8500)")
	}

	// Reject unroutable 0.0.0.0 target for client connections
	if netAddr.Host == "0.0.0.0" {
		logging.Error("Unroutable agent address '0.0.0.0:%d' - cannot connect to 0.0.0.0", netAddr.Port)
		return fmt.Errorf("unroutable agent address - use 127.0.0.1 or a specific IP address")
	}

	// Client must connect to a specific port (not 0)
	if err := validate.ValidatePortRange(netAddr.Port); err != nil {
		logging.Error("Invalid agent port %d: %v", netAddr.Port, err)
		return fmt.Errorf("agent port must be between 1-65535")
	}

	return nil
}

// ValidateTimeout validates the configured connection timeout.
func ValidateTimeout() error {
	if Global.Timeout <= 0 {
		logging.Error("Invalid timeout %d - must be a positive number of seconds", Global.Timeout)
		return fmt.Errorf("connection timeout must be positive")
	}
	return nil
}

// ValidateOutputFormat validates the configured output format.
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		OutputRaw:  true,
		OutputJSON: true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: raw, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: raw, json")
	}
	return nil
}
