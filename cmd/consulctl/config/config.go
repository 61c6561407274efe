// Package config provides configuration management for the consulctl CLI.
//
// Global state comes from the environment rather than command-line flags:
// every token after the sub-command word belongs to the strict catalog
// grammar, so the agent address, token, and output preferences use the
// conventional CONSUL_* variables instead.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vhsjwp01/consul-client/internal/version"
)

const (
	DefaultHTTPAddr = "127.0.0.1:8500" // Default agent HTTP address (routable)
	DefaultTimeout  = 10               // Connection timeout in seconds
	DefaultLogLevel = "ERROR"          // Keep payloads clean unless asked otherwise

	OutputRaw  = "raw"  // Response body passed through verbatim
	OutputJSON = "json" // Response body re-indented as JSON
)

// Version returns the current consulctl CLI version from the centralized
// version package
var Version = version.ConsulctlVersion

// Global holds the global CLI configuration
var Global struct {
	HTTPAddr string // Address of the catalog agent to connect to
	Token    string // Optional X-Consul-Token value
	Timeout  int    // Connection timeout in seconds
	LogLevel string // Log level for CLI operations
	Output   string // Output format: raw, json
}

// LoadFromEnv populates Global from the process environment, applying
// defaults for anything unset. Called once before any command runs.
func LoadFromEnv() error {
	Global.HTTPAddr = envOrDefault("CONSUL_HTTP_ADDR", DefaultHTTPAddr)
	Global.Token = os.Getenv("CONSUL_HTTP_TOKEN")
	Global.LogLevel = envOrDefault("CONSUL_LOG_LEVEL", DefaultLogLevel)
	Global.Output = envOrDefault("CONSUL_OUTPUT", OutputRaw)

	Global.Timeout = DefaultTimeout
	if raw := os.Getenv("CONSUL_HTTP_TIMEOUT"); raw != "" {
		timeout, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid CONSUL_HTTP_TIMEOUT '%s': expected seconds as an integer", raw)
		}
		Global.Timeout = timeout
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
