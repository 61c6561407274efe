// Package utils provides utility functions for the consulctl CLI.
// This file contains logging setup for command execution.
package utils

import (
	"os"

	"github.com/vhsjwp01/consul-client/cmd/consulctl/config"
	"github.com/vhsjwp01/consul-client/internal/logging"
)

// SetupLogging configures CLI logging behavior based on environment and
// config. DEBUG=true forces full debug output regardless of the configured
// level; JSON output mode suppresses informational logs so the payload on
// stdout stays parseable.
func SetupLogging() {
	if os.Getenv("DEBUG") == "true" {
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	logging.SetLevel(config.Global.LogLevel)

	if config.Global.Output == config.OutputJSON {
		// Keep stdout clean for the payload
		logging.SuppressOutput()
	}
}
