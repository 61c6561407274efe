// Package main provides the entry point for the consulctl CLI tool.
//
// consulctl is a strict command-line client for a Consul-compatible service
// catalog. Each process invocation validates its arguments against a static
// grammar, issues at most one synchronous HTTP request against the agent's
// catalog API, and exits 0 on success or 1 on any validation or transport
// failure.
//
// INITIALIZATION FLOW:
//  1. Command structure setup linking the three catalog sub-commands to root
//  2. Handler assignment connecting commands to dispatch and the API client
//  3. Environment-driven configuration loading and validation before any
//     command runs
//  4. Command execution with uniform error reporting and exit codes
package main

import (
	"os"

	"github.com/vhsjwp01/consul-client/cmd/consulctl/commands"
	"github.com/vhsjwp01/consul-client/cmd/consulctl/config"
	"github.com/vhsjwp01/consul-client/cmd/consulctl/handlers"
	"github.com/vhsjwp01/consul-client/internal/logging"
	"github.com/vhsjwp01/consul-client/internal/report"
)

func init() {
	rootCmd := commands.RootCmd

	// Set version and configuration validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalConfig

	// Setup command structure
	commands.SetupCommands()

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	queryCmd, registerCmd, deregisterCmd := commands.GetCatalogCommands()

	queryCmd.RunE = handlers.HandleQuery
	registerCmd.RunE = handlers.HandleRegister
	deregisterCmd.RunE = handlers.HandleDeregister

	// Unknown and absent sub-commands route through the dispatcher
	commands.RootCmd.RunE = handlers.HandleRoot
}

// main is the main entry point
func main() {
	// Dependencies writing to the standard library logger surface as DEBUG
	logging.RedirectStandardLog(logging.NewLevelWriter("DEBUG", "stdlib"))

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(report.Failure(os.Stderr, err))
	}

	os.Exit(report.ExitOK)
}
