// Package handlers provides command handler functions for consulctl catalog
// operations.
//
// Each handler follows the same shape: configure logging, hand the raw token
// sequence to the dispatcher (which parses against the grammar and forwards
// the validated command to the catalog client), then display the payload.
// Handlers never touch the network on a parse failure; the typed error
// travels back to main for reporting.
package handlers

import (
	"github.com/spf13/cobra"

	"github.com/vhsjwp01/consul-client/cmd/consulctl/config"
	"github.com/vhsjwp01/consul-client/cmd/consulctl/display"
	"github.com/vhsjwp01/consul-client/cmd/consulctl/utils"
	"github.com/vhsjwp01/consul-client/internal/catalog"
	"github.com/vhsjwp01/consul-client/internal/dispatch"
	"github.com/vhsjwp01/consul-client/internal/grammar"
	"github.com/vhsjwp01/consul-client/internal/logging"
	"github.com/vhsjwp01/consul-client/internal/parse"
)

// newExecutor creates the catalog client from the current global
// configuration.
func newExecutor() dispatch.Executor {
	return catalog.NewClient(config.Global.HTTPAddr, config.Global.Token, config.Global.Timeout)
}

// wantsHelp reports whether the raw token sequence is a bare help request.
// With flag parsing disabled, cobra no longer intercepts -h itself.
func wantsHelp(args []string) bool {
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}

// HandleQuery handles the query sub-command: list datacenters, services, or
// nodes, or look up a single service or node, printing the response payload.
func HandleQuery(cmd *cobra.Command, args []string) error {
	if wantsHelp(args) {
		return cmd.Help()
	}
	utils.SetupLogging()

	logging.Info("Querying catalog via agent: %s", config.Global.HTTPAddr)

	payload, err := dispatch.Run(grammar.Query, args, newExecutor())
	if err != nil {
		return err
	}

	display.Payload(payload)
	logging.Success("Catalog query completed")
	return nil
}

// HandleRegister handles the register sub-command: create or update a
// catalog entry for a node, its service, and an optional health check.
func HandleRegister(cmd *cobra.Command, args []string) error {
	if wantsHelp(args) {
		return cmd.Help()
	}
	utils.SetupLogging()

	logging.Info("Registering catalog entry via agent: %s", config.Global.HTTPAddr)

	if _, err := dispatch.Run(grammar.Register, args, newExecutor()); err != nil {
		return err
	}

	logging.Success("Catalog registration accepted")
	return nil
}

// HandleDeregister handles the deregister sub-command: remove a node or
// service entry from the catalog.
func HandleDeregister(cmd *cobra.Command, args []string) error {
	if wantsHelp(args) {
		return cmd.Help()
	}
	utils.SetupLogging()

	logging.Info("Deregistering catalog entry via agent: %s", config.Global.HTTPAddr)

	if _, err := dispatch.Run(grammar.Deregister, args, newExecutor()); err != nil {
		return err
	}

	logging.Success("Catalog entry removed")
	return nil
}

// HandleRoot runs when no sub-command matched. Empty input and unrecognized
// leading tokens both resolve through the dispatcher so the diagnostics stay
// consistent with the rest of the argument validation.
func HandleRoot(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if len(args) == 0 {
		_ = cmd.Usage()
		return &parse.Error{Kind: parse.UnknownCommand}
	}

	_, err := dispatch.Resolve(args[0])
	return err
}
