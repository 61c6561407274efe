// Package commands provides the command tree for consulctl.
//
// The tree is intentionally shallow: three sub-commands (query, register,
// deregister), each declared with flag parsing disabled so that every token
// after the sub-command word is handed verbatim to the strict catalog
// grammar instead of pflag. Unknown or absent sub-commands fall through to
// the root handler, which routes them through the same dispatcher so the
// error taxonomy stays authoritative.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "consulctl",
	Short: "CLI client for a Consul-compatible service catalog",
	Long: `consulctl is a command-line client for querying and maintaining a
Consul-compatible service-discovery catalog.

One invocation performs one synchronous catalog operation: list or look up
datacenters, nodes, and services, register a node with its service and
health check, or remove an entry. Arguments are validated strictly before
any network interaction occurs.

The agent connection is configured through the environment:
CONSUL_HTTP_ADDR (default 127.0.0.1:8500), CONSUL_HTTP_TOKEN,
CONSUL_HTTP_TIMEOUT, CONSUL_LOG_LEVEL, and CONSUL_OUTPUT (raw or json).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	Example: `  # List all datacenters
  consulctl query --type datacenter

  # List nodes in a specific datacenter
  consulctl query --type nodes --datacenter dc1

  # Look up one service
  consulctl query --service web

  # Register a node with a service and a passing check
  consulctl register --node web01 --node_address 10.0.0.5 \
      --service_id web01 --service_name web --service_port 80 \
      --check_id web01 --check_status passing

  # Remove a service entry
  consulctl deregister --node web01 --service_id web01

  # Talk to a remote agent with indented JSON output
  CONSUL_HTTP_ADDR=192.168.1.100:8500 CONSUL_OUTPUT=json consulctl query --type services`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(queryCmd)
	RootCmd.AddCommand(registerCmd)
	RootCmd.AddCommand(deregisterCmd)
}

// GetCatalogCommands returns the three catalog sub-commands for handler and
// flag wiring.
func GetCatalogCommands() (query, register, deregister *cobra.Command) {
	return queryCmd, registerCmd, deregisterCmd
}
