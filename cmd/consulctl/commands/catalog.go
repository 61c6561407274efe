package commands

import (
	"github.com/spf13/cobra"
)

// Catalog sub-commands. DisableFlagParsing hands the raw token sequence to
// the grammar-backed parser; cobra only routes the sub-command word.

var queryCmd = &cobra.Command{
	Use:                "query",
	Short:              "Query datacenters, nodes, and services from the catalog",
	DisableFlagParsing: true,
	Example: `  # List every service known to the catalog
  consulctl query --type services

  # Nodes of one datacenter
  consulctl query --type nodes --datacenter dc1

  # Scoped lookups
  consulctl query --service web
  consulctl query --node web01

Flags: --type (datacenter|services|nodes), --datacenter, --service, --node`,
}

var registerCmd = &cobra.Command{
	Use:                "register",
	Short:              "Register a node, service, and health check in the catalog",
	DisableFlagParsing: true,
	Example: `  # Node with an addressable service
  consulctl register --node web01 --node_address 10.0.0.5 \
      --service_id web01 --service_name web --service_port 80 --tags prod,edge

  # Attach a health check
  consulctl register --node web01 --check_id web01 --check_name "web alive" \
      --check_status passing --check_serviceid web01

Flags: --datacenter, --node, --node_address, --service_id, --service_name,
       --tags, --service_address, --service_port, --check_node, --check_id,
       --check_name, --check_notes, --check_status, --check_serviceid`,
}

var deregisterCmd = &cobra.Command{
	Use:                "deregister",
	Short:              "Remove a node or service entry from the catalog",
	DisableFlagParsing: true,
	Example: `  # Remove one service from a node
  consulctl deregister --node web01 --service_id web01

  # Remove an entire node from a datacenter
  consulctl deregister --datacenter dc1 --node web01

Flags: --datacenter, --node, --service_id`,
}
