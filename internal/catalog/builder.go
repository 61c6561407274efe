// Package catalog turns validated commands into catalog API requests and
// executes them against a Consul-compatible agent.
//
// The package is split along the request boundary: Build is a pure function
// from a parsed command to an HTTP request description (method, path, query
// parameters, JSON body), and Client executes those descriptions over the
// wire. Keeping Build free of I/O means the complete request shape for every
// command is testable without a network.
package catalog

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vhsjwp01/consul-client/internal/grammar"
	"github.com/vhsjwp01/consul-client/internal/parse"
	"github.com/vhsjwp01/consul-client/internal/validate"
)

// Request describes one catalog API call: everything the HTTP client needs
// except the agent address. Body is nil for read-only requests.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// registration is the catalog register payload. Field names follow the
// catalog wire format; empty sub-objects and fields are omitted entirely so
// the agent only sees what the operator supplied.
type registration struct {
	Datacenter string               `json:"Datacenter,omitempty"`
	Node       string               `json:"Node,omitempty"`
	Address    string               `json:"Address,omitempty"`
	Service    *serviceRegistration `json:"Service,omitempty"`
	Check      *checkRegistration   `json:"Check,omitempty"`
}

type serviceRegistration struct {
	ID      string   `json:"ID,omitempty"`
	Service string   `json:"Service,omitempty"`
	Tags    []string `json:"Tags,omitempty"`
	Address string   `json:"Address,omitempty"`
	Port    int      `json:"Port,omitempty"`
}

type checkRegistration struct {
	Node      string `json:"Node,omitempty"`
	CheckID   string `json:"CheckID,omitempty"`
	Name      string `json:"Name,omitempty"`
	Notes     string `json:"Notes,omitempty"`
	Status    string `json:"Status,omitempty"`
	ServiceID string `json:"ServiceID,omitempty"`
}

// deregistration is the catalog deregister payload.
type deregistration struct {
	Datacenter string `json:"Datacenter,omitempty"`
	Node       string `json:"Node"`
	ServiceID  string `json:"ServiceID,omitempty"`
}

// Build maps a validated command onto its catalog API request. The grammar
// guarantees flag names and enum domains; Build enforces the remaining
// value-level constraints (port range, check status, required combinations)
// before anything goes on the wire.
func Build(cmd *parse.ParsedCommand) (*Request, error) {
	switch cmd.Kind {
	case grammar.Query:
		return buildQuery(cmd)
	case grammar.Register:
		return buildRegister(cmd)
	case grammar.Deregister:
		return buildDeregister(cmd)
	default:
		return nil, fmt.Errorf("no request mapping for command %q", cmd.Kind)
	}
}

// buildQuery selects the catalog read endpoint. A scoped --service or --node
// lookup takes precedence over the --type listings; --datacenter always
// narrows the request through the dc query parameter.
func buildQuery(cmd *parse.ParsedCommand) (*Request, error) {
	query := url.Values{}
	if dc, ok := cmd.Get("datacenter"); ok {
		query.Set("dc", dc)
	}

	var path string
	switch {
	case cmd.Has("service"):
		svc, _ := cmd.Get("service")
		path = "/v1/catalog/service/" + url.PathEscape(svc)
	case cmd.Has("node"):
		node, _ := cmd.Get("node")
		path = "/v1/catalog/node/" + url.PathEscape(node)
	case cmd.Has("type"):
		// Enum membership already guaranteed by the parser.
		switch t, _ := cmd.Get("type"); t {
		case "datacenter":
			path = "/v1/catalog/datacenters"
		case "services":
			path = "/v1/catalog/services"
		case "nodes":
			path = "/v1/catalog/nodes"
		}
	default:
		return nil, fmt.Errorf("query requires --type, --service, or --node to select a resource")
	}

	return &Request{Method: http.MethodGet, Path: path, Query: query}, nil
}

// buildRegister assembles the register payload from the supplied flags,
// attaching the Service and Check sub-objects only when at least one of
// their flags was given.
func buildRegister(cmd *parse.ParsedCommand) (*Request, error) {
	body := registration{}
	body.Datacenter, _ = cmd.Get("datacenter")
	body.Node, _ = cmd.Get("node")
	body.Address, _ = cmd.Get("node_address")

	if cmd.Has("service_id") || cmd.Has("service_name") || cmd.Has("tags") ||
		cmd.Has("service_address") || cmd.Has("service_port") {
		svc := &serviceRegistration{}
		svc.ID, _ = cmd.Get("service_id")
		svc.Service, _ = cmd.Get("service_name")
		svc.Address, _ = cmd.Get("service_address")
		if tags, ok := cmd.Get("tags"); ok {
			svc.Tags = splitTags(tags)
		}
		if portStr, ok := cmd.Get("service_port"); ok {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return nil, fmt.Errorf("invalid service port '%s': %w", portStr, err)
			}
			if err := validate.ValidatePortRange(port); err != nil {
				return nil, fmt.Errorf("service port must be between 1-65535, got %d", port)
			}
			svc.Port = port
		}
		body.Service = svc
	}

	if cmd.Has("check_node") || cmd.Has("check_id") || cmd.Has("check_name") ||
		cmd.Has("check_notes") || cmd.Has("check_status") || cmd.Has("check_serviceid") {
		check := &checkRegistration{}
		check.Node, _ = cmd.Get("check_node")
		check.Name, _ = cmd.Get("check_name")
		check.Notes, _ = cmd.Get("check_notes")
		check.ServiceID, _ = cmd.Get("check_serviceid")
		if id, ok := cmd.Get("check_id"); ok {
			// Catalog convention for service-level checks.
			check.CheckID = "service:" + id
		}
		if status, ok := cmd.Get("check_status"); ok {
			if err := validate.ValidateField(status, "oneof=passing warning critical"); err != nil {
				return nil, fmt.Errorf("invalid check status '%s' (must be one of: passing, warning, critical)", status)
			}
			check.Status = status
		}
		body.Check = check
	}

	return &Request{Method: http.MethodPut, Path: "/v1/catalog/register", Body: body}, nil
}

// buildDeregister assembles the deregister payload. The catalog requires the
// node name; datacenter and service scope are optional.
func buildDeregister(cmd *parse.ParsedCommand) (*Request, error) {
	node, ok := cmd.Get("node")
	if !ok {
		return nil, fmt.Errorf("deregister requires --node to identify the catalog entry")
	}

	body := deregistration{Node: node}
	body.Datacenter, _ = cmd.Get("datacenter")
	body.ServiceID, _ = cmd.Get("service_id")

	return &Request{Method: http.MethodPut, Path: "/v1/catalog/deregister", Body: body}, nil
}

// splitTags turns the comma-separated --tags value into a tag list,
// dropping empty segments.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
