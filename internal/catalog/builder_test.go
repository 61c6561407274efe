package catalog

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/vhsjwp01/consul-client/internal/grammar"
	"github.com/vhsjwp01/consul-client/internal/parse"
)

// parsed builds a ParsedCommand through the real parser so builder tests
// exercise the same inputs the CLI produces.
func parsed(t *testing.T, kind grammar.Command, tokens ...string) *parse.ParsedCommand {
	t.Helper()
	cmd, err := parse.Parse(kind, tokens)
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	return cmd
}

func TestBuildQueryPaths(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		path   string
		dc     string
	}{
		{
			name:   "datacenter listing",
			tokens: []string{"--type", "datacenter"},
			path:   "/v1/catalog/datacenters",
		},
		{
			name:   "services listing",
			tokens: []string{"--type", "services"},
			path:   "/v1/catalog/services",
		},
		{
			name:   "nodes listing",
			tokens: []string{"--type", "nodes"},
			path:   "/v1/catalog/nodes",
		},
		{
			name:   "nodes listing scoped to a datacenter",
			tokens: []string{"--type", "nodes", "--datacenter", "dc1"},
			path:   "/v1/catalog/nodes",
			dc:     "dc1",
		},
		{
			name:   "service lookup",
			tokens: []string{"--service", "web"},
			path:   "/v1/catalog/service/web",
		},
		{
			name:   "node lookup",
			tokens: []string{"--node", "web01"},
			path:   "/v1/catalog/node/web01",
		},
		{
			name:   "service lookup wins over type listing",
			tokens: []string{"--type", "nodes", "--service", "web"},
			path:   "/v1/catalog/service/web",
		},
		{
			name:   "service name is path-escaped",
			tokens: []string{"--service", "web/v2"},
			path:   "/v1/catalog/service/web%2Fv2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Build(parsed(t, grammar.Query, tt.tokens...))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if req.Method != http.MethodGet {
				t.Errorf("Expected GET, got %s", req.Method)
			}
			if req.Path != tt.path {
				t.Errorf("Expected path %s, got %s", tt.path, req.Path)
			}
			if got := req.Query.Get("dc"); got != tt.dc {
				t.Errorf("Expected dc param %q, got %q", tt.dc, got)
			}
			if req.Body != nil {
				t.Errorf("Expected no body for a read-only request, got %v", req.Body)
			}
		})
	}
}

func TestBuildQueryRequiresSelector(t *testing.T) {
	// A datacenter alone narrows nothing; there is no resource to fetch.
	_, err := Build(parsed(t, grammar.Query, "--datacenter", "dc1"))
	if err == nil {
		t.Fatal("Expected error for query without --type, --service, or --node")
	}
}

func TestBuildRegisterFullBody(t *testing.T) {
	cmd := parsed(t, grammar.Register,
		"--datacenter", "dc1", "--node", "web01", "--node_address", "10.0.0.5",
		"--service_id", "web01", "--service_name", "web", "--tags", "prod, edge,",
		"--service_address", "10.0.0.5", "--service_port", "80",
		"--check_node", "web01", "--check_id", "web01", "--check_name", "web alive",
		"--check_notes", "curl based", "--check_status", "passing", "--check_serviceid", "web01",
	)

	req, err := Build(cmd)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Method != http.MethodPut {
		t.Errorf("Expected PUT, got %s", req.Method)
	}
	if req.Path != "/v1/catalog/register" {
		t.Errorf("Expected register path, got %s", req.Path)
	}

	body, ok := req.Body.(registration)
	if !ok {
		t.Fatalf("Expected registration body, got %T", req.Body)
	}
	if body.Datacenter != "dc1" || body.Node != "web01" || body.Address != "10.0.0.5" {
		t.Errorf("Unexpected node fields: %+v", body)
	}

	if body.Service == nil {
		t.Fatal("Expected Service sub-object")
	}
	if body.Service.ID != "web01" || body.Service.Service != "web" ||
		body.Service.Address != "10.0.0.5" || body.Service.Port != 80 {
		t.Errorf("Unexpected service fields: %+v", body.Service)
	}
	if !reflect.DeepEqual(body.Service.Tags, []string{"prod", "edge"}) {
		t.Errorf("Expected tags [prod edge], got %v", body.Service.Tags)
	}

	if body.Check == nil {
		t.Fatal("Expected Check sub-object")
	}
	if body.Check.CheckID != "service:web01" {
		t.Errorf("Expected CheckID 'service:web01', got %q", body.Check.CheckID)
	}
	if body.Check.Node != "web01" || body.Check.Name != "web alive" ||
		body.Check.Notes != "curl based" || body.Check.Status != "passing" ||
		body.Check.ServiceID != "web01" {
		t.Errorf("Unexpected check fields: %+v", body.Check)
	}
}

func TestBuildRegisterOmitsAbsentSubObjects(t *testing.T) {
	req, err := Build(parsed(t, grammar.Register, "--node", "web01", "--node_address", "10.0.0.5"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	body := req.Body.(registration)
	if body.Service != nil {
		t.Errorf("Expected no Service sub-object without service flags, got %+v", body.Service)
	}
	if body.Check != nil {
		t.Errorf("Expected no Check sub-object without check flags, got %+v", body.Check)
	}
}

func TestBuildRegisterServiceOnly(t *testing.T) {
	req, err := Build(parsed(t, grammar.Register, "--service_name", "web", "--service_port", "80"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	body := req.Body.(registration)
	if body.Service == nil {
		t.Fatal("Expected Service sub-object")
	}
	if body.Service.Service != "web" || body.Service.Port != 80 {
		t.Errorf("Unexpected service fields: %+v", body.Service)
	}
	if body.Service.ID != "" {
		t.Errorf("Expected empty service ID when flag absent, got %q", body.Service.ID)
	}
	if body.Check != nil {
		t.Errorf("Expected no Check sub-object, got %+v", body.Check)
	}
}

func TestBuildRegisterRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"non-numeric port", []string{"--service_name", "web", "--service_port", "http"}},
		{"port zero", []string{"--service_name", "web", "--service_port", "0"}},
		{"port out of range", []string{"--service_name", "web", "--service_port", "70000"}},
		{"negative port", []string{"--service_name", "web", "--service_port", "-1"}},
		{"unknown check status", []string{"--check_id", "web01", "--check_status", "degraded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(parsed(t, grammar.Register, tt.tokens...)); err == nil {
				t.Errorf("Expected error for tokens %v", tt.tokens)
			}
		})
	}
}

func TestBuildRegisterAcceptsAllCheckStatuses(t *testing.T) {
	for _, status := range []string{"passing", "warning", "critical"} {
		req, err := Build(parsed(t, grammar.Register, "--check_id", "web01", "--check_status", status))
		if err != nil {
			t.Fatalf("Unexpected error for status %q: %v", status, err)
		}
		if got := req.Body.(registration).Check.Status; got != status {
			t.Errorf("Expected status %q, got %q", status, got)
		}
	}
}

func TestBuildDeregister(t *testing.T) {
	req, err := Build(parsed(t, grammar.Deregister,
		"--datacenter", "dc1", "--node", "web01", "--service_id", "web01"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if req.Method != http.MethodPut {
		t.Errorf("Expected PUT, got %s", req.Method)
	}
	if req.Path != "/v1/catalog/deregister" {
		t.Errorf("Expected deregister path, got %s", req.Path)
	}

	body, ok := req.Body.(deregistration)
	if !ok {
		t.Fatalf("Expected deregistration body, got %T", req.Body)
	}
	if body.Datacenter != "dc1" || body.Node != "web01" || body.ServiceID != "web01" {
		t.Errorf("Unexpected deregistration fields: %+v", body)
	}
}

func TestBuildDeregisterRequiresNode(t *testing.T) {
	if _, err := Build(parsed(t, grammar.Deregister, "--service_id", "web01")); err == nil {
		t.Fatal("Expected error for deregister without --node")
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"prod", []string{"prod"}},
		{"prod,edge", []string{"prod", "edge"}},
		{" prod , edge ", []string{"prod", "edge"}},
		{"prod,,edge,", []string{"prod", "edge"}},
		{",", nil},
	}

	for _, tt := range tests {
		if got := splitTags(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
