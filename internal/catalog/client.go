package catalog

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vhsjwp01/consul-client/internal/logging"
	"github.com/vhsjwp01/consul-client/internal/parse"
	"github.com/vhsjwp01/consul-client/internal/version"
)

// Client executes catalog API requests against one agent. It wraps a Resty
// HTTP client configured with JSON headers, a connection timeout, and
// structured request/response logging.
//
// The client performs exactly one attempt per request. A failed invocation
// exits the process with a diagnostic; the operator retries by re-running
// the command, so local retry policies would only hide transient state from
// them.
type Client struct {
	client  *resty.Client
	baseURL string
}

// restyLogger routes Resty's internal logging through the structured logger.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) { logging.Error(format, v...) }
func (restyLogger) Warnf(format string, v ...interface{})  { logging.Warn(format, v...) }
func (restyLogger) Debugf(format string, v ...interface{}) { logging.Debug(format, v...) }

// NewClient creates a catalog API client for the agent at addr ("host:port",
// already validated by the CLI configuration layer). A non-empty token is
// sent as the X-Consul-Token header on every request.
func NewClient(addr, token string, timeout int) *Client {
	client := resty.New()

	baseURL := fmt.Sprintf("http://%s", addr)

	client.SetLogger(restyLogger{})

	client.
		SetTimeout(time.Duration(timeout) * time.Second).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("consulctl/%s", version.ConsulctlVersion))

	if token != "" {
		client.SetHeader("X-Consul-Token", token)
	}

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Issuing catalog request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Catalog response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("Catalog request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

// Execute builds the catalog request for a validated command and issues it,
// returning the raw response body. Implements the dispatch.Executor boundary.
func (c *Client) Execute(cmd *parse.ParsedCommand) (string, error) {
	req, err := Build(cmd)
	if err != nil {
		return "", err
	}
	return c.Do(req)
}

// Do issues one catalog API request and returns the raw response body.
// Connection failures and non-2xx statuses come back as errors carrying the
// agent address or status and body for troubleshooting.
func (c *Client) Do(req *Request) (string, error) {
	r := c.client.R()
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return "", fmt.Errorf("failed to connect to catalog agent at %s: %w", c.baseURL, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return "", fmt.Errorf("catalog resource %s not found", req.Path)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", fmt.Errorf("catalog request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return resp.String(), nil
}
