// Package display provides output formatting for consulctl payloads.
//
// Query responses pass through to stdout verbatim in raw mode, matching the
// boundary contract that the response body is not interpreted by this tool.
// JSON mode re-indents the payload for human consumption, falling back to
// the raw body when the agent returns something that is not JSON.
package display

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vhsjwp01/consul-client/cmd/consulctl/config"
	"github.com/vhsjwp01/consul-client/internal/logging"
)

// Payload writes a response payload to stdout honoring the configured output
// format. Empty payloads (write operations) print nothing.
func Payload(body string) {
	if body == "" {
		return
	}

	if config.Global.Output == config.OutputJSON {
		var indented bytes.Buffer
		if err := json.Indent(&indented, []byte(body), "", "  "); err != nil {
			logging.Debug("Response payload is not JSON, printing verbatim: %v", err)
			fmt.Println(body)
			return
		}
		fmt.Println(indented.String())
		return
	}

	fmt.Println(body)
}
