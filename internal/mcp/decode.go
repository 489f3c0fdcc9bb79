package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// decode converts the arguments of a tool call into a request struct such
// as GenerateRequest. A value of the wrong JSON type (groups: "two") fails
// with the tool name in the message.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var result T
	b, err := json.Marshal(req.GetArguments())
	if err != nil {
		return result, fmt.Errorf("%s: arguments are not valid JSON: %w", req.Params.Name, err)
	}
	if err := json.Unmarshal(b, &result); err != nil {
		return result, fmt.Errorf("%s: invalid arguments: %w", req.Params.Name, err)
	}
	return result, nil
}
