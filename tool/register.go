package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/mifos-mcp/banking"
	"github.com/viant/mifos-mcp/upstream"
)

// Register registers every banking tool with the MCP handler.
// Tools carry no output schema since upstream bodies have no fixed shape.
func Register(h *serverproto.DefaultHandler, service *banking.Service) error {
	for _, tool := range banking.Tools() {
		inputSchema, err := InputSchema(service, tool)
		if err != nil {
			return fmt.Errorf("failed to register tool %v: %w", tool.Name, err)
		}
		h.Registry.RegisterToolWithSchema(tool.Name, tool.Description, *inputSchema, nil, Handler(service, tool))
	}
	return nil
}

// InputSchema derives tool input schema, credentials are required unless the service falls back to default ones
func InputSchema(service *banking.Service, tool *banking.Tool) (*schema.ToolInputSchema, error) {
	ret := &schema.ToolInputSchema{}
	if err := ret.Load(tool.NewInput()); err != nil {
		return nil, err
	}
	if service.RequiresCredentials(tool) {
		ret.Required = appendMissing(ret.Required, banking.CredentialFields...)
	}
	return ret, nil
}

// Handler returns MCP handler decoding arguments into tool input and invoking the tool
func Handler(service *banking.Service, tool *banking.Tool) serverproto.ToolHandlerFunc {
	return func(ctx context.Context, request *schema.CallToolRequest) (*schema.CallToolResult, *jsonrpc.Error) {
		var data []byte
		if args := request.Params.Arguments; args != nil {
			var err error
			if data, err = json.Marshal(args); err != nil {
				return nil, jsonrpc.NewInvalidParamsError(err.Error(), nil)
			}
		}
		input, err := tool.Decode(data)
		if err != nil {
			return nil, NewError(err)
		}
		return toResult(service.Invoke(ctx, tool.Name, input))
	}
}

func toResult(result *upstream.Result, err error) (*schema.CallToolResult, *jsonrpc.Error) {
	if err != nil {
		return nil, NewError(err)
	}
	return NewResult(result), nil
}

func appendMissing(fields []string, names ...string) []string {
	for _, name := range names {
		found := false
		for _, field := range fields {
			if field == name {
				found = true
				break
			}
		}
		if !found {
			fields = append(fields, name)
		}
	}
	return fields
}
