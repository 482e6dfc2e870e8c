package tool

import (
	"encoding/json"
	"errors"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/mifos-mcp/banking"
	"github.com/viant/mifos-mcp/upstream"
)

// NewResult converts upstream result into MCP tool result
func NewResult(result *upstream.Result) *schema.CallToolResult {
	if result.Failure != nil {
		isError := true
		return &schema.CallToolResult{
			IsError: &isError,
			Content: []schema.CallToolResultContentElem{{Type: "text", Text: result.Failure.Message}},
			StructuredContent: map[string]interface{}{
				"error":      true,
				"statusCode": result.Failure.StatusCode,
				"message":    result.Failure.Message,
			},
		}
	}
	ret := &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{{Type: "text", Text: string(result.Body)}},
	}
	structured := map[string]interface{}{}
	if err := json.Unmarshal(result.Body, &structured); err == nil {
		ret.StructuredContent = structured
	}
	return ret
}

// NewError converts call error into JSON-RPC error
func NewError(err error) *jsonrpc.Error {
	var validationErr *banking.ValidationError
	if errors.As(err, &validationErr) {
		return jsonrpc.NewInvalidParamsError(validationErr.Error(), nil)
	}
	return jsonrpc.NewInternalError(err.Error(), nil)
}
