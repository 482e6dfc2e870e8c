package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/mifos-mcp/banking"
	"github.com/viant/mifos-mcp/upstream"
)

func TestNewResult(t *testing.T) {
	var testCases = []struct {
		description      string
		result           *upstream.Result
		expectText       string
		expectError      bool
		expectStructured map[string]interface{}
	}{
		{
			description:      "object body",
			result:           &upstream.Result{Body: json.RawMessage(`{"clientId":7}`)},
			expectText:       `{"clientId":7}`,
			expectStructured: map[string]interface{}{"clientId": float64(7)},
		},
		{
			description: "array body",
			result:      &upstream.Result{Body: json.RawMessage(`[{"id":1}]`)},
			expectText:  `[{"id":1}]`,
		},
		{
			description:      "failure",
			result:           &upstream.Result{Failure: &upstream.Failure{StatusCode: 404, Message: "not found"}},
			expectText:       "not found",
			expectError:      true,
			expectStructured: map[string]interface{}{"error": true, "statusCode": 404, "message": "not found"},
		},
	}
	for _, testCase := range testCases {
		actual := NewResult(testCase.result)
		require.Len(t, actual.Content, 1, testCase.description)
		assert.Equal(t, "text", actual.Content[0].Type, testCase.description)
		assert.Equal(t, testCase.expectText, actual.Content[0].Text, testCase.description)
		assert.Equal(t, testCase.expectError, actual.IsError != nil && *actual.IsError, testCase.description)
		if testCase.expectStructured == nil {
			assert.Empty(t, actual.StructuredContent, testCase.description)
			continue
		}
		assert.EqualValues(t, testCase.expectStructured, actual.StructuredContent, testCase.description)
	}
}

func TestNewError(t *testing.T) {
	err := NewError(&banking.ValidationError{Tool: "login", Fields: []string{"password"}})
	assert.Equal(t, jsonrpc.InvalidParams, err.Code)
	assert.Contains(t, err.Message, "password")

	err = NewError(&upstream.TransportError{Method: "GET", URL: "http://localhost", Err: errors.New("connection refused")})
	assert.Equal(t, jsonrpc.InternalError, err.Code)
	assert.Contains(t, err.Message, "connection refused")
}

type stubForwarder struct {
	result *upstream.Result
	err    error
	calls  int
}

func (s *stubForwarder) Forward(ctx context.Context, request *upstream.Request) (*upstream.Result, error) {
	s.calls++
	return s.result, s.err
}

func TestHandler(t *testing.T) {
	forwarder := &stubForwarder{result: &upstream.Result{Body: json.RawMessage(`{"resourceId":3}`)}}
	service := banking.New(forwarder)
	tool, ok := banking.Lookup(banking.ToolDeleteBeneficiary)
	require.True(t, ok)
	handler := Handler(service, tool)
	call := func(arguments map[string]interface{}) (*schema.CallToolResult, *jsonrpc.Error) {
		return handler(context.Background(), &schema.CallToolRequest{Params: schema.CallToolRequestParams{Name: tool.Name, Arguments: arguments}})
	}

	result, rpcErr := call(map[string]interface{}{"beneficiary_id": 3, "username": "alice", "password": "secret"})
	require.Nil(t, rpcErr)
	assert.Equal(t, `{"resourceId":3}`, result.Content[0].Text)

	result, rpcErr = call(map[string]interface{}{"beneficiary_id": 3})
	assert.Nil(t, result)
	require.NotNil(t, rpcErr)
	assert.Equal(t, jsonrpc.InvalidParams, rpcErr.Code)

	_, rpcErr = call(map[string]interface{}{"beneficiary_id": "three", "username": "alice", "password": "secret"})
	require.NotNil(t, rpcErr)
	assert.Equal(t, jsonrpc.InvalidParams, rpcErr.Code)

	_, rpcErr = call(nil)
	require.NotNil(t, rpcErr)
	assert.Equal(t, jsonrpc.InvalidParams, rpcErr.Code)
	assert.Equal(t, 1, forwarder.calls)

	forwarder.result, forwarder.err = nil, &upstream.TransportError{Method: "DELETE", URL: "x", Err: context.DeadlineExceeded}
	_, rpcErr = call(map[string]interface{}{"beneficiary_id": 3, "username": "alice", "password": "secret"})
	require.NotNil(t, rpcErr)
	assert.Equal(t, jsonrpc.InternalError, rpcErr.Code)
}

func TestInputSchema(t *testing.T) {
	fallback := banking.New(&stubForwarder{}, banking.WithDefaultCredentials(&upstream.Credentials{Username: "mifos", Password: "password"}))
	var testCases = []struct {
		description   string
		service       *banking.Service
		tool          string
		expectIn      []string
		expectMissing []string
	}{
		{description: "credentials required", service: banking.New(&stubForwarder{}), tool: banking.ToolGetClientAccounts, expectIn: []string{"client_id", "username", "password"}},
		{description: "credentials optional with fallback", service: fallback, tool: banking.ToolGetClientAccounts, expectIn: []string{"client_id"}, expectMissing: []string{"username", "password"}},
		{description: "login carries its own credentials", service: banking.New(&stubForwarder{}), tool: banking.ToolLogin, expectIn: []string{"username", "password"}},
		{description: "transfer routing details optional", service: banking.New(&stubForwarder{}), tool: banking.ToolMakeTransfer, expectIn: []string{"from_account_id", "to_account_id", "transfer_amount", "transfer_date", "username", "password"}, expectMissing: []string{"to_office_id", "transfer_description"}},
	}
	for _, testCase := range testCases {
		tool, ok := banking.Lookup(testCase.tool)
		require.True(t, ok, testCase.description)
		actual, err := InputSchema(testCase.service, tool)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, "object", actual.Type, testCase.description)
		for _, name := range testCase.expectIn {
			assert.Contains(t, actual.Required, name, testCase.description)
			assert.Contains(t, actual.Properties, name, testCase.description)
		}
		for _, name := range testCase.expectMissing {
			assert.NotContains(t, actual.Required, name, testCase.description)
		}
	}
}

func TestRegister(t *testing.T) {
	h := serverproto.NewDefaultHandler(nil, nil, nil)
	require.NoError(t, Register(h, banking.New(&stubForwarder{})))
	for _, tool := range banking.Tools() {
		entry, ok := h.Registry.ToolRegistry.Get(tool.Name)
		require.True(t, ok, tool.Name)
		assert.Equal(t, tool.Name, entry.Metadata.Name)
		require.NotNil(t, entry.Metadata.Description, tool.Name)
		assert.Equal(t, tool.Description, *entry.Metadata.Description)
		assert.Nil(t, entry.Metadata.OutputSchema, tool.Name)
	}
}
