package api

import (
	"reflect"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/viant/mifos-mcp/banking"
)

// ToolInfo represents REST tool description
type ToolInfo struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Method      string             `json:"method"`
	Path        string             `json:"path"`
	Auth        bool               `json:"auth"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

var reflector = &jsonschema.Reflector{
	AllowAdditionalProperties: false,
	DoNotReference:            true,
}

// NewToolInfo returns tool description with input schema, requireCredentials marks credential fields required
func NewToolInfo(tool *banking.Tool, requireCredentials bool) *ToolInfo {
	schema := inputSchema(tool.NewInput())
	if requireCredentials {
		for _, name := range banking.CredentialFields {
			if !slices.Contains(schema.Required, name) {
				schema.Required = append(schema.Required, name)
			}
		}
	}
	return &ToolInfo{
		Name:        tool.Name,
		Description: tool.Description,
		Method:      tool.Method,
		Path:        tool.Path,
		Auth:        tool.Auth,
		InputSchema: schema,
	}
}

// inputSchema reflects input type, property descriptions come from description tags
func inputSchema(input interface{}) *jsonschema.Schema {
	schema := reflector.Reflect(input)
	schema.Version = ""
	if schema.Properties == nil {
		return schema
	}
	inputType := reflect.TypeOf(input)
	if inputType.Kind() == reflect.Ptr {
		inputType = inputType.Elem()
	}
	for i := 0; i < inputType.NumField(); i++ {
		field := inputType.Field(i)
		description := field.Tag.Get("description")
		if description == "" {
			continue
		}
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if property, ok := schema.Properties.Get(name); ok && property != nil {
			property.Description = description
		}
	}
	return schema
}
