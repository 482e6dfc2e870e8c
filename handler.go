package mifos

import (
	"context"
	"fmt"

	protoserver "github.com/viant/mcp-protocol/server"
	"github.com/viant/mifos-mcp/banking"
	"github.com/viant/mifos-mcp/resource"
	"github.com/viant/mifos-mcp/tool"
)

// NewHandler returns MCP handler factory registering banking tools and guide resources
func NewHandler(service *banking.Service, guide *resource.FileSystem) protoserver.NewHandler {
	return protoserver.WithDefaultHandler(context.Background(), func(h *protoserver.DefaultHandler) error {
		if err := tool.Register(h, service); err != nil {
			return err
		}
		if guide == nil {
			return nil
		}
		resources, err := guide.Resources(context.Background())
		if err != nil {
			return fmt.Errorf("failed to load guide resources: %w", err)
		}
		for _, entry := range resources {
			h.RegisterResource(entry.Metadata, entry.Handler)
		}
		return nil
	})
}
