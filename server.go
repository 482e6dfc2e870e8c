package mifos

import (
	"fmt"
	"net/http"

	"github.com/viant/mcp-protocol/authorization"
	"github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"
	"github.com/viant/mcp/server"
	"github.com/viant/mcp/server/auth"
	"github.com/viant/mifos-mcp/api"
)

// ServerOptions defines options for configuring the banking MCP server.
type ServerOptions struct {
	Name            string           `yaml:"name" json:"name"`
	Version         string           `yaml:"version" json:"version"`
	ProtocolVersion string           `yaml:"protocol" json:"protocol"`
	LoggerName      string           `yaml:"loggerName" json:"loggerName"`
	Transport       *ServerTransport `yaml:"transport" json:"transport"`
}

// ServerTransport defines MCP transport settings
type ServerTransport struct {
	Type string            `yaml:"type" json:"type"` //stdio, sse or streamable
	Port int               `yaml:"port" json:"port"`
	Cors *api.Cors         `yaml:"cors" json:"cors"`
	Auth *ServerOptionAuth `yaml:"-" json:"-"`
	// CustomHandlers are served next to the MCP endpoints by HTTP transports (e.g. /metrics)
	CustomHandlers map[string]http.HandlerFunc `yaml:"-" json:"-"`
}

// ServerOptionAuth defines HTTP transport authorization
type ServerOptionAuth struct {
	ProtectedResourcesHandler http.HandlerFunc
	Authorizer                server.Middleware
	// TokenVerifier runs after the authorizer, rejecting bearer tokens it cannot verify
	TokenVerifier      server.Middleware
	Policy             *authorization.Policy
	BackendForFrontend *auth.BackendForFrontend
}

// NewServer creates a new MCP server with the given handler and options.
func NewServer(newHandler protoserver.NewHandler, options *ServerOptions) (*server.Server, error) {
	if newHandler == nil {
		return nil, fmt.Errorf("new handler was nil")
	}
	serverOptions := []server.Option{server.WithNewHandler(newHandler)}
	useStreaming := false
	if options != nil {
		if options.Name != "" || options.Version != "" {
			serverOptions = append(serverOptions, server.WithImplementation(schema.Implementation{
				Name:    options.Name,
				Version: options.Version,
			}))
		}
		if options.ProtocolVersion != "" {
			serverOptions = append(serverOptions, server.WithProtocolVersion(options.ProtocolVersion))
		}
		if options.LoggerName != "" {
			serverOptions = append(serverOptions, server.WithLoggerName(options.LoggerName))
		}
		if transport := options.Transport; transport != nil {
			switch transport.Type {
			case "streamable":
				useStreaming = true
			case "sse", "stdio", "":
			default:
				return nil, fmt.Errorf("unsupported MCP transport: %v", transport.Type)
			}
			if transport.Port > 0 {
				serverOptions = append(serverOptions, server.WithEndpointAddress(fmt.Sprintf(":%v", transport.Port)))
			}
			if transport.Cors != nil {
				serverOptions = append(serverOptions, server.WithCORS(mcpCors(transport.Cors)))
			}
			authOptions, err := authServerOptions(transport.Auth)
			if err != nil {
				return nil, err
			}
			serverOptions = append(serverOptions, authOptions...)
			for path, handler := range transport.CustomHandlers {
				serverOptions = append(serverOptions, server.WithCustomHTTPHandler(path, handler))
			}
		}
	}
	srv, err := server.New(serverOptions...)
	if err != nil {
		return nil, err
	}
	if useStreaming {
		srv.UseStreamableHTTP(true)
	}
	return srv, nil
}

func authServerOptions(authOptions *ServerOptionAuth) ([]server.Option, error) {
	if authOptions == nil {
		return nil, nil
	}
	protectedResources, authorizer := authOptions.ProtectedResourcesHandler, authOptions.Authorizer
	if authOptions.Policy != nil {
		authService, err := auth.New(&auth.Config{Policy: authOptions.Policy, BackendForFrontend: authOptions.BackendForFrontend})
		if err != nil {
			return nil, fmt.Errorf("failed to create authorization service: %w", err)
		}
		if protectedResources == nil {
			protectedResources = authService.ProtectedResourcesHandler
		}
		if authorizer == nil {
			authorizer = authService.Middleware
		}
	}
	if verifier := authOptions.TokenVerifier; verifier != nil {
		if authorizer == nil {
			authorizer = verifier
		} else {
			policyAuthorizer := authorizer
			authorizer = func(next http.Handler) http.Handler {
				return policyAuthorizer(verifier(next))
			}
		}
	}
	var ret []server.Option
	if protectedResources != nil {
		ret = append(ret, server.WithProtectedResourcesHandler(protectedResources))
	}
	if authorizer != nil {
		ret = append(ret, server.WithAuthorizer(authorizer))
	}
	return ret, nil
}

func mcpCors(cors *api.Cors) *server.Cors {
	return &server.Cors{
		AllowCredentials: cors.AllowCredentials,
		AllowHeaders:     cors.AllowHeaders,
		AllowMethods:     cors.AllowMethods,
		AllowOrigins:     cors.AllowOrigins,
		ExposeHeaders:    cors.ExposeHeaders,
		MaxAge:           cors.MaxAge,
	}
}
