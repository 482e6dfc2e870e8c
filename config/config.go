package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/viant/mifos-mcp/api"
	"github.com/viant/mifos-mcp/security"
	"github.com/viant/mifos-mcp/upstream"
)

// Transport types
const (
	TransportStdio      = "stdio"
	TransportSSE        = "sse"
	TransportStreamable = "streamable"
	TransportREST       = "rest"
)

const (
	// DefaultPort is used by HTTP transports when no port is configured
	DefaultPort = 5000
	// DefaultSecretKey decrypts default credentials secret
	DefaultSecretKey = "blowfish://default"
)

type (
	// Config represents server configuration
	Config struct {
		Name     string `yaml:"name" json:"name"`
		Version  string `yaml:"version" json:"version"`
		LogLevel string `yaml:"logLevel" json:"logLevel"`
		// ProtocolVersion overrides MCP protocol version announced by the server
		ProtocolVersion string          `yaml:"protocol,omitempty" json:"protocol,omitempty"`
		Upstream        upstream.Config `yaml:"upstream" json:"upstream"`
		// AllowDefaultCredentials enables falling back to DefaultCredentials when a call omits credentials
		AllowDefaultCredentials bool                  `yaml:"allowDefaultCredentials" json:"allowDefaultCredentials"`
		DefaultCredentials      *upstream.Credentials `yaml:"defaultCredentials,omitempty" json:"-"`
		Secret                  *Secret               `yaml:"secret,omitempty" json:"secret,omitempty"`
		Transport               Transport             `yaml:"transport" json:"transport"`
	}

	// Secret represents encrypted default credentials location
	Secret struct {
		URL string `yaml:"url" json:"url"`
		Key string `yaml:"key" json:"key"`
	}

	// Transport represents host protocol settings
	Transport struct {
		Type string `yaml:"type" json:"type"`
		Port int    `yaml:"port" json:"port"`
		// RESTPort starts the REST frontend next to an MCP transport, 0 disables it
		RESTPort int       `yaml:"restPort" json:"restPort"`
		Cors     *api.Cors `yaml:"cors,omitempty" json:"cors,omitempty"`
		// Auth protects tool calls and resource reads served over HTTP with bearer tokens
		Auth *security.Config `yaml:"auth,omitempty" json:"auth,omitempty"`
	}
)

// Init sets defaults
func (c *Config) Init() {
	if c.Name == "" {
		c.Name = "mifos-mobile-banking"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.LogLevel == "" {
		c.LogLevel = zerolog.LevelInfoValue
	}
	c.Upstream.Init()
	if c.Transport.Type == "" {
		c.Transport.Type = TransportStdio
	}
	if c.Transport.Port == 0 && c.Transport.Type != TransportStdio {
		c.Transport.Port = DefaultPort
	}
	if c.Secret != nil && c.Secret.Key == "" {
		c.Secret.Key = DefaultSecretKey
	}
}

// Validate checks if config is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Upstream.BaseURL) == "" {
		return fmt.Errorf("upstream baseURL was empty")
	}
	if !strings.HasPrefix(c.Upstream.BaseURL, "http://") && !strings.HasPrefix(c.Upstream.BaseURL, "https://") {
		return fmt.Errorf("invalid upstream baseURL: %v", c.Upstream.BaseURL)
	}
	if strings.TrimSpace(c.Upstream.Tenant) == "" {
		return fmt.Errorf("upstream tenant was empty")
	}
	if c.Upstream.RateLimit < 0 {
		return fmt.Errorf("invalid upstream rateLimit: %v", c.Upstream.RateLimit)
	}
	switch c.Transport.Type {
	case TransportStdio, TransportSSE, TransportStreamable, TransportREST:
	default:
		return fmt.Errorf("unsupported transport type: %v", c.Transport.Type)
	}
	if c.Transport.Port < 0 || c.Transport.Port > 65535 {
		return fmt.Errorf("invalid port: %v", c.Transport.Port)
	}
	if c.Transport.RESTPort < 0 || c.Transport.RESTPort > 65535 {
		return fmt.Errorf("invalid REST port: %v", c.Transport.RESTPort)
	}
	if c.Transport.Auth != nil {
		if err := c.Transport.Auth.Validate(); err != nil {
			return err
		}
	}
	if c.AllowDefaultCredentials && c.Transport.ExposesHTTP() && c.Transport.Auth == nil {
		return fmt.Errorf("transport auth is required when default credentials are allowed on %v transport", c.httpTransport())
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Credentials returns default credentials if explicitly enabled
func (c *Config) Credentials() *upstream.Credentials {
	if !c.AllowDefaultCredentials || c.DefaultCredentials.IsEmpty() {
		return nil
	}
	return c.DefaultCredentials
}

func (c *Config) httpTransport() string {
	if c.Transport.Type == TransportStdio {
		return TransportREST
	}
	return c.Transport.Type
}

// IsHTTP returns true for MCP transports served over HTTP
func (t *Transport) IsHTTP() bool {
	return t.Type == TransportSSE || t.Type == TransportStreamable
}

// ExposesHTTP returns true if banking tools are reachable over HTTP, by MCP or the REST frontend
func (t *Transport) ExposesHTTP() bool {
	return t.IsHTTP() || t.Type == TransportREST || t.RESTPort > 0
}
