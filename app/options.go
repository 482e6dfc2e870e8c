package app

import (
	"github.com/viant/mifos-mcp/config"
)

// Options represents command line options, set options override every other config source
type Options struct {
	ConfigURL               string `short:"c" long:"config" description:"yaml config URL"`
	EnvFile                 string `short:"e" long:"env" description:"dotenv file" default:".env"`
	Transport               string `short:"T" long:"transport" description:"transport type" choice:"stdio" choice:"sse" choice:"streamable" choice:"rest"`
	Port                    int    `short:"p" long:"port" description:"HTTP transport port"`
	RESTPort                int    `short:"r" long:"rest-port" description:"REST frontend port served next to MCP transport"`
	BaseURL                 string `short:"u" long:"base-url" description:"upstream base URL"`
	Tenant                  string `short:"t" long:"tenant" description:"default upstream tenant"`
	LogLevel                string `short:"l" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	AllowDefaultCredentials bool   `long:"allow-default-credentials" description:"use configured credentials when a call omits them"`
	SecretURL               string `short:"s" long:"secret" description:"encrypted default credentials URL"`
	SecretKey               string `short:"k" long:"secret-key" description:"default credentials secret key"`
	ProtocolVersion         string `long:"protocol" description:"mcp protocol version"`
}

// Sources returns config sources
func (o *Options) Sources() *config.Sources {
	return &config.Sources{URL: o.ConfigURL, EnvFile: o.EnvFile}
}

// Apply overrides config with the set options
func (o *Options) Apply(c *config.Config) {
	if o.Transport != "" {
		c.Transport.Type = o.Transport
	}
	if o.Port > 0 {
		c.Transport.Port = o.Port
	}
	if o.RESTPort > 0 {
		c.Transport.RESTPort = o.RESTPort
	}
	if o.BaseURL != "" {
		c.Upstream.BaseURL = o.BaseURL
	}
	if o.Tenant != "" {
		c.Upstream.Tenant = o.Tenant
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.ProtocolVersion != "" {
		c.ProtocolVersion = o.ProtocolVersion
	}
	if o.AllowDefaultCredentials {
		c.AllowDefaultCredentials = true
	}
	if o.SecretURL != "" {
		if c.Secret == nil {
			c.Secret = &config.Secret{}
		}
		c.Secret.URL = o.SecretURL
	}
	if o.SecretKey != "" && c.Secret != nil {
		c.Secret.Key = o.SecretKey
	}
}
