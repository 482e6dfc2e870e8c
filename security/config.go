package security

import (
	"fmt"
	"strings"

	"github.com/viant/mcp-protocol/authorization"
	"github.com/viant/mcp-protocol/oauth2/meta"
	"github.com/viant/mcp/server/auth"
	"golang.org/x/oauth2"
)

// Config represents bearer token protection of HTTP transports
type Config struct {
	// Resource identifies this server in protected resource metadata
	Resource             string   `yaml:"resource" json:"resource"`
	AuthorizationServers []string `yaml:"authorizationServers" json:"authorizationServers"`
	RequiredScopes       []string `yaml:"requiredScopes,omitempty" json:"requiredScopes,omitempty"`
	ExcludeURI           string   `yaml:"excludeURI,omitempty" json:"excludeURI,omitempty"`
	// PublicKeyURL locates PEM encoded RSA public key verifying bearer tokens
	PublicKeyURL       string              `yaml:"publicKeyURL" json:"publicKeyURL"`
	Issuer             string              `yaml:"issuer,omitempty" json:"issuer,omitempty"`
	Audience           string              `yaml:"audience,omitempty" json:"audience,omitempty"`
	BackendForFrontend *BackendForFrontend `yaml:"backendForFrontend,omitempty" json:"backendForFrontend,omitempty"`
}

// BackendForFrontend represents OAuth2 client used to obtain tokens on behalf of browser based clients
type BackendForFrontend struct {
	ClientID     string   `yaml:"clientID" json:"clientID"`
	ClientSecret string   `yaml:"clientSecret" json:"-"`
	AuthURL      string   `yaml:"authURL" json:"authURL"`
	TokenURL     string   `yaml:"tokenURL" json:"tokenURL"`
	RedirectURI  string   `yaml:"redirectURI" json:"redirectURI"`
	Scopes       []string `yaml:"scopes,omitempty" json:"scopes,omitempty"`
}

// Validate checks if config is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Resource) == "" {
		return fmt.Errorf("auth resource was empty")
	}
	if len(c.AuthorizationServers) == 0 {
		return fmt.Errorf("auth authorizationServers were empty")
	}
	if strings.TrimSpace(c.PublicKeyURL) == "" {
		return fmt.Errorf("auth publicKeyURL was empty")
	}
	if bff := c.BackendForFrontend; bff != nil {
		if bff.ClientID == "" || bff.AuthURL == "" || bff.TokenURL == "" {
			return fmt.Errorf("auth backendForFrontend requires clientID, authURL and tokenURL")
		}
	}
	return nil
}

// Policy returns authorization policy protecting every tool call and resource read
func (c *Config) Policy() *authorization.Policy {
	return &authorization.Policy{
		ExcludeURI: c.ExcludeURI,
		Global: &authorization.Authorization{
			ProtectedResourceMetadata: &meta.ProtectedResourceMetadata{
				Resource:             c.Resource,
				AuthorizationServers: c.AuthorizationServers,
			},
			RequiredScopes: c.RequiredScopes,
		},
	}
}

// OAuth2Config returns OAuth2 client config
func (b *BackendForFrontend) OAuth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     b.ClientID,
		ClientSecret: b.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  b.AuthURL,
			TokenURL: b.TokenURL,
		},
		RedirectURL: b.RedirectURI,
		Scopes:      b.Scopes,
	}
}

// AuthBackendForFrontend returns MCP authorization service backend-for-frontend settings, nil if not configured
func (c *Config) AuthBackendForFrontend() *auth.BackendForFrontend {
	if c.BackendForFrontend == nil {
		return nil
	}
	return &auth.BackendForFrontend{
		Client:      c.BackendForFrontend.OAuth2Config(),
		RedirectURI: c.BackendForFrontend.RedirectURI,
	}
}
