package upstream

import (
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public self-service demo deployment.
	DefaultBaseURL = "https://tt.mifos.community"
	// DefaultAPIPath is the versioned API root every endpoint path is appended to.
	DefaultAPIPath = "/fineract-provider/api/v1"
	// DefaultTenant is used when neither the request nor the configuration names a tenant.
	DefaultTenant = "default"
	// DefaultTimeout bounds a single upstream call.
	DefaultTimeout = 30 * time.Second

	// TenantHeader identifies the tenant on every upstream request.
	TenantHeader = "Fineract-Platform-TenantId"
)

// Config represents upstream endpoint configuration
type Config struct {
	BaseURL   string        `yaml:"baseURL" json:"baseURL"`
	APIPath   string        `yaml:"apiPath" json:"apiPath"`
	Tenant    string        `yaml:"tenant" json:"tenant"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	RateLimit float64       `yaml:"rateLimit" json:"rateLimit"` //requests per second, 0 - unlimited
	Burst     int           `yaml:"burst" json:"burst"`
}

// Init sets defaults for unset fields
func (c *Config) Init() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.APIPath == "" {
		c.APIPath = DefaultAPIPath
	}
	if c.Tenant == "" {
		c.Tenant = DefaultTenant
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RateLimit > 0 && c.Burst <= 0 {
		c.Burst = 1
	}
}

// URL returns full upstream URL for the supplied endpoint path
func (c *Config) URL(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + c.APIPath + path
}
