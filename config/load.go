package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/viant/afs"
	"github.com/viant/mifos-mcp/upstream"
	"github.com/viant/scy"
	"github.com/viant/scy/cred"
	"gopkg.in/yaml.v3"
)

// Environment variables
const (
	EnvBaseURL                 = "MIFOS_BASE_URL"
	EnvTenant                  = "MIFOS_TENANT"
	EnvUsername                = "MIFOS_USERNAME"
	EnvPassword                = "MIFOS_PASSWORD"
	EnvAllowDefaultCredentials = "MIFOS_ALLOW_DEFAULT_CREDENTIALS"
	EnvTimeout                 = "MIFOS_TIMEOUT"
	EnvRateLimit               = "MIFOS_RATE_LIMIT"
	EnvLogLevel                = "MIFOS_LOG_LEVEL"
	EnvTransport               = "MIFOS_TRANSPORT"
	EnvPort                    = "MIFOS_PORT"
	EnvSecretURL               = "MIFOS_SECRET_URL"
)

// Sources represents configuration sources, later sources take precedence
type Sources struct {
	URL     string            //YAML config URL (file, gs, s3, mem ...)
	EnvFile string            //.env file, missing file is ignored
	Env     map[string]string //process environment, nil means os.Environ
}

// Load builds config from defaults, YAML, .env, environment and overrides in that order
func Load(ctx context.Context, sources *Sources, overrides ...func(c *Config)) (*Config, error) {
	if sources == nil {
		sources = &Sources{}
	}
	ret := &Config{}
	fs := afs.New()
	if sources.URL != "" {
		data, err := fs.DownloadWithURL(ctx, sources.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %v: %w", sources.URL, err)
		}
		if err = yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode config %v: %w", sources.URL, err)
		}
	}
	if sources.EnvFile != "" {
		if ok, _ := fs.Exists(ctx, sources.EnvFile); ok {
			values, err := godotenv.Read(sources.EnvFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read env file %v: %w", sources.EnvFile, err)
			}
			if err = ret.applyEnv(values); err != nil {
				return nil, fmt.Errorf("invalid %v: %w", sources.EnvFile, err)
			}
		}
	}
	env := sources.Env
	if env == nil {
		env = environ()
	}
	if err := ret.applyEnv(env); err != nil {
		return nil, err
	}
	for _, override := range overrides {
		override(ret)
	}
	ret.Init()
	if err := ret.loadSecret(ctx); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Config) applyEnv(env map[string]string) error {
	if value, ok := env[EnvBaseURL]; ok && value != "" {
		c.Upstream.BaseURL = value
	}
	if value, ok := env[EnvTenant]; ok && value != "" {
		c.Upstream.Tenant = value
	}
	if value, ok := env[EnvLogLevel]; ok && value != "" {
		c.LogLevel = strings.ToLower(value)
	}
	if value, ok := env[EnvTransport]; ok && value != "" {
		c.Transport.Type = value
	}
	if value, ok := env[EnvSecretURL]; ok && value != "" {
		if c.Secret == nil {
			c.Secret = &Secret{}
		}
		c.Secret.URL = value
	}
	username, password := env[EnvUsername], env[EnvPassword]
	if username != "" || password != "" {
		if c.DefaultCredentials == nil {
			c.DefaultCredentials = &upstream.Credentials{}
		}
		if username != "" {
			c.DefaultCredentials.Username = username
		}
		if password != "" {
			c.DefaultCredentials.Password = password
		}
	}
	if value, ok := env[EnvAllowDefaultCredentials]; ok && value != "" {
		allow, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %v: %w", EnvAllowDefaultCredentials, err)
		}
		c.AllowDefaultCredentials = allow
	}
	if value, ok := env[EnvTimeout]; ok && value != "" {
		timeout, err := parseTimeout(value)
		if err != nil {
			return fmt.Errorf("invalid %v: %w", EnvTimeout, err)
		}
		c.Upstream.Timeout = timeout
	}
	if value, ok := env[EnvRateLimit]; ok && value != "" {
		limit, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid %v: %w", EnvRateLimit, err)
		}
		c.Upstream.RateLimit = limit
	}
	if value, ok := env[EnvPort]; ok && value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %v: %w", EnvPort, err)
		}
		c.Transport.Port = port
	}
	return nil
}

// parseTimeout accepts a duration (15s) or whole seconds (15)
func parseTimeout(value string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(value)
}

func (c *Config) loadSecret(ctx context.Context) error {
	if !c.AllowDefaultCredentials || c.Secret == nil || c.Secret.URL == "" {
		return nil
	}
	secrets := scy.New()
	secret, err := secrets.Load(ctx, scy.NewResource(&cred.Basic{}, c.Secret.URL, c.Secret.Key))
	if err != nil {
		return fmt.Errorf("failed to load secret %v: %w", c.Secret.URL, err)
	}
	basic, ok := secret.Target.(*cred.Basic)
	if !ok {
		return fmt.Errorf("unsupported secret type: %T", secret.Target)
	}
	c.DefaultCredentials = &upstream.Credentials{Username: basic.Username, Password: basic.Password}
	return nil
}

func environ() map[string]string {
	ret := map[string]string{}
	for _, pair := range os.Environ() {
		if index := strings.Index(pair, "="); index > 0 {
			ret[pair[:index]] = pair[index+1:]
		}
	}
	return ret
}
