package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	stdiosrv "github.com/viant/jsonrpc/transport/server/stdio"
	mifos "github.com/viant/mifos-mcp"
	"github.com/viant/mifos-mcp/api"
	"github.com/viant/mifos-mcp/banking"
	"github.com/viant/mifos-mcp/config"
	"github.com/viant/mifos-mcp/resource"
	"github.com/viant/mifos-mcp/security"
	"github.com/viant/mifos-mcp/upstream"
)

// ShutdownTimeout bounds graceful shutdown of HTTP servers
const ShutdownTimeout = 5 * time.Second

// Service represents composed banking server
type Service struct {
	config   *config.Config
	logger   zerolog.Logger
	registry *prometheus.Registry
	banking  *banking.Service
	guide    *resource.FileSystem
	verifier *security.Verifier
}

// Banking returns banking tools service
func (s *Service) Banking() *banking.Service {
	return s.banking
}

// Router returns REST router
func (s *Service) Router() http.Handler {
	handler := api.NewHandler(s.banking, s.guide, s.logger.With().Str("component", "api").Logger())
	return api.NewRouter(handler, &api.Options{
		Cors:     s.config.Transport.Cors,
		Gatherer: s.registry,
		Logger:   s.logger.With().Str("component", "api").Logger(),
		Verifier: s.verifier,
	})
}

// serverOptions returns MCP server options, HTTP transports also serve /metrics and /healthz
func (s *Service) serverOptions() *mifos.ServerOptions {
	metrics := promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
	options := &mifos.ServerOptions{
		Name:            s.config.Name,
		Version:         s.config.Version,
		ProtocolVersion: s.config.ProtocolVersion,
		LoggerName:      s.config.Name,
		Transport: &mifos.ServerTransport{
			Type: s.config.Transport.Type,
			Port: s.config.Transport.Port,
			Cors: s.config.Transport.Cors,
			CustomHandlers: map[string]http.HandlerFunc{
				"/metrics": metrics.ServeHTTP,
				"/healthz": func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					_, _ = w.Write([]byte(`{"status":"ok"}`))
				},
			},
		},
	}
	if auth := s.config.Transport.Auth; auth != nil && s.verifier != nil {
		options.Transport.Auth = &mifos.ServerOptionAuth{
			Policy:             auth.Policy(),
			BackendForFrontend: auth.AuthBackendForFrontend(),
			TokenVerifier:      s.verifier.Middleware,
		}
	}
	return options
}

// Serve serves the configured transport until it fails or ctx is done
func (s *Service) Serve(ctx context.Context) error {
	transport := s.config.Transport
	s.logger.Info().
		Str("baseURL", s.config.Upstream.BaseURL).
		Str("tenant", s.config.Upstream.Tenant).
		Str("transport", transport.Type).
		Int("port", transport.Port).
		Msg("starting mobile banking server")
	if transport.Type == config.TransportREST {
		return s.serveHTTP(ctx, api.NewServer(fmt.Sprintf(":%d", transport.Port), s.Router()))
	}
	srv, err := mifos.NewServer(mifos.NewHandler(s.banking, s.guide), s.serverOptions())
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	var servers []*http.Server
	if transport.RESTPort > 0 {
		servers = append(servers, api.NewServer(fmt.Sprintf(":%d", transport.RESTPort), s.Router()))
	}
	if transport.IsHTTP() {
		servers = append(servers, srv.HTTP(ctx, fmt.Sprintf(":%d", transport.Port)))
		return s.serveHTTP(ctx, servers...)
	}
	stdioCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	if len(servers) > 0 {
		go func() { done <- s.serveHTTP(stdioCtx, servers...) }()
	}
	err = stdiosrv.New(stdioCtx, srv.NewHandler).ListenAndServe()
	cancel()
	if len(servers) > 0 {
		if httpErr := <-done; err == nil {
			err = httpErr
		}
	}
	return err
}

// serveHTTP runs servers until one fails or ctx is done, then shuts all of them down
func (s *Service) serveHTTP(ctx context.Context, servers ...*http.Server) error {
	errs := make(chan error, len(servers))
	for _, server := range servers {
		go func(server *http.Server) {
			s.logger.Info().Str("addr", server.Addr).Msg("listening")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- fmt.Errorf("failed to serve %v: %w", server.Addr, err)
			}
		}(server)
	}
	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down")
	case err = <-errs:
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	for _, server := range servers {
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			s.logger.Error().Err(shutdownErr).Str("addr", server.Addr).Msg("failed to shut down")
		}
	}
	return err
}

// New creates a service
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Service, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := upstream.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}
	forwarder := upstream.New(cfg.Upstream,
		upstream.WithLogger(logger.With().Str("component", "upstream").Logger()),
		upstream.WithMetrics(metrics))
	var options []banking.Option
	if credentials := cfg.Credentials(); credentials != nil {
		logger.Warn().Msg("default credentials enabled, calls without credentials act on behalf of the configured user")
		options = append(options, banking.WithDefaultCredentials(credentials))
	}
	var verifier *security.Verifier
	if auth := cfg.Transport.Auth; auth != nil {
		if verifier, err = security.NewVerifier(ctx, auth); err != nil {
			return nil, err
		}
	}
	gin.SetMode(gin.ReleaseMode)
	return &Service{
		config:   cfg,
		logger:   logger,
		registry: registry,
		banking:  banking.New(forwarder, options...),
		guide:    resource.NewGuide(),
		verifier: verifier,
	}, nil
}
