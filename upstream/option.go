package upstream

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Option represents a service option
type Option func(s *Service)

// WithHTTPClient sets http client, the client timeout is left untouched
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets metrics collector
func WithMetrics(metrics *Metrics) Option {
	return func(s *Service) {
		s.metrics = metrics
	}
}
