package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Forwarder forwards a request to the upstream platform
type Forwarder interface {
	Forward(ctx context.Context, request *Request) (*Result, error)
}

// Service represents upstream request forwarder
type Service struct {
	config  Config
	client  *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
	metrics *Metrics
}

// Config returns service config
func (s *Service) Config() Config {
	return s.config
}

// Forward performs exactly one upstream call and normalizes its outcome.
// A non nil error is returned for invalid requests and transport failures (*TransportError),
// upstream rejections are reported with Result.Failure.
func (s *Service) Forward(ctx context.Context, request *Request) (*Result, error) {
	if !isSupportedMethod(request.Method) {
		return nil, fmt.Errorf("unsupported method: %q", request.Method)
	}
	URL := s.config.URL(request.Path)
	var body io.Reader
	if request.Payload != nil {
		data, err := json.Marshal(request.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %v payload: %w", request.Name, err)
		}
		body = bytes.NewReader(data)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, request.Method, URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request %v %v: %w", request.Method, URL, err)
	}
	tenant := request.Tenant
	if tenant == "" {
		tenant = s.config.Tenant
	}
	httpRequest.Header.Set(TenantHeader, tenant)
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Accept", "application/json")
	if request.Authorization != "" {
		httpRequest.Header.Set("Authorization", request.Authorization)
	}

	started := time.Now()
	result, err := s.do(ctx, httpRequest)
	elapsed := time.Since(started)
	s.metrics.observe(request, result, err, elapsed)
	if err != nil {
		s.logger.Debug().Str("tool", request.Name).Str("method", request.Method).Str("path", request.Path).
			Dur("elapsed", elapsed).Err(err).Msg("upstream call failed")
		return nil, &TransportError{Method: request.Method, URL: URL, Err: err}
	}
	event := s.logger.Debug().Str("tool", request.Name).Str("method", request.Method).Str("path", request.Path).Dur("elapsed", elapsed)
	if result.Failure != nil {
		event = event.Int("status", result.Failure.StatusCode)
	}
	event.Msg("upstream call completed")
	return result, nil
}

func (s *Service) do(ctx context.Context, httpRequest *http.Request) (*Result, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	response, err := s.client.Do(httpRequest)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return newResult(response.StatusCode, data), nil
}

// New creates upstream service
func New(config Config, options ...Option) *Service {
	config.Init()
	ret := &Service{
		config: config,
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.client == nil {
		ret.client = &http.Client{Timeout: config.Timeout}
	}
	if config.RateLimit > 0 {
		ret.limiter = rate.NewLimiter(rate.Limit(config.RateLimit), config.Burst)
	}
	return ret
}
