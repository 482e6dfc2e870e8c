package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/viant/mifos-mcp/security"
)

// Options represents router options
type Options struct {
	Cors     *Cors
	Gatherer prometheus.Gatherer //nil disables /metrics
	Logger   zerolog.Logger
	// Verifier protects tool calls and resource reads with bearer tokens, nil leaves them open
	Verifier *security.Verifier
}

// NewRouter creates REST router
func NewRouter(handler *Handler, options *Options) *gin.Engine {
	if options == nil {
		options = &Options{Logger: zerolog.Nop()}
	}
	router := gin.New()
	router.Use(RequestID(), Recovery(options.Logger), AccessLog(options.Logger))
	if options.Cors != nil {
		router.Use(options.Cors.Middleware())
	}
	router.GET("/healthz", handler.Health)
	if options.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(options.Gatherer, promhttp.HandlerOpts{})))
	}
	var protected []gin.HandlerFunc
	if options.Verifier != nil {
		protected = append(protected, BearerAuth(options.Verifier))
	}
	group := router.Group("/api")
	group.GET("/tools", handler.ListTools)
	group.POST("/tools/:name", append(protected, handler.CallTool)...)
	group.GET("/resources", handler.ListResources)
	group.GET("/resources/:name", append(protected, handler.GetResource)...)
	return router
}

// NewServer creates REST HTTP server
func NewServer(addr string, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
