package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/viant/mifos-mcp/security"
)

const (
	// RequestIDHeader carries request correlation id
	RequestIDHeader = "X-Request-Id"
	// TenantHeader overrides the configured upstream tenant for a single call
	TenantHeader = "Fineract-Platform-TenantId"

	requestIDKey = "requestID"
)

// RequestID assigns a request id unless the caller supplied one
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// AccessLog logs every request, query strings and bodies are left out
func AccessLog(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		started := time.Now()
		ctx.Next()
		status := ctx.Writer.Status()
		event := logger.Info()
		if status >= http.StatusInternalServerError {
			event = logger.Warn()
		}
		event.Str("requestId", ctx.GetString(requestIDKey)).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", status).
			Dur("elapsed", time.Since(started)).
			Msg("request")
	}
}

// Recovery converts panics into 500 responses
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(ctx *gin.Context, recovered any) {
		logger.Error().Str("requestId", ctx.GetString(requestIDKey)).Interface("panic", recovered).Msg("request panicked")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, NewError(http.StatusInternalServerError, "internal server error"))
	})
}

// BearerAuth rejects requests without a bearer token the verifier accepts
func BearerAuth(verifier *security.Verifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := security.BearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			ctx.Header("WWW-Authenticate", "Bearer")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewError(http.StatusUnauthorized, "bearer token is required"))
			return
		}
		if _, err := verifier.Verify(token); err != nil {
			ctx.Header("WWW-Authenticate", `Bearer error="invalid_token"`)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewError(http.StatusUnauthorized, err.Error()))
			return
		}
		ctx.Next()
	}
}
