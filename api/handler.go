package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/viant/mifos-mcp/banking"
	"github.com/viant/mifos-mcp/resource"
	"github.com/viant/mifos-mcp/upstream"
)

// Error represents REST error body
type Error struct {
	Error      bool   `json:"error"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// NewError creates an error body
func NewError(statusCode int, message string) *Error {
	return &Error{Error: true, StatusCode: statusCode, Message: message}
}

// Handler represents REST tool adapter
type Handler struct {
	service *banking.Service
	guide   *resource.FileSystem
	logger  zerolog.Logger
	tools   []*ToolInfo
}

// ListTools returns tools with input schemas
func (h *Handler) ListTools(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.tools)
}

// CallTool decodes the request body into tool input and forwards the call.
// Basic authorization header fills missing credentials of authenticated tools.
func (h *Handler) CallTool(ctx *gin.Context) {
	name := ctx.Param("name")
	tool, ok := banking.Lookup(name)
	if !ok {
		ctx.JSON(http.StatusNotFound, NewError(http.StatusNotFound, "unknown tool: "+name))
		return
	}
	data, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	input, err := tool.Decode(data)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	if authenticated, ok := input.(banking.Authenticated); ok && authenticated.Credentials().IsEmpty() {
		if username, password, ok := ctx.Request.BasicAuth(); ok {
			authenticated.SetCredentials(&upstream.Credentials{Username: username, Password: password})
		}
	}
	callCtx := banking.WithTenant(ctx.Request.Context(), ctx.GetHeader(TenantHeader))
	result, err := h.service.Invoke(callCtx, tool.Name, input)
	if err != nil {
		h.writeError(ctx, tool.Name, err)
		return
	}
	if failure := result.Failure; failure != nil {
		ctx.JSON(failure.StatusCode, NewError(failure.StatusCode, failure.Message))
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", result.Body)
}

func (h *Handler) writeError(ctx *gin.Context, tool string, err error) {
	var validationErr *banking.ValidationError
	var transportErr *upstream.TransportError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, NewError(http.StatusBadRequest, err.Error()))
	case errors.As(err, &transportErr):
		h.logger.Warn().Str("tool", tool).Str("requestId", ctx.GetString(requestIDKey)).Err(transportErr.Err).Msg("upstream unavailable")
		ctx.JSON(http.StatusBadGateway, NewError(http.StatusBadGateway, err.Error()))
	default:
		h.logger.Error().Str("tool", tool).Str("requestId", ctx.GetString(requestIDKey)).Err(err).Msg("tool call failed")
		ctx.JSON(http.StatusInternalServerError, NewError(http.StatusInternalServerError, err.Error()))
	}
}

// ListResources lists guide documents
func (h *Handler) ListResources(ctx *gin.Context) {
	documents, err := h.guide.Documents(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewError(http.StatusInternalServerError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, documents)
}

// GetResource returns guide document content
func (h *Handler) GetResource(ctx *gin.Context) {
	name := ctx.Param("name")
	document, err := h.guide.Document(ctx.Request.Context(), name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewError(http.StatusInternalServerError, err.Error()))
		return
	}
	if document == nil {
		ctx.JSON(http.StatusNotFound, NewError(http.StatusNotFound, "unknown resource: "+name))
		return
	}
	ctx.Data(http.StatusOK, document.MimeType+"; charset=utf-8", []byte(document.Text))
}

// Health reports liveness
func (h *Handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewHandler creates REST handler
func NewHandler(service *banking.Service, guide *resource.FileSystem, logger zerolog.Logger) *Handler {
	ret := &Handler{service: service, guide: guide, logger: logger}
	for _, tool := range banking.Tools() {
		ret.tools = append(ret.tools, NewToolInfo(tool, service.RequiresCredentials(tool)))
	}
	return ret
}
