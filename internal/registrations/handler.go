package registrations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/communityday/registrations/pkg/response"
)

// Request is one inbound submission, independent of transport.
type Request struct {
	Method string
	Body   []byte
}

// Handler handles registration HTTP endpoints.
type Handler struct {
	svc    *Service
	logger *zap.Logger
}

// NewHandler creates a registrations handler.
func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

// Handle runs one request through preflight, validation and persistence and
// always returns a response carrying CORS headers.
func (h *Handler) Handle(ctx context.Context, req Request) response.Response {
	if req.Method == http.MethodOptions {
		return response.Preflight()
	}
	reg, err := h.svc.Register(ctx, req.Body)
	if err != nil {
		return h.failure(err)
	}
	return response.Created(reg.ID)
}

func (h *Handler) failure(err error) response.Response {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return response.BadRequest(vErr.Message)
	}
	h.logger.Error("registration failed", zap.Error(err))
	return response.Internal(err.Error())
}

// RegisterRoutes mounts POST and OPTIONS for each path.
func (h *Handler) RegisterRoutes(r gin.IRoutes, paths ...string) {
	for _, p := range paths {
		r.POST(p, h.Register)
		r.OPTIONS(p, h.Register)
	}
}

// Register handles POST and OPTIONS /registrations.
func (h *Handler) Register(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	h.logger.Info("received request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.ByteString("body", body),
	)
	if err != nil {
		response.Write(c, h.failure(&InternalError{Cause: fmt.Errorf("read body: %w", err)}))
		return
	}
	response.Write(c, h.Handle(c.Request.Context(), Request{Method: c.Request.Method, Body: body}))
}
