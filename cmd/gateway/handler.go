// In file: cmd/gateway/handler.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dileep-u-k/toolhub/internal/llm"
	"github.com/dileep-u-k/toolhub/internal/logging"
	"github.com/dileep-u-k/toolhub/internal/session"
	"github.com/dileep-u-k/toolhub/internal/tools"
	"github.com/dileep-u-k/toolhub/internal/version"
)

// =================================================================================
// Gateway Handler
// =================================================================================
// The handler exposes the tool catalog, runs tools through the invocation
// gateway and manages per-session credential overrides.
//
// Credential precedence for an invocation:
//  1. "api_key" in the request body.
//  2. The key stored for the X-Session-ID session.
//  3. The gateway's default key.
// =================================================================================

type GatewayHandler struct {
	catalog  *tools.Catalog
	gateway  *llm.Gateway
	sessions session.CredentialStore
	// profiler is nil when Redis is not configured.
	profiler *llm.Profiler
	log      *logging.Logger
}

func NewGatewayHandler(catalog *tools.Catalog, gateway *llm.Gateway, sessions session.CredentialStore, profiler *llm.Profiler, log *logging.Logger) *GatewayHandler {
	return &GatewayHandler{
		catalog:  catalog,
		gateway:  gateway,
		sessions: sessions,
		profiler: profiler,
		log:      log,
	}
}

// Register mounts every route under /api/v1 plus /healthz.
func (h *GatewayHandler) Register(engine *gin.Engine) {
	engine.GET("/healthz", h.HandleHealth)

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/tools", h.HandleListTools)
		v1.GET("/tools/:id", h.HandleGetTool)
		v1.POST("/tools/:id/invoke", h.HandleInvoke)
		v1.GET("/tools/:id/stats", h.HandleToolStats)
		v1.GET("/categories", h.HandleListCategories)

		v1.POST("/sessions", h.HandleCreateSession)
		v1.GET("/sessions/:id/credential", h.HandleGetCredential)
		v1.PUT("/sessions/:id/credential", h.HandleSetCredential)
		v1.DELETE("/sessions/:id/credential", h.HandleClearCredential)
	}
}

// =================================================================================
// Catalog
// =================================================================================

type toolListResponse struct {
	Tools []tools.Descriptor `json:"tools"`
	Count int                `json:"count"`
}

// HandleListTools serves the filtered catalog with an ETag so browsers can
// revalidate cheaply.
func (h *GatewayHandler) HandleListTools(c *gin.Context) {
	category, err := tools.ParseCategory(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := tools.Filter(h.catalog.Tools(), category, c.Query("q"))
	body, err := json.Marshal(toolListResponse{Tools: filtered, Count: len(filtered)})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to encode tool list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode tool list"})
		return
	}

	etag := version.ETag("catalog", body)
	c.Header("ETag", etag)
	c.Header("Cache-Control", "no-cache")
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *GatewayHandler) HandleGetTool(c *gin.Context) {
	tool, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "tool not found"})
		return
	}
	c.JSON(http.StatusOK, tool)
}

func (h *GatewayHandler) HandleListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}

// =================================================================================
// Invocation
// =================================================================================

type invokeRequest struct {
	Input  string `json:"input"`
	APIKey string `json:"api_key"`
}

type invokeResponse struct {
	ToolID      string `json:"tool_id"`
	OutputLabel string `json:"output_label,omitempty"`
	Result      string `json:"result"`
	LatencyMS   int64  `json:"latency_ms"`
}

func (h *GatewayHandler) HandleInvoke(c *gin.Context) {
	tool, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "tool not found"})
		return
	}

	var req invokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	credential, err := h.credentialFor(c, req.APIKey)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read session credential")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session store unavailable"})
		return
	}

	ctx := c.Request.Context()
	start := time.Now()
	result, err := h.gateway.Invoke(ctx, tool.InstructionTemplate, req.Input, credential)
	latency := time.Since(start)

	// Profile writes outlive a client that hangs up mid-request.
	recordCtx := context.WithoutCancel(ctx)

	if errors.Is(err, llm.ErrEmptyInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		kind := llm.KindOf(err)
		if h.profiler != nil {
			h.profiler.RecordFailure(recordCtx, tool.ID, kind)
		}
		c.JSON(statusForKind(kind), gin.H{"error": err.Error(), "kind": kind})
		return
	}

	if h.profiler != nil {
		h.profiler.RecordSuccess(recordCtx, tool.ID, latency)
	}
	c.JSON(http.StatusOK, invokeResponse{
		ToolID:      tool.ID,
		OutputLabel: tool.OutputLabel,
		Result:      result,
		LatencyMS:   latency.Milliseconds(),
	})
}

// credentialFor applies the body > session > default precedence. It returns
// "" when the gateway's default key should be used.
func (h *GatewayHandler) credentialFor(c *gin.Context, bodyKey string) (string, error) {
	if strings.TrimSpace(bodyKey) != "" {
		return bodyKey, nil
	}
	sid := strings.TrimSpace(c.GetHeader(headerSessionID))
	if sid == "" {
		return "", nil
	}
	return h.sessions.Get(c.Request.Context(), sid)
}

func statusForKind(kind llm.ErrorKind) int {
	switch kind {
	case llm.ConfigurationError:
		return http.StatusInternalServerError
	case llm.AuthenticationError:
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

func (h *GatewayHandler) HandleToolStats(c *gin.Context) {
	if h.profiler == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profiling is disabled"})
		return
	}
	id := c.Param("id")
	if _, ok := h.catalog.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "tool not found"})
		return
	}
	profile, err := h.profiler.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("tool", id).Msg("failed to read profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read stats"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// =================================================================================
// Sessions
// =================================================================================

type credentialRequest struct {
	APIKey string `json:"api_key"`
}

func (h *GatewayHandler) HandleCreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"session_id": session.NewID()})
}

func (h *GatewayHandler) HandleGetCredential(c *gin.Context) {
	key, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"has_credential": key != ""})
}

// HandleSetCredential stores an override. A blank key clears it.
func (h *GatewayHandler) HandleSetCredential(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.sessions.Set(c.Request.Context(), c.Param("id"), req.APIKey); err != nil {
		h.sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GatewayHandler) HandleClearCredential(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context(), c.Param("id")); err != nil {
		h.sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GatewayHandler) sessionError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Error().Err(err).Msg("session store failure")
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session store unavailable"})
}

// =================================================================================
// Health
// =================================================================================

func (h *GatewayHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"build":              version.GetBuildInfo(),
		"model":              h.gateway.Model(),
		"default_credential": h.gateway.HasDefaultCredential(),
		"tools":              h.catalog.Len(),
		"profiling":          h.profiler != nil,
	})
}
