package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/hpungsan/wodgen/internal/config"
	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/library"
	"github.com/hpungsan/wodgen/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	lib         *library.Library
	cfg         *config.Config
	workoutsDir string
	logger      *zap.Logger

	// mu serializes tool calls. The stdio server runs calls on a worker
	// pool, and a generate reads and rewrites the snooze list.
	mu sync.Mutex

	// env returns the collaborators for one call. Tests replace it.
	env func() ops.Env
}

// NewHandlers creates a new Handlers instance. Every call gets a freshly
// seeded random source.
func NewHandlers(lib *library.Library, cfg *config.Config, workoutsDir string, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handlers{lib: lib, cfg: cfg, workoutsDir: workoutsDir, logger: logger}
	h.env = func() ops.Env {
		return ops.Env{Rand: ops.NewRand(nil), Now: time.Now, Logger: h.logger}
	}
	return h
}

// GenerateRequest represents the arguments for workout_generate.
type GenerateRequest struct {
	Types      string `json:"types"`
	Groups     *int   `json:"groups,omitempty"`
	Level      string `json:"level,omitempty"`
	Bodyweight *bool  `json:"bodyweight,omitempty"`
}

// RenderRequest represents the arguments for workout_render.
type RenderRequest struct {
	Date   string `json:"date,omitempty"`
	Format string `json:"format,omitempty"`
}

// HandleGenerate handles the workout_generate tool call.
func (h *Handlers) HandleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GenerateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := ops.Generate(ctx, h.lib, h.cfg, ops.GenerateInput{
		Types:       []string{input.Types},
		Groups:      input.Groups,
		Level:       input.Level,
		Bodyweight:  input.Bodyweight,
		WorkoutsDir: h.workoutsDir,
	}, h.env())
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSnoozeList handles the snooze_list tool call.
func (h *Handlers) HandleSnoozeList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := ops.ListSnoozed(ctx, h.lib, h.cfg, h.env())
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleRender handles the workout_render tool call. Only files in the
// workouts directory can be rendered.
func (h *Handlers) HandleRender(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RenderRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	date := h.env().Now()
	if s := strings.TrimSpace(input.Date); s != "" {
		date, err = time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return errorResult(errors.NewInvalidRequest(fmt.Sprintf("date must be YYYY-MM-DD, got %q", s))), nil
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := ops.Render(ops.RenderInput{
		Path:   filepath.Join(h.workoutsDir, library.WorkoutFileName(date)),
		Format: ops.RenderFormat(input.Format),
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// errorResult creates an MCP error result from an error.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if wErr, ok := err.(*errors.WodError); ok {
		errorObj := map[string]any{
			"code":    wErr.Code,
			"message": wErr.Message,
		}
		// Internal errors may carry file system details; keep them out of the response.
		if wErr.Code != errors.ErrInternal && wErr.Details != nil {
			errorObj["details"] = wErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
