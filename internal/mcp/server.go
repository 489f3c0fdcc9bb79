package mcp

import (
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/hpungsan/wodgen/internal/config"
	"github.com/hpungsan/wodgen/internal/library"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"workout_generate": {
		def:     generateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGenerate },
	},
	"snooze_list": {
		def:     snoozeListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSnoozeList },
	},
	"workout_render": {
		def:     renderToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRender },
	},
}

// AllToolNames returns every registered tool name, sorted.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// enabledTools returns the registered tool names not in disabled, sorted.
func enabledTools(disabled []string) []string {
	skip := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		skip[name] = true
	}

	names := make([]string, 0, len(toolRegistry))
	for _, name := range AllToolNames() {
		if !skip[name] {
			names = append(names, name)
		}
	}
	return names
}

// NewServer creates a new MCP server with the workout tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(h *Handlers, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"wodgen",
		version,
		server.WithToolCapabilities(true),
	)

	for _, name := range ValidateDisabledTools(cfg.DisabledTools) {
		h.logger.Warn("unknown tool in disabled_tools", zap.String("tool", name))
	}

	for _, name := range enabledTools(cfg.DisabledTools) {
		entry := toolRegistry[name]
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(lib *library.Library, cfg *config.Config, workoutsDir string, logger *zap.Logger, version string) error {
	h := NewHandlers(lib, cfg, workoutsDir, logger)
	s := NewServer(h, cfg, version)
	h.logger.Info("serving MCP over stdio",
		zap.String("library", lib.Dir()),
		zap.Strings("tools", enabledTools(cfg.DisabledTools)))
	return server.ServeStdio(s)
}
