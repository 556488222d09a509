// Package cvserver assembles the CV tools, resources and greeting prompt
// into an mcpservice.Server.
package cvserver

import (
	"fmt"
	"log/slog"

	"github.com/FrankGoortani/cv-mcp/cv"
	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/FrankGoortani/cv-mcp/mcpservice"
)

const (
	Name         = "Frank Goortani CV MCP Server"
	Version      = "1.0.0"
	Description  = "Frank Goortani's CV over the Model Context Protocol"
	Instructions = "Describes how to use the CV tools and resources."
)

// Option configures New.
type Option func(*config)

type config struct {
	data      *cv.CV
	mediaDir  string
	cacheSize int
	levelVar  *slog.LevelVar
	logger    *slog.Logger
}

// WithCV replaces the built-in dataset.
func WithCV(c *cv.CV) Option {
	return func(cfg *config) { cfg.data = c }
}

// WithMediaDir sets the directory the file resources are read from.
func WithMediaDir(dir string) Option {
	return func(cfg *config) { cfg.mediaDir = dir }
}

// WithResourceCacheSize bounds the resource body cache. Zero disables it.
func WithResourceCacheSize(n int) Option {
	return func(cfg *config) { cfg.cacheSize = n }
}

// WithLevelVar enables logging/setLevel against lv.
func WithLevelVar(lv *slog.LevelVar) Option {
	return func(cfg *config) { cfg.levelVar = lv }
}

func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// New builds the CV server.
func New(opts ...Option) (*mcpservice.Server, error) {
	cfg := config{
		data:      cv.Default(),
		mediaDir:  "media",
		cacheSize: 8,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	resources, err := NewResources(cfg.mediaDir,
		mcpservice.WithResourceCacheSize(cfg.cacheSize),
		mcpservice.WithResourceLogger(cfg.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build resources: %w", err)
	}

	srvOpts := []mcpservice.ServerOption{
		mcpservice.WithServerInfo(mcp.ImplementationInfo{Name: Name, Version: Version}),
		mcpservice.WithDescription(Description),
		mcpservice.WithInstructions(Instructions),
		mcpservice.WithToolsContainer(NewTools(cfg.data)),
		mcpservice.WithResourcesContainer(resources),
		mcpservice.WithPromptsContainer(NewPrompts()),
	}
	if cfg.levelVar != nil {
		srvOpts = append(srvOpts, mcpservice.WithLevelSetter(mcpservice.NewSlogLevelVarLogging(cfg.levelVar)))
	}
	return mcpservice.NewServer(srvOpts...), nil
}
