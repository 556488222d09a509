package mcpservice

import (
	"github.com/FrankGoortani/cv-mcp/mcp"
)

// ServerOption configures a Server.
type ServerOption func(*Server)

// Server is the explicit server context shared by every transport. It is
// built once at startup and read-only afterwards. Optional features are
// present exactly when the corresponding field is non-nil.
type Server struct {
	Info         mcp.ImplementationInfo
	Description  string
	Instructions string

	Tools     *ToolsContainer
	Resources *ResourcesContainer
	Prompts   *PromptsContainer
	Logging   LevelSetter
}

// NewServer constructs a Server. Without options it exposes no features.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		Info: mcp.ImplementationInfo{Name: "mcp-server", Version: "0.0.0"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithServerInfo sets the implementation name and version reported on
// initialize and in the session announcement.
func WithServerInfo(info mcp.ImplementationInfo) ServerOption {
	return func(s *Server) { s.Info = info }
}

// WithDescription sets the human readable server description.
func WithDescription(desc string) ServerOption {
	return func(s *Server) { s.Description = desc }
}

// WithInstructions sets the instructions returned from initialize.
func WithInstructions(instr string) ServerOption {
	return func(s *Server) { s.Instructions = instr }
}

func WithToolsContainer(c *ToolsContainer) ServerOption {
	return func(s *Server) { s.Tools = c }
}

func WithResourcesContainer(c *ResourcesContainer) ServerOption {
	return func(s *Server) { s.Resources = c }
}

func WithPromptsContainer(c *PromptsContainer) ServerOption {
	return func(s *Server) { s.Prompts = c }
}

// WithLevelSetter enables the logging capability.
func WithLevelSetter(ls LevelSetter) ServerOption {
	return func(s *Server) { s.Logging = ls }
}

// Capabilities reports the features chosen at construction. The registries
// never change, so listChanged is always false.
func (s *Server) Capabilities() mcp.ServerCapabilities {
	var caps mcp.ServerCapabilities
	if s.Tools != nil {
		caps.Tools = &mcp.ListChangedFeature{}
	}
	if s.Resources != nil {
		caps.Resources = &mcp.ResourcesFeature{}
	}
	if s.Prompts != nil {
		caps.Prompts = &mcp.ListChangedFeature{}
	}
	if s.Logging != nil {
		caps.Logging = &struct{}{}
	}
	return caps
}

// ToolNames lists registered tool names, or nil without a tools registry.
func (s *Server) ToolNames() []string {
	if s.Tools == nil {
		return nil
	}
	return s.Tools.Names()
}

// ResourceURIs lists registered resource URIs, or nil without a resources
// registry.
func (s *Server) ResourceURIs() []string {
	if s.Resources == nil {
		return nil
	}
	return s.Resources.URIs()
}
