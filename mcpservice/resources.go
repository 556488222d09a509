package mcpservice

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
)

// EncodingBase64 marks a payload whose Text is base64 encoded bytes.
const EncodingBase64 = "base64"

// Payload is a loaded resource. Encoding is empty for text resources.
type Payload struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding,omitempty"`
}

// ResourceLoader returns the raw bytes behind a resource.
type ResourceLoader func(ctx context.Context) ([]byte, error)

// StaticResource pairs an MCP resource descriptor with its loader. Path is
// set for file backed resources so their cache entries can be invalidated
// when the file changes.
type StaticResource struct {
	Descriptor mcp.Resource
	Load       ResourceLoader
	Path       string
}

// FileResource builds a resource backed by the file at path. The file is
// read on every uncached load, so a missing file only fails at read time.
func FileResource(desc mcp.Resource, path string) StaticResource {
	return StaticResource{
		Descriptor: desc,
		Path:       path,
		Load: func(ctx context.Context) ([]byte, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return os.ReadFile(path)
		},
	}
}

// ResourcesOption configures a ResourcesContainer.
type ResourcesOption func(*resourcesConfig)

type resourcesConfig struct {
	cacheSize int
	logger    *slog.Logger
}

// WithResourceCacheSize bounds the number of cached resource bodies. Zero
// disables caching.
func WithResourceCacheSize(n int) ResourcesOption {
	return func(c *resourcesConfig) { c.cacheSize = n }
}

// WithResourceLogger sets the logger used by Watch.
func WithResourceLogger(l *slog.Logger) ResourcesOption {
	return func(c *resourcesConfig) { c.logger = l }
}

// ResourcesContainer is an immutable URI to loader registry with a bounded
// byte cache in front of the loaders.
type ResourcesContainer struct {
	list   []mcp.Resource
	byURI  map[string]StaticResource
	cache  *lru.Cache[string, []byte]
	logger *slog.Logger
}

// NewResourcesContainer constructs a container from defs in listing order.
func NewResourcesContainer(defs []StaticResource, opts ...ResourcesOption) (*ResourcesContainer, error) {
	cfg := resourcesConfig{cacheSize: 16, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &ResourcesContainer{
		byURI:  make(map[string]StaticResource, len(defs)),
		logger: cfg.logger,
	}
	for _, d := range defs {
		if _, dup := c.byURI[d.Descriptor.URI]; dup {
			return nil, fmt.Errorf("duplicate resource uri %q", d.Descriptor.URI)
		}
		c.byURI[d.Descriptor.URI] = d
		c.list = append(c.list, d.Descriptor)
	}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[string, []byte](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create resource cache: %w", err)
		}
		c.cache = cache
	}
	return c, nil
}

// Snapshot returns a copy of the resource descriptors.
func (c *ResourcesContainer) Snapshot() []mcp.Resource {
	out := make([]mcp.Resource, len(c.list))
	copy(out, c.list)
	return out
}

// URIs returns the registered URIs in listing order.
func (c *ResourcesContainer) URIs() []string {
	out := make([]string, 0, len(c.list))
	for _, r := range c.list {
		out = append(out, r.URI)
	}
	return out
}

// Load resolves uri to its payload. Unknown URIs yield NotFound; a loader
// failure yields ResourceUnavailable.
func (c *ResourcesContainer) Load(ctx context.Context, uri string) (Payload, error) {
	def, ok := c.byURI[uri]
	if !ok {
		return Payload{}, Errorf(KindNotFound, "unknown resource: %s", uri)
	}
	data, err := c.bytes(ctx, def)
	if err != nil {
		return Payload{}, Errorf(KindResourceUnavailable, "resource %s unavailable: %w", uri, err)
	}
	p := Payload{URI: uri, MimeType: def.Descriptor.MimeType}
	if isTextMIME(p.MimeType) {
		p.Text = string(data)
		return p, nil
	}
	p.Text = base64.StdEncoding.EncodeToString(data)
	p.Encoding = EncodingBase64
	return p, nil
}

// Read is the MCP resources/read rendering of Load.
func (c *ResourcesContainer) Read(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	p, err := c.Load(ctx, uri)
	if err != nil {
		return nil, err
	}
	rc := mcp.ResourceContents{URI: p.URI, MimeType: p.MimeType}
	if p.Encoding == EncodingBase64 {
		rc.Blob = p.Text
	} else {
		rc.Text = p.Text
	}
	return &mcp.ReadResourceResult{Contents: []mcp.ResourceContents{rc}}, nil
}

func (c *ResourcesContainer) bytes(ctx context.Context, def StaticResource) ([]byte, error) {
	uri := def.Descriptor.URI
	if c.cache != nil {
		if b, ok := c.cache.Get(uri); ok {
			return b, nil
		}
	}
	b, err := def.Load(ctx)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.Add(uri, b)
	}
	return b, nil
}

// Invalidate drops the cached body for uri.
func (c *ResourcesContainer) Invalidate(uri string) {
	if c.cache != nil {
		c.cache.Remove(uri)
	}
}

// Watch invalidates cached file bodies when their backing files change.
// It blocks until ctx is done. A container without file resources or
// without a cache returns immediately.
func (c *ResourcesContainer) Watch(ctx context.Context) error {
	if c.cache == nil {
		return nil
	}
	byPath := make(map[string]string)
	dirs := make(map[string]struct{})
	for _, d := range c.byURI {
		if d.Path == "" {
			continue
		}
		abs, err := filepath.Abs(d.Path)
		if err != nil {
			continue
		}
		byPath[abs] = d.Descriptor.URI
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	if len(byPath) == 0 {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			c.logger.WarnContext(ctx, "resources.watch.add.err", slog.String("dir", dir), slog.String("err", err.Error()))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name := ev.Name
			if abs, err := filepath.Abs(name); err == nil {
				name = abs
			}
			if uri, ok := byPath[name]; ok {
				c.Invalidate(uri)
				c.logger.DebugContext(ctx, "resources.invalidate", slog.String("uri", uri), slog.String("op", ev.Op.String()))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.logger.WarnContext(ctx, "resources.watch.err", slog.String("err", err.Error()))
		}
	}
}

func isTextMIME(mt string) bool {
	mt = strings.ToLower(mt)
	return strings.HasPrefix(mt, "text/") || mt == "application/json" || strings.HasSuffix(mt, "+json")
}
