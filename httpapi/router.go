// Package httpapi is the HTTP surface of the CV server: health, streaming
// sessions, REST style tool invocation and single shot JSON-RPC.
package httpapi

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/FrankGoortani/cv-mcp/internal/engine"
	"github.com/FrankGoortani/cv-mcp/internal/jwtauth"
	"github.com/FrankGoortani/cv-mcp/internal/wellknown"
	"github.com/FrankGoortani/cv-mcp/mcpservice"
	"github.com/FrankGoortani/cv-mcp/sse"
)

var _ http.Handler = (*Router)(nil)

const (
	apiKeyHeader    = "X-Api-Key"
	requestIDHeader = "X-Request-Id"
)

// SessionCounter reports the number of live streaming sessions.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*jwtauth.Principal, error)
}

// Option configures a Router.
type Option func(*Router)

func WithLogger(l *slog.Logger) Option {
	return func(rt *Router) {
		if l != nil {
			rt.log = l
		}
	}
}

// WithEnvironment sets the environment name reported by health.
func WithEnvironment(env string) Option {
	return func(rt *Router) {
		if env != "" {
			rt.environment = env
		}
	}
}

// WithHealthPath adds an extra path answering like /health.
func WithHealthPath(p string) Option {
	return func(rt *Router) { rt.healthPath = p }
}

// WithAPIKey requires x-api-key on the streaming endpoints.
func WithAPIKey(key string) Option {
	return func(rt *Router) { rt.apiKey = key }
}

// WithVerifier accepts bearer tokens on the streaming endpoints.
func WithVerifier(v TokenVerifier) Option {
	return func(rt *Router) { rt.verifier = v }
}

// WithProtectedResource serves the OAuth protected resource metadata and
// points 401 challenges at it.
func WithProtectedResource(doc wellknown.ProtectedResource) Option {
	return func(rt *Router) { rt.resourceMeta = &doc }
}

// WithRequestTimeout bounds tool invocations.
func WithRequestTimeout(d time.Duration) Option {
	return func(rt *Router) {
		if d > 0 {
			rt.timeout = d
		}
	}
}

// WithSessionHandler sets the handler behind /sse and /ws. Without it the
// router builds one with default settings.
func WithSessionHandler(h *sse.Handler) Option {
	return func(rt *Router) { rt.sessions = h }
}

// WithSessionCounter overrides where health reads the session count.
// Defaults to the session handler's directory.
func WithSessionCounter(c SessionCounter) Option {
	return func(rt *Router) { rt.counter = c }
}

// Router dispatches requests by path. It is safe for concurrent use.
type Router struct {
	srv          *mcpservice.Server
	eng          *engine.Engine
	log          *slog.Logger
	environment  string
	healthPath   string
	apiKey       string
	verifier     TokenVerifier
	resourceMeta *wellknown.ProtectedResource
	timeout      time.Duration
	sessions     *sse.Handler
	counter      SessionCounter
}

func New(srv *mcpservice.Server, opts ...Option) *Router {
	rt := &Router{
		srv:         srv,
		log:         slog.Default(),
		environment: "production",
		timeout:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.sessions == nil {
		rt.sessions = sse.NewHandler(srv, sse.WithLogger(rt.log))
	}
	if rt.counter == nil {
		rt.counter = rt.sessions.Directory()
	}
	rt.eng = engine.NewEngine(srv, engine.WithLogger(rt.log), engine.WithToolTimeout(rt.timeout))
	return rt
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.middleware(http.HandlerFunc(rt.route)).ServeHTTP(w, r)
}

func (rt *Router) route(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	switch {
	case r.Method == http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
	case p == "/" || p == "/health" || (rt.healthPath != "" && p == rt.healthPath):
		rt.handleHealth(w, r)
	case p == wellknown.ProtectedResourcePath && rt.resourceMeta != nil:
		rt.resourceMeta.Handler().ServeHTTP(w, r)
	case p == "/sse":
		rt.stream(w, r, rt.sessions.ServeSSE)
	case p == "/ws":
		rt.stream(w, r, rt.sessions.ServeWS)
	case p == "/tool" || strings.HasPrefix(p, "/tools/"):
		if r.Method != http.MethodPost {
			writeStatus(w, http.StatusMethodNotAllowed, "error", "Tool requests must use POST method")
			return
		}
		rt.handleTool(w, r)
	case p == "/rpc":
		if r.Method != http.MethodPost {
			writeStatus(w, http.StatusMethodNotAllowed, "error", "JSON-RPC requests must use POST method")
			return
		}
		rt.handleRPC(w, r)
	default:
		writeStatus(w, http.StatusNotFound, "not_found", "Endpoint not found: "+p)
	}
}

type healthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Sessions    int    `json:"sessions"`
}

func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	n, err := rt.counter.Count(r.Context())
	if err != nil {
		rt.log.WarnContext(r.Context(), "http.health.sessions.err", slog.String("err", err.Error()))
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Message:     "MCP Server is running",
		Environment: rt.environment,
		Sessions:    n,
	})
}

// stream authenticates a streaming request and hands it to next.
func (rt *Router) stream(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	if r.Method != http.MethodGet {
		writeStatus(w, http.StatusMethodNotAllowed, "error", "Streaming endpoints require GET")
		return
	}
	subject, ok := rt.authenticate(r)
	if !ok {
		if rt.verifier != nil {
			challenge := `Bearer realm="cv-mcp"`
			if rt.resourceMeta != nil {
				challenge += fmt.Sprintf(`, resource_metadata=%q`, rt.resourceMeta.MetadataURL(r))
			}
			w.Header().Set("WWW-Authenticate", challenge)
		}
		writeStatus(w, http.StatusUnauthorized, "error", "unauthorized")
		rt.log.InfoContext(r.Context(), "auth.fail")
		return
	}
	next(w, r.WithContext(sse.WithSubject(r.Context(), subject)))
}

// authenticate accepts a matching x-api-key or a valid bearer token. With
// neither configured every request passes.
func (rt *Router) authenticate(r *http.Request) (string, bool) {
	if rt.apiKey == "" && rt.verifier == nil {
		return "", true
	}
	if rt.apiKey != "" {
		if got := r.Header.Get(apiKeyHeader); got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(rt.apiKey)) == 1 {
			return "api-key", true
		}
	}
	if rt.verifier != nil {
		if tok, ok := jwtauth.BearerToken(r.Header.Get("Authorization")); ok {
			p, err := rt.verifier.Verify(r.Context(), tok)
			if err == nil {
				return p.Subject, true
			}
			rt.log.InfoContext(r.Context(), "auth.bearer.invalid", slog.String("err", err.Error()))
		}
	}
	return "", false
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeStatus(w http.ResponseWriter, code int, status, msg string) {
	writeJSON(w, code, statusResponse{Status: status, Message: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
