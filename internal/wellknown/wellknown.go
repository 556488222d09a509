// Package wellknown serves the OAuth protected resource metadata document
// (RFC 9728) that tells clients where bearer tokens for this server come
// from.
package wellknown

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ProtectedResourcePath is where the metadata document is served.
const ProtectedResourcePath = "/.well-known/oauth-protected-resource"

// ProtectedResource is the subset of the RFC 9728 document this server
// can fill in.
type ProtectedResource struct {
	Resource               string   `json:"resource"`
	AuthorizationServers   []string `json:"authorization_servers,omitempty"`
	JWKSURI                string   `json:"jwks_uri,omitempty"`
	BearerMethodsSupported []string `json:"bearer_methods_supported"`
	SigningAlgs            []string `json:"resource_signing_alg_values_supported,omitempty"`
	ResourceName           string   `json:"resource_name,omitempty"`
}

// Resolve fills Resource from the request when it is unset. Behind a proxy
// X-Forwarded-Proto and X-Forwarded-Host take precedence.
func (p ProtectedResource) Resolve(r *http.Request) ProtectedResource {
	if len(p.BearerMethodsSupported) == 0 {
		p.BearerMethodsSupported = []string{"header"}
	}
	if p.Resource == "" {
		p.Resource = BaseURL(r)
	}
	return p
}

// MetadataURL is the absolute location of the document for r.
func (p ProtectedResource) MetadataURL(r *http.Request) string {
	return strings.TrimSuffix(p.Resolve(r).Resource, "/") + ProtectedResourcePath
}

// BaseURL is scheme://host of the request as the client sees it.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fp := r.Header.Get("X-Forwarded-Proto"); fp != "" {
		scheme = strings.TrimSpace(strings.Split(fp, ",")[0])
	}
	host := r.Host
	if fh := r.Header.Get("X-Forwarded-Host"); fh != "" {
		host = strings.TrimSpace(strings.Split(fh, ",")[0])
	}
	return scheme + "://" + host
}

// Handler serves the document. Only GET and HEAD are answered.
func (p ProtectedResource) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "max-age=3600")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_ = json.NewEncoder(w).Encode(p.Resolve(r))
	})
}
