// Package jwtauth verifies bearer tokens presented to the streaming
// endpoints. Keys come from one of three sources: OIDC discovery on an
// issuer, a fixed JWKS URL, or a shared HS256 secret.
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	keyfunc "github.com/MicahParks/keyfunc/v3"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthorized indicates that the token failed validation (signature,
// issuer, audience, exp/nbf) and the request should be treated as
// unauthenticated.
var ErrUnauthorized = errors.New("jwtauth: unauthorized")

// ErrNotConfigured is returned by New when no key source is set.
var ErrNotConfigured = errors.New("jwtauth: no issuer, jwks url or shared secret configured")

// Config selects the key source and validation policy. HS256Secret takes
// precedence over JWKSURL, which takes precedence over Issuer discovery.
type Config struct {
	// Issuer is the expected iss claim. Without JWKSURL or HS256Secret it is
	// also the discovery base URL.
	Issuer string
	// JWKSURL fetches signing keys directly, skipping discovery.
	JWKSURL string
	// HS256Secret validates symmetric tokens.
	HS256Secret []byte
	// Audiences lists accepted aud values; empty accepts any audience.
	Audiences []string
	// AllowedAlgs restricts asymmetric algorithms. Defaults to RS256 and ES256.
	AllowedAlgs []string
	Leeway      time.Duration
}

// Principal is the verified identity behind a token.
type Principal struct {
	Subject string
	Scopes  []string
	Claims  jwt.MapClaims
}

// Verifier validates bearer tokens against one key source.
type Verifier struct {
	issuer    string
	audiences []string
	algs      []string
	leeway    time.Duration
	keyfunc   jwt.Keyfunc
	jwksURI   string
}

// New builds a Verifier. For JWKS and discovery sources the key set is
// refreshed in the background until ctx is done.
func New(ctx context.Context, cfg Config) (*Verifier, error) {
	v := &Verifier{
		issuer:    cfg.Issuer,
		audiences: append([]string(nil), cfg.Audiences...),
		leeway:    cfg.Leeway,
		algs:      cfg.AllowedAlgs,
	}
	if len(v.algs) == 0 {
		v.algs = []string{"RS256", "ES256"}
	}

	switch {
	case len(cfg.HS256Secret) > 0:
		secret := append([]byte(nil), cfg.HS256Secret...)
		v.algs = []string{jwt.SigningMethodHS256.Alg()}
		v.keyfunc = func(*jwt.Token) (any, error) { return secret, nil }
		return v, nil
	case cfg.JWKSURL != "":
		kf, err := keyfunc.NewDefaultCtx(ctx, []string{cfg.JWKSURL})
		if err != nil {
			return nil, fmt.Errorf("jwks init failed: %w", err)
		}
		v.keyfunc = kf.Keyfunc
		v.jwksURI = cfg.JWKSURL
		return v, nil
	case cfg.Issuer != "":
		jwksURI, issuer, err := discover(ctx, cfg.Issuer)
		if err != nil {
			return nil, err
		}
		kf, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURI})
		if err != nil {
			return nil, fmt.Errorf("jwks init failed: %w", err)
		}
		v.issuer = issuer
		v.keyfunc = kf.Keyfunc
		v.jwksURI = jwksURI
		return v, nil
	default:
		return nil, ErrNotConfigured
	}
}

// Issuer is the expected iss claim, empty when any issuer is accepted.
func (v *Verifier) Issuer() string { return v.issuer }

// JWKSURI is the key set location, empty for HS256.
func (v *Verifier) JWKSURI() string { return v.jwksURI }

// Algorithms lists the accepted signing algorithms.
func (v *Verifier) Algorithms() []string { return append([]string(nil), v.algs...) }

// discover performs OIDC discovery and returns the JWKS URI and the issuer
// the provider advertises.
func discover(ctx context.Context, issuer string) (string, string, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return "", "", fmt.Errorf("oidc discovery failed: %w", err)
	}
	var meta struct {
		Issuer  string `json:"issuer"`
		JwksURI string `json:"jwks_uri"`
	}
	if err := provider.Claims(&meta); err != nil {
		return "", "", fmt.Errorf("invalid discovery metadata: %w", err)
	}
	if meta.JwksURI == "" {
		return "", "", errors.New("discovery incomplete: missing jwks_uri")
	}
	return meta.JwksURI, meta.Issuer, nil
}

// Verify checks signature, algorithm, expiry, issuer and audience and
// returns the token's principal. Every validation failure wraps
// ErrUnauthorized.
func (v *Verifier) Verify(ctx context.Context, tok string) (*Principal, error) {
	if tok == "" {
		return nil, fmt.Errorf("%w: empty token", ErrUnauthorized)
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(v.algs),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.NewParser(opts...).ParseWithClaims(tok, claims, v.keyfunc); err != nil {
		return nil, fmt.Errorf("%w: token parse/verify failed: %v", ErrUnauthorized, err)
	}

	if len(v.audiences) > 0 {
		aud, err := claims.GetAudience()
		if err != nil || !slices.ContainsFunc(aud, func(a string) bool { return slices.Contains(v.audiences, a) }) {
			return nil, fmt.Errorf("%w: audience mismatch", ErrUnauthorized)
		}
	}
	sub, _ := claims.GetSubject()
	if sub == "" {
		return nil, fmt.Errorf("%w: missing sub", ErrUnauthorized)
	}
	scope, _ := claims["scope"].(string)
	return &Principal{Subject: sub, Scopes: strings.Fields(scope), Claims: claims}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}
