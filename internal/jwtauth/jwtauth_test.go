package jwtauth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
)

type mockOIDC struct {
	srv       *httptest.Server
	issuer    string
	jwksPath  string
	metaExtra map[string]any
}

func newMockOIDC(t *testing.T, keysJSON []byte, metaExtra map[string]any) *mockOIDC {
	t.Helper()
	m := &mockOIDC{jwksPath: "/keys", metaExtra: metaExtra}
	handler := http.NewServeMux()
	handler.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		meta := map[string]any{
			"issuer":                   m.issuer,
			"jwks_uri":                 m.issuer + m.jwksPath,
			"authorization_endpoint":   m.issuer + "/oauth2/auth",
			"token_endpoint":           m.issuer + "/oauth2/token",
			"response_types_supported": []string{"code"},
		}
		for k, v := range m.metaExtra {
			meta[k] = v
		}
		_ = json.NewEncoder(w).Encode(meta)
	})
	handler.HandleFunc(m.jwksPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(keysJSON)
	})
	m.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Set issuer lazily to current server URL
		if m.issuer == "" {
			m.issuer = m.srv.URL
		}
		handler.ServeHTTP(w, r)
	}))
	m.issuer = m.srv.URL
	return m
}

func (m *mockOIDC) Close() { m.srv.Close() }

func genRSA(t *testing.T) (*rsa.PrivateKey, string, []byte) {
	t.Helper()
	pk, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("gen key: %v", err)
	}
	kid := "test-key"
	jwk := jose.JSONWebKey{Key: &pk.PublicKey, KeyID: kid, Algorithm: "RS256", Use: "sig"}
	set := struct {
		Keys []jose.JSONWebKey `json:"keys"`
	}{Keys: []jose.JSONWebKey{jwk}}
	b, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal jwks: %v", err)
	}
	return pk, kid, b
}

func signToken(t *testing.T, pk *rsa.PrivateKey, kid string, headerTyp string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = kid
	if headerTyp != "" {
		tok.Header["typ"] = headerTyp
	}
	s, err := tok.SignedString(pk)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func validClaims(issuer, aud string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":   issuer,
		"sub":   "user-123",
		"aud":   aud,
		"exp":   now.Add(time.Hour).Unix(),
		"iat":   now.Unix(),
		"scope": "cv:read cv:stream",
	}
}

func TestVerifier_DiscoveryHappyPath(t *testing.T) {
	pk, kid, jwks := genRSA(t)
	oidc := newMockOIDC(t, jwks, nil)
	defer oidc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	aud := "https://cv.example.com"
	v, err := New(ctx, Config{Issuer: oidc.issuer, Audiences: []string{aud}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	p, err := v.Verify(ctx, signToken(t, pk, kid, "JWT", validClaims(oidc.issuer, aud)))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if p.Subject != "user-123" {
		t.Fatalf("want sub user-123, got %s", p.Subject)
	}
	if len(p.Scopes) != 2 || p.Scopes[0] != "cv:read" || p.Scopes[1] != "cv:stream" {
		t.Fatalf("unexpected scopes %v", p.Scopes)
	}
	if v.Issuer() != oidc.issuer {
		t.Fatalf("want issuer %s got %s", oidc.issuer, v.Issuer())
	}
	if v.JWKSURI() != oidc.issuer+oidc.jwksPath {
		t.Fatalf("want discovered jwks uri got %q", v.JWKSURI())
	}
}

func TestVerifier_DiscoveryMissingJWKS(t *testing.T) {
	_, _, jwks := genRSA(t)
	oidc := newMockOIDC(t, jwks, map[string]any{"jwks_uri": ""})
	defer oidc.Close()

	_, err := New(context.Background(), Config{Issuer: oidc.issuer})
	if err == nil || !strings.Contains(err.Error(), "jwks_uri") {
		t.Fatalf("want missing jwks_uri error, got %v", err)
	}
}

func TestVerifier_Rejections(t *testing.T) {
	pk, kid, jwks := genRSA(t)
	oidc := newMockOIDC(t, jwks, nil)
	defer oidc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	aud := "https://cv.example.com"
	v, err := New(ctx, Config{Issuer: oidc.issuer, Audiences: []string{aud}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	expired := validClaims(oidc.issuer, aud)
	expired["exp"] = time.Now().Add(-time.Hour).Unix()
	wrongAud := validClaims(oidc.issuer, "https://other.example.com")
	wrongIss := validClaims("https://evil.example.com", aud)
	noSub := validClaims(oidc.issuer, aud)
	delete(noSub, "sub")
	noExp := validClaims(oidc.issuer, aud)
	delete(noExp, "exp")

	hs := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims(oidc.issuer, aud))
	hsTok, err := hs.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign hs: %v", err)
	}

	cases := map[string]string{
		"expired":   signToken(t, pk, kid, "", expired),
		"audience":  signToken(t, pk, kid, "", wrongAud),
		"issuer":    signToken(t, pk, kid, "", wrongIss),
		"subject":   signToken(t, pk, kid, "", noSub),
		"no-exp":    signToken(t, pk, kid, "", noExp),
		"hs256-alg": hsTok,
		"garbage":   "not-a-token",
		"empty":     "",
	}
	for name, tok := range cases {
		if _, err := v.Verify(ctx, tok); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("%s: want ErrUnauthorized got %v", name, err)
		}
	}
}

func TestVerifier_StaticJWKS(t *testing.T) {
	pk, kid, jwks := genRSA(t)
	oidc := newMockOIDC(t, jwks, nil)
	defer oidc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	v, err := New(ctx, Config{JWKSURL: oidc.issuer + oidc.jwksPath})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	// Without an issuer or audiences only signature, alg and expiry apply.
	p, err := v.Verify(ctx, signToken(t, pk, kid, "", validClaims("anyone", "anything")))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if p.Subject != "user-123" {
		t.Fatalf("want sub user-123 got %s", p.Subject)
	}
}

func TestVerifier_HS256(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")
	v, err := New(context.Background(), Config{HS256Secret: secret, Audiences: []string{"cv"}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	good, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims("me", "cv")).SignedString(secret)
	if _, err := v.Verify(context.Background(), good); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if algs := v.Algorithms(); len(algs) != 1 || algs[0] != "HS256" {
		t.Fatalf("want HS256 only got %v", algs)
	}
	if v.JWKSURI() != "" {
		t.Fatalf("want no jwks uri for HS256 got %q", v.JWKSURI())
	}
	bad, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims("me", "cv")).SignedString([]byte("wrong"))
	if _, err := v.Verify(context.Background(), bad); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized for wrong secret got %v", err)
	}
}

func TestNew_NotConfigured(t *testing.T) {
	if _, err := New(context.Background(), Config{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("want ErrNotConfigured got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		in   string
		tok  string
		want bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer  abc ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer   ", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		tok, ok := BearerToken(c.in)
		if tok != c.tok || ok != c.want {
			t.Fatalf("%q: want (%q,%v) got (%q,%v)", c.in, c.tok, c.want, tok, ok)
		}
	}
}
