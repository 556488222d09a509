package httpapi

import (
	"encoding/json"
	"testing"

	"github.com/FrankGoortani/cv-mcp/mcpservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestResolveToolCall(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		body     string
		wantName string
		wantArgs string
	}{
		{"nested path uses last segment", "v1/search_cv", `{"query":"go"}`, "search_cv", `{"query":"go"}`},
		{"explicit arguments", "", `{"tool":"x","arguments":{"a":1},"b":2}`, "x", `{"a":1}`},
		{"null arguments fall back to body", "", `{"name":"x","arguments":null,"b":2}`, "x", `{"b":2}`},
		{"non string tool is ignored", "", `{"tool":7,"name":"y"}`, "y", `{}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var body map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(c.body), &body))
			name, args, err := resolveToolCall(c.path, body)
			require.NoError(t, err)
			assert.Equal(t, c.wantName, name)
			assert.JSONEq(t, c.wantArgs, string(args))
		})
	}

	_, _, err := resolveToolCall("", map[string]json.RawMessage{"tool": json.RawMessage(`""`)})
	assert.ErrorIs(t, err, mcpservice.ErrInvalidArgument)
}

func TestResolveToolCall_Properties(t *testing.T) {
	ident := rapid.StringMatching(`[a-z][a-z_]{0,12}`)
	rapid.Check(t, func(t *rapid.T) {
		toolField := ident.Draw(t, "tool")
		extra := rapid.MapOf(ident, rapid.Int()).Draw(t, "extra")

		body := map[string]json.RawMessage{}
		for k, v := range extra {
			b, _ := json.Marshal(v)
			body[k] = b
		}
		tb, _ := json.Marshal(toolField)
		body["tool"] = tb

		name, args, err := resolveToolCall("", body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != toolField {
			t.Fatalf("name = %q, want %q", name, toolField)
		}
		var got map[string]int
		if err := json.Unmarshal(args, &got); err != nil {
			t.Fatalf("args not an object: %v", err)
		}
		for _, k := range []string{"tool", "name", "arguments"} {
			if _, ok := got[k]; ok {
				t.Fatalf("routing field %q leaked into args", k)
			}
		}
		for k, v := range extra {
			switch k {
			case "tool", "name", "arguments":
				continue
			}
			if got[k] != v {
				t.Fatalf("args[%q] = %d, want %d", k, got[k], v)
			}
		}
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 404, statusFor(mcpservice.KindNotFound))
	assert.Equal(t, 400, statusFor(mcpservice.KindInvalidArgument))
	assert.Equal(t, 503, statusFor(mcpservice.KindResourceUnavailable))
	assert.Equal(t, 405, statusFor(mcpservice.KindMethodNotAllowed))
	assert.Equal(t, 504, statusFor(mcpservice.KindTimeout))
	assert.Equal(t, 500, statusFor(mcpservice.KindInternal))
}
