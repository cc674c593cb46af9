package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func gatewayForTest(t *testing.T, handler http.HandlerFunc) (*GatewayClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.EndpointBase = srv.URL
	cfg.Timeout = 2 * time.Second
	return NewGatewayClient(cfg), srv
}

func textPayload(text string) GatewayPayload {
	return GatewayPayload{
		Model: "fast-model",
		Body: GatewayRequest{
			Contents: []GatewayContent{{Parts: []GatewayPart{{Text: text}}}},
		},
	}
}

func TestGenerateSuccess(t *testing.T) {
	var gotPath string
	g, _ := gatewayForTest(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Khóa học Go cơ bản có 12 bài."}]}}]}`))
	})

	got, err := g.Generate(context.Background(), textPayload("hỏi về khóa học"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Khóa học Go cơ bản có 12 bài." {
		t.Errorf("text = %q", got)
	}
	if !strings.HasSuffix(gotPath, "/models/fast-model:generateContent") {
		t.Errorf("called path %q, want .../models/fast-model:generateContent", gotPath)
	}
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		},
		{
			name: "internal error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[`))
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[]}`))
			},
		},
		{
			name: "candidate without parts",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := gatewayForTest(t, tt.handler)
			if _, err := g.Generate(context.Background(), textPayload("hi")); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestGenerateMissingKeySkipsNetwork(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.APIKey = ""
	cfg.EndpointBase = srv.URL
	g := NewGatewayClient(cfg)

	_, err := g.Generate(context.Background(), textPayload("hi"))
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("err = %v, want ErrNoAPIKey", err)
	}
	if hit {
		t.Error("missing key must short-circuit before any network attempt")
	}
}

func TestGenerateTransportError(t *testing.T) {
	cfg := testConfig()
	cfg.EndpointBase = "http://127.0.0.1:1" // nothing listens here
	cfg.Timeout = time.Second
	g := NewGatewayClient(cfg)

	if _, err := g.Generate(context.Background(), textPayload("hi")); err == nil {
		t.Error("expected a transport error")
	}
}

func TestGenerateTimeout(t *testing.T) {
	g, _ := gatewayForTest(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	})
	g.httpClient.Timeout = 50 * time.Millisecond

	if _, err := g.Generate(context.Background(), textPayload("hi")); err == nil {
		t.Error("expected a timeout error")
	}
}
