package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"hoctap_backend/internals/configs"
)

// ErrNoAPIKey marks the configuration-failure short circuit: no key,
// no network attempt.
var ErrNoAPIKey = errors.New("gateway: no API key configured")

const logBodyLimit = 300

// GatewayClient performs the single outbound generateContent call.
// One attempt per request; the caller substitutes a fallback reply on
// any error, so nothing here retries.
type GatewayClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGatewayClient(cfg *configs.Config) *GatewayClient {
	return &GatewayClient{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.EndpointBase,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type gatewayResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate posts the payload and extracts
// candidates[0].content.parts[0].text. Every failure mode comes back
// as an error; none escapes as a panic.
func (g *GatewayClient) Generate(ctx context.Context, payload GatewayPayload) (string, error) {
	if g.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(payload.Body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.baseURL, payload.Model, url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[GATEWAY] model=%s status=%d body=%s", payload.Model, resp.StatusCode, truncate(respBody, logBodyLimit))
		return "", fmt.Errorf("gateway status %d", resp.StatusCode)
	}

	var parsed gatewayResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		log.Printf("[GATEWAY] model=%s undecodable body=%s", payload.Model, truncate(respBody, logBodyLimit))
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		log.Printf("[GATEWAY] model=%s response has no candidate text", payload.Model)
		return "", errors.New("gateway response missing candidate text")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
