// Package agent talks to the agent-invocation service. The two agents this
// system uses (production manager and visual generator) are addressed by
// opaque identifiers; the request is a plain natural-language message and the
// response payload is arbitrary JSON left for the normalize package to
// interpret.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"studio/internal/infra"
)

// Options controls how the agent client is configured.
type Options struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client invokes agents over HTTP. Callers receive a tagged result envelope;
// the only errors returned are transport and non-success status failures.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *infra.Logger
}

// InvokeResult is the raw result envelope of one agent invocation.
type InvokeResult struct {
	Success       bool           `json:"success"`
	Response      *InvokePayload `json:"response"`
	ModuleOutputs *ModuleOutputs `json:"module_outputs"`
}

// InvokePayload wraps the agent's structured output.
type InvokePayload struct {
	Result any `json:"result"`
}

// ModuleOutputs is the side channel of files produced alongside the
// structured result.
type ModuleOutputs struct {
	ArtifactFiles []ArtifactFile `json:"artifact_files"`
}

// ArtifactFile describes one generated file.
type ArtifactFile struct {
	FileURL string `json:"file_url"`
}

type invokeRequest struct {
	Message string `json:"message"`
}

type serviceError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient constructs an agent client. A nil HTTP client gets a reusable one
// with a long timeout suited to generative calls; a nil logger discards.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("agent: base URL is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(opts.APIKey),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Invoke sends promptText to the identified agent and returns the raw result
// envelope. A structurally empty success (no result payload) is not an error
// here; callers inspect the envelope.
func (c *Client) Invoke(ctx context.Context, promptText, agentID string) (*InvokeResult, error) {
	if strings.TrimSpace(agentID) == "" {
		return nil, fmt.Errorf("agent: agent id is required")
	}

	body, err := json.Marshal(invokeRequest{Message: promptText})
	if err != nil {
		return nil, fmt.Errorf("agent: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/agents/%s/invoke", c.baseURL, url.PathEscape(agentID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("agent: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent: invoke %s: %w", agentID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var svcErr serviceError
		data, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(data, &svcErr); err == nil && svcErr.Error.Message != "" {
			return nil, fmt.Errorf("agent: status %d: %s", resp.StatusCode, svcErr.Error.Message)
		}
		if len(data) > 0 {
			return nil, fmt.Errorf("agent: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return nil, fmt.Errorf("agent: status %d", resp.StatusCode)
	}

	var result InvokeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("agent: decode response: %w", err)
	}

	c.logger.Debug().
		Str("agent_id", agentID).
		Bool("success", result.Success).
		Dur("elapsed", time.Since(start)).
		Msg("agent: invocation settled")

	return &result, nil
}

// Result returns the structured payload and whether the invocation actually
// produced one. A service-level success with no payload reports false.
func (r *InvokeResult) Result() (any, bool) {
	if r == nil || !r.Success || r.Response == nil || r.Response.Result == nil {
		return nil, false
	}
	return r.Response.Result, true
}

// ArtifactURLs extracts the retrievable URLs from the artifact side channel.
// It is independent of the structured result and never fails.
func (r *InvokeResult) ArtifactURLs() []string {
	urls := []string{}
	if r == nil || r.ModuleOutputs == nil {
		return urls
	}
	for _, f := range r.ModuleOutputs.ArtifactFiles {
		if f.FileURL != "" {
			urls = append(urls, f.FileURL)
		}
	}
	return urls
}
