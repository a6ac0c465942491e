/**
 * Aksharamukha client for the lipi service
 *
 * Talks to an Aksharamukha-compatible HTTP endpoint. The public API takes
 * source script, target script and text as query parameters and answers
 * with the transliterated text as a plain body.
 */

package translit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Backend is the transliteration capability. Implementations delegate the
// script pair and text verbatim; unsupported pairs surface as errors.
type Backend interface {
	Transliterate(ctx context.Context, src, tgt, text string) (string, error)
}

// Client is an HTTP Backend for an Aksharamukha-style service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a transliteration client. timeout guards a single
// round-trip; large texts are the remote service's concern.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Transliterate converts text from src to tgt script.
func (c *Client) Transliterate(ctx context.Context, src, tgt, text string) (string, error) {
	params := url.Values{}
	params.Set("source", src)
	params.Set("target", tgt)
	params.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create transliteration request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transliteration request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read transliteration response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("transliteration service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return string(body), nil
}
