package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"newsmap/pkg/domain"
)

// defaultEndpoint is the public Google Translate endpoint, no key needed
const defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

// Google translates via the unofficial translate_a endpoint with
// source-language auto-detection
type Google struct {
	client   *http.Client
	endpoint string
}

// GoogleOption configures the Google translator
type GoogleOption func(*Google)

// WithEndpoint overrides the translation endpoint, used in tests
func WithEndpoint(endpoint string) GoogleOption {
	return func(g *Google) { g.endpoint = endpoint }
}

// NewGoogle creates a Google translator with the given request timeout
func NewGoogle(timeout time.Duration, opts ...GoogleOption) *Google {
	g := &Google{
		client:   &http.Client{Timeout: timeout},
		endpoint: defaultEndpoint,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Translate requests a translation of text into the target language.
// Transient failures are retried with a short backoff; the caller is
// expected to fail open on error.
func (g *Google) Translate(ctx context.Context, text string, target domain.Lang) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto") // detect source language
	params.Set("tl", string(target))
	params.Set("dt", "t")
	params.Set("q", text)

	reqURL := g.endpoint + "?" + params.Encode()

	var result string
	retrier := repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		translated, err := g.call(ctx, reqURL)
		if err != nil {
			return err
		}
		result = translated
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("google translate %s: %w", target, err)
	}

	return result, nil
}

func (g *Google) call(ctx context.Context, reqURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	return parseResponse(body)
}

// parseResponse extracts translated text from the endpoint's nested-array
// payload: the first element is a list of segments, each segment's first
// element is the translated chunk. All chunks are concatenated.
func parseResponse(body []byte) (string, error) {
	var payload []interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(payload) == 0 {
		return "", fmt.Errorf("empty response")
	}

	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response format")
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if chunk, ok := parts[0].(string); ok {
			sb.WriteString(chunk)
		}
	}

	return sb.String(), nil
}
