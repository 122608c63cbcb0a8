package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrShopifyNotConfigured is returned when store credentials are missing.
var ErrShopifyNotConfigured = errors.New("shopify is not configured")

type gqlReq struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResp struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// shopifyHTTP performs authenticated Shopify requests. baseURL is the
// store origin, normally "https://<shop>.myshopify.com".
type shopifyHTTP struct {
	baseURL     string
	tokenHeader string
	token       string
	client      *http.Client
}

func newShopifyHTTP(baseURL, tokenHeader, token string) *shopifyHTTP {
	return &shopifyHTTP{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		tokenHeader: tokenHeader,
		token:       token,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func storeOrigin(domain string) string {
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	return "https://" + domain
}

// graphQL posts a query to path and decodes its data member into out.
func (s *shopifyHTTP) graphQL(ctx context.Context, path string, req gqlReq, out any) error {
	b, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	raw, err := s.do(ctx, http.MethodPost, path, bytes.NewReader(b))
	if err != nil {
		return err
	}

	var resp gqlResp
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("failed to decode graphql response: %w", err)
	}
	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("graphql errors: %s", strings.Join(msgs, "; "))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to decode graphql data: %w", err)
	}
	return nil
}

// getJSON issues a GET to path and decodes the body into out.
func (s *shopifyHTTP) getJSON(ctx context.Context, path string, out any) error {
	raw, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (s *shopifyHTTP) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set(s.tokenHeader, s.token)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
