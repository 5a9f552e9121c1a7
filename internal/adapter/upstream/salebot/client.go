package salebot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/forward_lead"
)

// Client talks to the Salebot callback API. It implements
// forward_lead.Upstream with per-platform callback routes and bounded
// connect/total timeouts.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client with a dedicated transport so the connect
// timeout is enforced separately from the total request timeout.
func NewClient(baseURL, apiKey string, connectTimeout, totalTimeout time.Duration) *Client {
	dialer := &net.Dialer{Timeout: connectTimeout}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: totalTimeout,
			Transport: &http.Transport{
				DialContext:         dialer.DialContext,
				TLSHandshakeTimeout: connectTimeout,
			},
		},
	}
}

// Send posts the payload to the platform's callback route and returns
// whatever the CRM replied, success or not. Only transport-level
// failures come back as errors.
func (c *Client) Send(ctx context.Context, platform entity.Platform, payload []byte) (*forward_lead.UpstreamResponse, error) {
	url := fmt.Sprintf("%s/api/%s/%s", c.baseURL, c.apiKey, platform.CallbackPath())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return &forward_lead.UpstreamResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
