package forward_lead

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
)

// Terminal failure classes of the forwarding stage. The HTTP layer maps
// them to status codes; the upstream transport detail never reaches the
// caller.
var (
	// ErrConfigMissing means the upstream credentials are absent. An
	// operator error, never a client error.
	ErrConfigMissing = errors.New("server configuration missing")

	// ErrVKGroupNotConfigured means a VK request arrived but no VK
	// group id is configured. Failing is preferred over silently
	// routing to Telegram.
	ErrVKGroupNotConfigured = errors.New("vk group_id not configured")

	// ErrUpstreamTransport wraps DNS/connect/timeout failures talking
	// to the CRM.
	ErrUpstreamTransport = errors.New("upstream transport failure")
)

// Credentials is the secret upstream configuration: the CRM API key plus
// one group/channel identifier per supported platform.
type Credentials struct {
	APIKey    string
	GroupID   string
	GroupIDVK string
}

// groupFor returns the identifier to inject for a platform. A missing
// identifier for the selected platform is a checked configuration error.
func (c Credentials) groupFor(p entity.Platform) (string, error) {
	if c.APIKey == "" || c.GroupID == "" {
		return "", ErrConfigMissing
	}
	if p == entity.PlatformVK {
		if c.GroupIDVK == "" {
			return "", ErrVKGroupNotConfigured
		}
		return c.GroupIDVK, nil
	}
	return c.GroupID, nil
}

// UpstreamResponse is the CRM's reply, relayed verbatim to the caller.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// Upstream is the outbound CRM transport. Implementations must bound the
// call with the configured connect/total timeouts.
type Upstream interface {
	Send(ctx context.Context, platform entity.Platform, payload []byte) (*UpstreamResponse, error)
}

// Output carries the upstream reply to the HTTP layer.
type Output struct {
	StatusCode int
	Body       []byte
}

// UseCase injects the platform's group identifier into the payload and
// forwards it to the CRM. No retries: every failure is terminal for the
// current request.
type UseCase struct {
	upstream Upstream
	creds    Credentials
}

// NewUseCase creates a new instance using dependency injection
func NewUseCase(upstream Upstream, creds Credentials) *UseCase {
	return &UseCase{upstream: upstream, creds: creds}
}

// Execute resolves the platform's group identifier, injects it into the
// payload (overwriting any client-supplied value), and performs the
// outbound call. Transport failures come back wrapped in
// ErrUpstreamTransport with the detail preserved for diagnostic logging.
func (uc *UseCase) Execute(ctx context.Context, input Input) (*Output, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	groupID, err := uc.creds.groupFor(input.Platform)
	if err != nil {
		return nil, err
	}

	input.Payload["group_id"] = groupID

	body, err := json.Marshal(input.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize payload: %w", err)
	}

	resp, err := uc.upstream.Send(ctx, input.Platform, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTransport, err)
	}

	return &Output{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}, nil
}
