package forward_lead

import (
	"errors"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
)

// Input is one admitted relay payload. Payload is the decoded request
// body; all fields beyond the required ones are forwarded untouched.
type Input struct {
	Platform entity.Platform
	Payload  map[string]any
}

// Validate checks the invariants the handler is expected to have already
// established before the use case runs.
func (i Input) Validate() error {
	if i.Payload == nil {
		return errors.New("payload must not be nil")
	}
	if i.Platform != entity.PlatformTelegram && i.Platform != entity.PlatformVK {
		return errors.New("unknown platform")
	}
	return nil
}
