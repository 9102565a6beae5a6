package valueobjects

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// MinTokenLength is the minimum accepted capability token length. Anything
// shorter is rejected before any store lookup.
const MinTokenLength = 40

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// ActionToken is an opaque bearer credential granting one action scope on
// one ticket.
type ActionToken string

func (t ActionToken) String() string {
	return string(t)
}

// NewActionToken validates token syntax: at least MinTokenLength characters
// drawn from [A-Za-z0-9-]. Semantic resolution against the store happens
// separately; this check bounds wasted lookups and blocks trivial injection.
func NewActionToken(raw string) (ActionToken, error) {
	if raw == "" {
		return "", fmt.Errorf("token is required")
	}
	if len(raw) < MinTokenLength {
		return "", fmt.Errorf("token too short: %d characters", len(raw))
	}
	if !tokenPattern.MatchString(raw) {
		return "", fmt.Errorf("token contains invalid characters")
	}
	return ActionToken(raw), nil
}

// GenerateActionToken issues a fresh high-entropy token. Two random UUIDs
// joined by a dash give 73 characters inside the accepted charset.
func GenerateActionToken() ActionToken {
	return ActionToken(uuid.NewString() + "-" + uuid.NewString())
}
