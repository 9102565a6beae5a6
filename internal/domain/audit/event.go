// Package audit defines the append-only security event record written by
// every security-sensitive code path. Events are never read back by the
// application outside of diagnostics.
package audit

import (
	"context"
	"time"
)

// EventType classifies a security event. Every distinct gateway outcome
// gets its own type so post-hoc analysis can tell brute-force attempts from
// format errors from legitimate misuse.
type EventType string

const (
	EventRateLimitExceeded    EventType = "RATE_LIMIT_EXCEEDED"
	EventMissingToken         EventType = "MISSING_TOKEN"
	EventInvalidTokenFormat   EventType = "INVALID_TOKEN_FORMAT"
	EventInvalidAction        EventType = "INVALID_ACTION"
	EventTokenNotFound        EventType = "TOKEN_NOT_FOUND"
	EventInvalidTransition    EventType = "INVALID_TRANSITION"
	EventTokenAccessSuccess   EventType = "TOKEN_ACCESS_SUCCESS"
	EventSupplierActionOK     EventType = "SUPPLIER_ACTION_SUCCESS"
	EventSupplierActionFailed EventType = "SUPPLIER_ACTION_FAILED"
)

// Event is one audit row. OldValue/NewValue carry the status move for
// successful transitions.
type Event struct {
	EventType    EventType
	ResourceType string
	ResourceID   uint
	ClientIP     string
	UserAgent    string
	ActorRole    string
	OldValue     string
	NewValue     string
	Details      string
	OccurredAt   time.Time
}

type Repository interface {
	Save(ctx context.Context, e *Event) error
}
