// Package audit records security events emitted by the supplier portal.
// Recording is fire-and-forget: a failed audit write is logged but never
// fails the request that produced it.
package audit

import (
	"context"
	"time"

	"zelo/internal/domain/audit"
	"zelo/internal/shared/logger"
)

// ResourceAssistance is the resource type tag written on ticket events.
const ResourceAssistance = "assistance"

// Recorder is the narrow interface handlers and usecases depend on.
type Recorder interface {
	Record(ctx context.Context, e audit.Event)
}

// SecurityAuditor persists audit events through the audit repository.
type SecurityAuditor struct {
	repo   audit.Repository
	logger logger.Interface
}

func NewSecurityAuditor(repo audit.Repository, log logger.Interface) *SecurityAuditor {
	return &SecurityAuditor{
		repo:   repo,
		logger: log,
	}
}

// Record writes one audit row. Errors are swallowed after logging so the
// calling request keeps its own outcome.
func (a *SecurityAuditor) Record(ctx context.Context, e audit.Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}

	if err := a.repo.Save(ctx, &e); err != nil {
		a.logger.Errorw("failed to record audit event",
			"event_type", e.EventType,
			"resource_id", e.ResourceID,
			"client_ip", e.ClientIP,
			"error", err,
		)
	}
}
