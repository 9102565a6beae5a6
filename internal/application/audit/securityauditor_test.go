package audit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zelo/internal/domain/audit"
	"zelo/internal/shared/logger"
)

type mockAuditRepository struct {
	SaveFunc func(ctx context.Context, e *audit.Event) error
	Saved    []*audit.Event
}

func (m *mockAuditRepository) Save(ctx context.Context, e *audit.Event) error {
	m.Saved = append(m.Saved, e)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

type mockLogger struct {
	ErrorwCalls int
}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) { m.ErrorwCalls++ }
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func TestSecurityAuditorStampsOccurredAt(t *testing.T) {
	repo := &mockAuditRepository{}
	auditor := NewSecurityAuditor(repo, &mockLogger{})

	auditor.Record(context.Background(), audit.Event{
		EventType:    audit.EventMissingToken,
		ResourceType: ResourceAssistance,
		ClientIP:     "203.0.113.7",
	})

	require.Len(t, repo.Saved, 1)
	assert.False(t, repo.Saved[0].OccurredAt.IsZero())
}

func TestSecurityAuditorKeepsExplicitOccurredAt(t *testing.T) {
	repo := &mockAuditRepository{}
	auditor := NewSecurityAuditor(repo, &mockLogger{})

	at := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	auditor.Record(context.Background(), audit.Event{
		EventType:  audit.EventTokenNotFound,
		OccurredAt: at,
	})

	require.Len(t, repo.Saved, 1)
	assert.Equal(t, at, repo.Saved[0].OccurredAt)
}

func TestSecurityAuditorSwallowsSaveFailure(t *testing.T) {
	repo := &mockAuditRepository{
		SaveFunc: func(ctx context.Context, e *audit.Event) error {
			return fmt.Errorf("disk full")
		},
	}
	log := &mockLogger{}
	auditor := NewSecurityAuditor(repo, log)

	// Must not panic or propagate; the caller's request already has its outcome.
	auditor.Record(context.Background(), audit.Event{EventType: audit.EventRateLimitExceeded})

	assert.Equal(t, 1, log.ErrorwCalls)
}
