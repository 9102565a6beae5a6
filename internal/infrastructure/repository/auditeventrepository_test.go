package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zelo/internal/domain/audit"
	"zelo/internal/infrastructure/persistence/models"
)

func TestAuditEventRepository_Save(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAuditEventRepository(gdb)
	ctx := context.Background()

	e := &audit.Event{
		EventType:    audit.EventInvalidTokenFormat,
		ResourceType: "assistance",
		ResourceID:   42,
		ClientIP:     "203.0.113.7",
		UserAgent:    "curl/8.0",
		ActorRole:    "supplier",
		Details:      "action=accept",
		OccurredAt:   time.Now(),
	}

	require.NoError(t, repo.Save(ctx, e))

	var rows []models.AuditEventModel
	require.NoError(t, gdb.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, string(audit.EventInvalidTokenFormat), rows[0].EventType)
	assert.Equal(t, uint(42), rows[0].ResourceID)
	assert.Equal(t, "203.0.113.7", rows[0].ClientIP)
}
