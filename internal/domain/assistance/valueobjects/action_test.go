package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_Scope(t *testing.T) {
	tests := []struct {
		action Action
		scope  TokenScope
	}{
		{ActionAccept, ScopeAcceptance},
		{ActionReject, ScopeAcceptance},
		{ActionSchedule, ScopeScheduling},
		{ActionReschedule, ScopeScheduling},
		{ActionComplete, ScopeValidation},
		{ActionValidate, ScopeValidation},
		{ActionView, ScopeAny},
		{ActionPortal, ScopeAny},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			scope, err := tt.action.Scope()
			require.NoError(t, err)
			assert.Equal(t, tt.scope, scope)
		})
	}

	_, err := Action("delete").Scope()
	assert.Error(t, err)
}

func TestNewWriteAction(t *testing.T) {
	for _, raw := range []string{"accept", "reject", "schedule", "reschedule", "complete"} {
		a, err := NewWriteAction(raw)
		require.NoError(t, err)
		assert.True(t, a.IsWrite())
	}

	// Read-only actions never reach the write pipeline.
	for _, raw := range []string{"view", "portal", "validate", "", "drop table"} {
		_, err := NewWriteAction(raw)
		assert.Error(t, err, "action %q should be rejected", raw)
	}
}

func TestNewReadAction(t *testing.T) {
	for _, raw := range []string{"accept", "schedule", "validate", "view", "portal"} {
		a, err := NewReadAction(raw)
		require.NoError(t, err)
		assert.True(t, a.IsRead())
	}

	for _, raw := range []string{"reject", "reschedule", "complete", ""} {
		_, err := NewReadAction(raw)
		assert.Error(t, err, "action %q should be rejected", raw)
	}
}
