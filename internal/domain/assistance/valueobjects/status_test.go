package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	all := []Status{
		StatusPendingInitialResponse,
		StatusPendingAcceptance,
		StatusPendingScheduling,
		StatusScheduled,
		StatusInProgress,
		StatusPendingValidation,
		StatusValidationExpired,
		StatusRescheduleRequested,
		StatusDeclinedBySupplier,
		StatusCompleted,
		StatusCancelled,
	}
	for _, s := range all {
		assert.True(t, s.IsValid(), "status %q should be valid", s)
	}

	assert.False(t, Status("").IsValid())
	assert.False(t, Status("Pendente").IsValid())
	assert.False(t, Status("pendente resposta inicial").IsValid())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"initial response to acceptance", StatusPendingInitialResponse, StatusPendingAcceptance, true},
		{"initial response to cancelled", StatusPendingInitialResponse, StatusCancelled, true},
		{"initial response to scheduled", StatusPendingInitialResponse, StatusScheduled, false},
		{"acceptance to pending scheduling", StatusPendingAcceptance, StatusPendingScheduling, true},
		{"acceptance to declined", StatusPendingAcceptance, StatusDeclinedBySupplier, true},
		{"acceptance to scheduled direct", StatusPendingAcceptance, StatusScheduled, false},
		{"pending scheduling to scheduled", StatusPendingScheduling, StatusScheduled, true},
		{"pending scheduling to declined", StatusPendingScheduling, StatusDeclinedBySupplier, true},
		{"scheduled to in progress", StatusScheduled, StatusInProgress, true},
		{"scheduled to reschedule requested", StatusScheduled, StatusRescheduleRequested, true},
		{"scheduled to pending validation direct", StatusScheduled, StatusPendingValidation, false},
		{"in progress to pending validation", StatusInProgress, StatusPendingValidation, true},
		{"pending validation to completed", StatusPendingValidation, StatusCompleted, true},
		{"pending validation to expired", StatusPendingValidation, StatusValidationExpired, true},
		{"expired back to pending validation", StatusValidationExpired, StatusPendingValidation, true},
		{"expired to completed", StatusValidationExpired, StatusCompleted, true},
		{"reschedule requested back to scheduled", StatusRescheduleRequested, StatusScheduled, true},
		{"declined back to acceptance", StatusDeclinedBySupplier, StatusPendingAcceptance, true},
		{"completed to cancelled", StatusCompleted, StatusCancelled, true},
		{"completed to in progress", StatusCompleted, StatusInProgress, false},
		{"cancelled to initial response", StatusCancelled, StatusPendingInitialResponse, true},
		{"cancelled to acceptance", StatusCancelled, StatusPendingAcceptance, true},
		{"cancelled to scheduled", StatusCancelled, StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_PathTo(t *testing.T) {
	t.Run("direct edge yields single hop", func(t *testing.T) {
		path := StatusPendingScheduling.PathTo(StatusScheduled)
		assert.Equal(t, []Status{StatusScheduled}, path)
	})

	t.Run("two hop path through intermediate state", func(t *testing.T) {
		path := StatusPendingAcceptance.PathTo(StatusScheduled)
		assert.Equal(t, []Status{StatusPendingScheduling, StatusScheduled}, path)
	})

	t.Run("scheduled reaches scheduled again via reschedule request", func(t *testing.T) {
		path := StatusScheduled.PathTo(StatusScheduled)
		assert.Equal(t, []Status{StatusRescheduleRequested, StatusScheduled}, path)
	})

	t.Run("no path beyond two hops", func(t *testing.T) {
		assert.Nil(t, StatusPendingInitialResponse.PathTo(StatusScheduled))
		assert.Nil(t, StatusCompleted.PathTo(StatusInProgress))
	})
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusScheduled.IsTerminal())

	assert.True(t, StatusScheduled.IsScheduled())
	assert.True(t, StatusPendingScheduling.IsPendingScheduling())
	assert.True(t, StatusPendingValidation.IsPendingValidation())
	assert.True(t, StatusCancelled.IsCancelled())
	assert.False(t, StatusCompleted.IsCancelled())
}
