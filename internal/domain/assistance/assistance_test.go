package assistance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "zelo/internal/domain/assistance/valueobjects"
)

func newTestAssistance(t *testing.T, status vo.Status) *Assistance {
	t.Helper()

	a, err := NewAssistance(1, vo.CategoryPlumbing, vo.PriorityNormal, "fuga de água na garagem")
	require.NoError(t, err)
	require.NoError(t, a.SetID(42))

	// Walk the fixture to the desired state through real transitions so the
	// aggregate never holds a state the table cannot produce.
	switch status {
	case vo.StatusPendingInitialResponse:
	case vo.StatusPendingAcceptance:
		require.NoError(t, a.advance(vo.StatusPendingAcceptance))
	case vo.StatusPendingScheduling:
		require.NoError(t, a.advance(vo.StatusPendingAcceptance))
		require.NoError(t, a.Accept(nil))
	case vo.StatusScheduled:
		require.NoError(t, a.advance(vo.StatusPendingAcceptance))
		when := time.Now().Add(48 * time.Hour)
		require.NoError(t, a.Accept(&when))
	case vo.StatusInProgress:
		require.NoError(t, a.advance(vo.StatusPendingAcceptance))
		when := time.Now().Add(48 * time.Hour)
		require.NoError(t, a.Accept(&when))
		require.NoError(t, a.MarkInProgress())
	case vo.StatusPendingValidation:
		require.NoError(t, a.advance(vo.StatusPendingAcceptance))
		when := time.Now().Add(48 * time.Hour)
		require.NoError(t, a.Accept(&when))
		require.NoError(t, a.MarkInProgress())
		require.NoError(t, a.Complete())
	case vo.StatusCancelled:
		require.NoError(t, a.Cancel())
	default:
		t.Fatalf("no fixture path to status %s", status)
	}

	require.Equal(t, status, a.Status())
	return a
}

func TestNewAssistance(t *testing.T) {
	a, err := NewAssistance(7, vo.CategoryElectrical, vo.PriorityUrgent, "quadro elétrico a disparar")
	require.NoError(t, err)

	assert.Equal(t, vo.StatusPendingInitialResponse, a.Status())
	assert.Equal(t, uint(7), a.BuildingID())
	assert.Nil(t, a.SupplierID())

	// Three distinct capability tokens are minted at creation.
	assert.NotEmpty(t, a.AcceptanceToken())
	assert.NotEmpty(t, a.SchedulingToken())
	assert.NotEmpty(t, a.ValidationToken())
	assert.NotEqual(t, a.AcceptanceToken(), a.SchedulingToken())
	assert.NotEqual(t, a.SchedulingToken(), a.ValidationToken())
}

func TestNewAssistance_Validation(t *testing.T) {
	_, err := NewAssistance(0, vo.CategoryPlumbing, vo.PriorityNormal, "desc")
	assert.Error(t, err)

	_, err = NewAssistance(1, vo.Category("inexistente"), vo.PriorityNormal, "desc")
	assert.Error(t, err)

	_, err = NewAssistance(1, vo.CategoryPlumbing, vo.PriorityNormal, "")
	assert.Error(t, err)
}

func TestAssistance_AcceptWithoutDatetime(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingAcceptance)

	require.NoError(t, a.Accept(nil))

	assert.Equal(t, vo.StatusPendingScheduling, a.Status())
	assert.Nil(t, a.ScheduledAt())
	assert.NotNil(t, a.RespondedAt())
}

func TestAssistance_AcceptWithDatetime(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingAcceptance)
	when := time.Now().Add(72 * time.Hour)

	require.NoError(t, a.Accept(&when))

	assert.Equal(t, vo.StatusScheduled, a.Status())
	require.NotNil(t, a.ScheduledAt())
	assert.True(t, a.ScheduledAt().Equal(when))
}

func TestAssistance_AcceptTwiceFails(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingAcceptance)
	require.NoError(t, a.Accept(nil))

	err := a.Accept(nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, vo.StatusPendingScheduling, a.Status())
}

func TestAssistance_Reject(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingAcceptance)

	require.NoError(t, a.Reject("sem disponibilidade este mês"))

	assert.Equal(t, vo.StatusDeclinedBySupplier, a.Status())
	assert.Equal(t, "sem disponibilidade este mês", a.RejectionReason())
	assert.NotNil(t, a.RespondedAt())
}

func TestAssistance_RejectRequiresReason(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingAcceptance)

	err := a.Reject("")
	assert.Error(t, err)
	assert.Equal(t, vo.StatusPendingAcceptance, a.Status())
}

func TestAssistance_Schedule(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingScheduling)
	when := time.Now().Add(24 * time.Hour)

	require.NoError(t, a.Schedule(when))

	assert.Equal(t, vo.StatusScheduled, a.Status())
	require.NotNil(t, a.ScheduledAt())
	assert.True(t, a.ScheduledAt().Equal(when))
}

func TestAssistance_ScheduleRequiresDirectEdge(t *testing.T) {
	// An already scheduled ticket must go through Reschedule, not Schedule.
	a := newTestAssistance(t, vo.StatusScheduled)

	err := a.Schedule(time.Now().Add(24 * time.Hour))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAssistance_Reschedule(t *testing.T) {
	a := newTestAssistance(t, vo.StatusScheduled)
	newWhen := time.Now().Add(96 * time.Hour)

	require.NoError(t, a.Reschedule(newWhen, "obra atrasada"))

	assert.Equal(t, vo.StatusScheduled, a.Status())
	require.NotNil(t, a.ScheduledAt())
	assert.True(t, a.ScheduledAt().Equal(newWhen))
	assert.Equal(t, "obra atrasada", a.RescheduleReason())
}

func TestAssistance_Complete(t *testing.T) {
	a := newTestAssistance(t, vo.StatusInProgress)
	a.RecordValidationReminder(time.Now())
	require.Equal(t, 1, a.ValidationReminderCount())

	require.NoError(t, a.Complete())

	assert.Equal(t, vo.StatusPendingValidation, a.Status())
	assert.Equal(t, 0, a.ValidationReminderCount(), "completion restarts the reminder cycle")
}

func TestAssistance_CompleteFromScheduled(t *testing.T) {
	// Scheduled reaches Pendente Validação through Em Progresso in two hops.
	a := newTestAssistance(t, vo.StatusScheduled)

	require.NoError(t, a.Complete())
	assert.Equal(t, vo.StatusPendingValidation, a.Status())
}

func TestAssistance_Validate(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingValidation)

	require.NoError(t, a.Validate())

	assert.Equal(t, vo.StatusCompleted, a.Status())
	assert.NotNil(t, a.CompletedAt())
}

func TestAssistance_CancelAndReopen(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingInitialResponse)

	require.NoError(t, a.Cancel())
	assert.Equal(t, vo.StatusCancelled, a.Status())
	assert.NotNil(t, a.CancelledAt())

	require.NoError(t, a.Reopen(vo.StatusPendingAcceptance))
	assert.Equal(t, vo.StatusPendingAcceptance, a.Status())
	assert.Nil(t, a.CancelledAt())
}

func TestAssistance_ReopenRejectsOtherTargets(t *testing.T) {
	a := newTestAssistance(t, vo.StatusCancelled)

	err := a.Reopen(vo.StatusScheduled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	live := newTestAssistance(t, vo.StatusScheduled)
	err = live.Reopen(vo.StatusPendingAcceptance)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAssistance_AssignSupplier(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingInitialResponse)

	require.NoError(t, a.AssignSupplier(9))
	require.NotNil(t, a.SupplierID())
	assert.Equal(t, uint(9), *a.SupplierID())

	done := newTestAssistance(t, vo.StatusCancelled)
	assert.Error(t, done.AssignSupplier(9))
}

func TestAssistance_OwnsToken(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingAcceptance)

	assert.True(t, a.OwnsToken(vo.ScopeAcceptance, a.AcceptanceToken()))
	assert.False(t, a.OwnsToken(vo.ScopeAcceptance, a.SchedulingToken()))
	assert.True(t, a.OwnsToken(vo.ScopeAny, a.ValidationToken()))
	assert.False(t, a.OwnsToken(vo.ScopeAny, vo.GenerateActionToken()))
}

func TestAssistance_RecordValidationReminder(t *testing.T) {
	a := newTestAssistance(t, vo.StatusPendingValidation)
	sentAt := time.Now()

	a.RecordValidationReminder(sentAt)
	a.RecordValidationReminder(sentAt.Add(24 * time.Hour))

	assert.Equal(t, 2, a.ValidationReminderCount())
	require.NotNil(t, a.ValidationEmailSentAt())
}
