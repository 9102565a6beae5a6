package assistance

import (
	"errors"
	"fmt"
	"time"

	vo "zelo/internal/domain/assistance/valueobjects"
)

// ErrInvalidTransition marks a status change that is not reachable through
// declared edges of the transition table. Callers translate it to the
// invalid_transition error surfaced on the public API.
var ErrInvalidTransition = errors.New("invalid_transition")

// Assistance is the aggregate root for a maintenance request ticket. All
// status changes go through declared transition-table edges; supplier
// actions that outwardly skip a state (accept straight to Agendado) advance
// through the intermediate states hop by hop.
type Assistance struct {
	id          uint
	buildingID  uint
	supplierID  *uint
	category    vo.Category
	priority    vo.Priority
	description string
	status      vo.Status

	acceptanceToken vo.ActionToken
	schedulingToken vo.ActionToken
	validationToken vo.ActionToken

	scheduledAt      *time.Time
	rejectionReason  string
	rescheduleReason string

	validationReminderCount int
	validationEmailSentAt   *time.Time

	respondedAt *time.Time
	completedAt *time.Time
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAssistance(
	buildingID uint,
	category vo.Category,
	priority vo.Priority,
	description string,
) (*Assistance, error) {
	if buildingID == 0 {
		return nil, fmt.Errorf("building ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	now := time.Now()
	return &Assistance{
		buildingID:      buildingID,
		category:        category,
		priority:        priority,
		description:     description,
		status:          vo.StatusPendingInitialResponse,
		acceptanceToken: vo.GenerateActionToken(),
		schedulingToken: vo.GenerateActionToken(),
		validationToken: vo.GenerateActionToken(),
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id uint,
	buildingID uint,
	supplierID *uint,
	category vo.Category,
	priority vo.Priority,
	description string,
	status vo.Status,
	acceptanceToken vo.ActionToken,
	schedulingToken vo.ActionToken,
	validationToken vo.ActionToken,
	scheduledAt *time.Time,
	rejectionReason string,
	rescheduleReason string,
	validationReminderCount int,
	validationEmailSentAt *time.Time,
	respondedAt *time.Time,
	completedAt *time.Time,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Assistance, error) {
	if id == 0 {
		return nil, fmt.Errorf("assistance ID cannot be zero")
	}
	if buildingID == 0 {
		return nil, fmt.Errorf("building ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Assistance{
		id:                      id,
		buildingID:              buildingID,
		supplierID:              supplierID,
		category:                category,
		priority:                priority,
		description:             description,
		status:                  status,
		acceptanceToken:         acceptanceToken,
		schedulingToken:         schedulingToken,
		validationToken:         validationToken,
		scheduledAt:             scheduledAt,
		rejectionReason:         rejectionReason,
		rescheduleReason:        rescheduleReason,
		validationReminderCount: validationReminderCount,
		validationEmailSentAt:   validationEmailSentAt,
		respondedAt:             respondedAt,
		completedAt:             completedAt,
		cancelledAt:             cancelledAt,
		createdAt:               createdAt,
		updatedAt:               updatedAt,
	}, nil
}

func (a *Assistance) ID() uint                 { return a.id }
func (a *Assistance) BuildingID() uint         { return a.buildingID }
func (a *Assistance) SupplierID() *uint        { return a.supplierID }
func (a *Assistance) Category() vo.Category    { return a.category }
func (a *Assistance) Priority() vo.Priority    { return a.priority }
func (a *Assistance) Description() string      { return a.description }
func (a *Assistance) Status() vo.Status        { return a.status }
func (a *Assistance) ScheduledAt() *time.Time  { return a.scheduledAt }
func (a *Assistance) RejectionReason() string  { return a.rejectionReason }
func (a *Assistance) RescheduleReason() string { return a.rescheduleReason }
func (a *Assistance) RespondedAt() *time.Time  { return a.respondedAt }
func (a *Assistance) CompletedAt() *time.Time  { return a.completedAt }
func (a *Assistance) CancelledAt() *time.Time  { return a.cancelledAt }
func (a *Assistance) CreatedAt() time.Time     { return a.createdAt }
func (a *Assistance) UpdatedAt() time.Time     { return a.updatedAt }

func (a *Assistance) AcceptanceToken() vo.ActionToken { return a.acceptanceToken }
func (a *Assistance) SchedulingToken() vo.ActionToken { return a.schedulingToken }
func (a *Assistance) ValidationToken() vo.ActionToken { return a.validationToken }

func (a *Assistance) ValidationReminderCount() int      { return a.validationReminderCount }
func (a *Assistance) ValidationEmailSentAt() *time.Time { return a.validationEmailSentAt }

func (a *Assistance) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assistance ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assistance ID cannot be zero")
	}
	a.id = id
	return nil
}

// TokenFor returns the capability token for the given scope.
func (a *Assistance) TokenFor(scope vo.TokenScope) (vo.ActionToken, error) {
	switch scope {
	case vo.ScopeAcceptance:
		return a.acceptanceToken, nil
	case vo.ScopeScheduling:
		return a.schedulingToken, nil
	case vo.ScopeValidation:
		return a.validationToken, nil
	default:
		return "", fmt.Errorf("no single token for scope %s", scope)
	}
}

// OwnsToken reports whether token is the ticket's credential for scope.
// ScopeAny matches any of the three columns.
func (a *Assistance) OwnsToken(scope vo.TokenScope, token vo.ActionToken) bool {
	switch scope {
	case vo.ScopeAcceptance:
		return token == a.acceptanceToken
	case vo.ScopeScheduling:
		return token == a.schedulingToken
	case vo.ScopeValidation:
		return token == a.validationToken
	case vo.ScopeAny:
		return token == a.acceptanceToken || token == a.schedulingToken || token == a.validationToken
	default:
		return false
	}
}

// AssignSupplier attaches a supplier to the ticket. Assignment does not move
// status; the supplier responds through the emailed acceptance link.
func (a *Assistance) AssignSupplier(supplierID uint) error {
	if supplierID == 0 {
		return fmt.Errorf("supplier ID cannot be zero")
	}
	if a.status.IsTerminal() {
		return fmt.Errorf("cannot assign supplier to a %s ticket", a.status)
	}
	a.supplierID = &supplierID
	a.touch()
	return nil
}

// advance moves status to target through declared edges only.
func (a *Assistance) advance(target vo.Status) error {
	path := a.status.PathTo(target)
	if path == nil {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, a.status, target)
	}
	a.status = path[len(path)-1]
	a.touch()
	return nil
}

// Accept records the supplier accepting the work. With a datetime the ticket
// lands on Agendado in one step; without one it waits on Pendente
// Agendamento for a later scheduling call.
func (a *Assistance) Accept(scheduledAt *time.Time) error {
	if err := a.advance(vo.StatusPendingScheduling); err != nil {
		return err
	}
	a.markResponded()
	if scheduledAt == nil {
		return nil
	}
	if err := a.advance(vo.StatusScheduled); err != nil {
		return err
	}
	a.scheduledAt = scheduledAt
	return nil
}

// Reject records the supplier declining the work.
func (a *Assistance) Reject(reason string) error {
	if len(reason) == 0 {
		return fmt.Errorf("rejection reason is required")
	}
	if err := a.advance(vo.StatusDeclinedBySupplier); err != nil {
		return err
	}
	a.rejectionReason = reason
	a.markResponded()
	return nil
}

// Schedule sets the visit datetime on a ticket awaiting scheduling. Only a
// direct edge qualifies; rescheduling an already scheduled ticket goes
// through Reschedule.
func (a *Assistance) Schedule(scheduledAt time.Time) error {
	if !a.status.CanTransitionTo(vo.StatusScheduled) {
		return fmt.Errorf("%w: cannot schedule from %s", ErrInvalidTransition, a.status)
	}
	a.status = vo.StatusScheduled
	a.scheduledAt = &scheduledAt
	a.touch()
	return nil
}

// Reschedule replaces the visit datetime on an already scheduled ticket,
// passing through Reagendamento Solicitado.
func (a *Assistance) Reschedule(scheduledAt time.Time, reason string) error {
	if err := a.advance(vo.StatusScheduled); err != nil {
		return err
	}
	a.scheduledAt = &scheduledAt
	a.rescheduleReason = reason
	return nil
}

// Complete moves the ticket to Pendente Validação and resets the reminder
// counter so the validation nudge cycle starts fresh.
func (a *Assistance) Complete() error {
	if err := a.advance(vo.StatusPendingValidation); err != nil {
		return err
	}
	a.validationReminderCount = 0
	return nil
}

// Validate is the administrator confirming completed work.
func (a *Assistance) Validate() error {
	if err := a.advance(vo.StatusCompleted); err != nil {
		return err
	}
	now := time.Now()
	a.completedAt = &now
	return nil
}

// ExpireValidation marks a validation window that lapsed without an admin
// decision.
func (a *Assistance) ExpireValidation() error {
	if a.status != vo.StatusPendingValidation {
		return fmt.Errorf("%w: cannot expire validation from %s", ErrInvalidTransition, a.status)
	}
	return a.advance(vo.StatusValidationExpired)
}

// MarkInProgress records that work has started on a scheduled ticket.
func (a *Assistance) MarkInProgress() error {
	if a.status != vo.StatusScheduled {
		return fmt.Errorf("%w: cannot start work from %s", ErrInvalidTransition, a.status)
	}
	return a.advance(vo.StatusInProgress)
}

// Cancel closes the ticket from any non-cancelled state with a declared
// edge to Cancelado.
func (a *Assistance) Cancel() error {
	if !a.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, a.status)
	}
	a.status = vo.StatusCancelled
	now := time.Now()
	a.cancelledAt = &now
	a.touch()
	return nil
}

// Reopen moves a cancelled ticket back into the flow. Only the two states
// the table declares as reopening targets are accepted.
func (a *Assistance) Reopen(target vo.Status) error {
	if target != vo.StatusPendingInitialResponse && target != vo.StatusPendingAcceptance {
		return fmt.Errorf("%w: cannot reopen to %s", ErrInvalidTransition, target)
	}
	if !a.status.IsCancelled() {
		return fmt.Errorf("%w: only cancelled tickets can be reopened", ErrInvalidTransition)
	}
	if err := a.advance(target); err != nil {
		return err
	}
	a.cancelledAt = nil
	return nil
}

// RecordValidationReminder bumps the day-after reminder counter and stamps
// the send time.
func (a *Assistance) RecordValidationReminder(sentAt time.Time) {
	a.validationReminderCount++
	a.validationEmailSentAt = &sentAt
	a.touch()
}

func (a *Assistance) markResponded() {
	if a.respondedAt == nil {
		now := time.Now()
		a.respondedAt = &now
	}
}

func (a *Assistance) touch() {
	a.updatedAt = time.Now()
}
