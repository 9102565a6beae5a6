package assistance

import (
	"context"
	"errors"
	"time"

	vo "zelo/internal/domain/assistance/valueobjects"
)

// ErrStatusConflict is returned by UpdateStatus when the conditional update
// matched no row: another writer moved the ticket off the expected status
// between read and write.
var ErrStatusConflict = errors.New("assistance status changed concurrently")

type Repository interface {
	Save(ctx context.Context, a *Assistance) error
	Update(ctx context.Context, a *Assistance) error
	GetByID(ctx context.Context, id uint) (*Assistance, error)

	// GetByActionToken resolves the ticket whose token column for the given
	// scope holds exactly this value. ScopeAny checks all three columns.
	GetByActionToken(ctx context.Context, scope vo.TokenScope, token vo.ActionToken) (*Assistance, error)

	// UpdateStatus persists the aggregate's status and side-effect fields as
	// a single conditional statement guarded on the expected previous
	// status. Returns ErrStatusConflict when no row matched.
	UpdateStatus(ctx context.Context, a *Assistance, expected vo.Status) error

	List(ctx context.Context, filter Filter) ([]*Assistance, int64, error)

	// ListScheduledBetween returns tickets in Agendado whose scheduled
	// datetime falls within [from, to).
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*Assistance, error)
}

type Filter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	Category   *vo.Category
	BuildingID *uint
	SupplierID *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type CommunicationRepository interface {
	Save(ctx context.Context, c *Communication) error
	ListByAssistanceID(ctx context.Context, assistanceID uint) ([]*Communication, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, at *Attachment) error
	ListByAssistanceID(ctx context.Context, assistanceID uint) ([]*Attachment, error)
}
