package assistance

import (
	"fmt"
	"time"
)

// AuthorRole identifies who wrote a thread entry.
type AuthorRole string

const (
	RoleAdmin      AuthorRole = "admin"
	RoleContractor AuthorRole = "contractor"
	RoleSupplier   AuthorRole = "supplier"
	RoleTenant     AuthorRole = "tenant"
	RoleSystem     AuthorRole = "system"
)

var validAuthorRoles = map[AuthorRole]bool{
	RoleAdmin:      true,
	RoleContractor: true,
	RoleSupplier:   true,
	RoleTenant:     true,
	RoleSystem:     true,
}

func (r AuthorRole) IsValid() bool {
	return validAuthorRoles[r]
}

// Communication is an append-only message thread entry on a ticket. Entries
// are never mutated or deleted after creation.
type Communication struct {
	id           uint
	assistanceID uint
	message      string
	authorName   string
	authorRole   AuthorRole

	visibleToContractor bool
	visibleToTenant     bool
	internal            bool

	createdAt time.Time
}

func NewCommunication(
	assistanceID uint,
	message string,
	authorName string,
	authorRole AuthorRole,
	visibleToContractor bool,
	visibleToTenant bool,
	internal bool,
) (*Communication, error) {
	if assistanceID == 0 {
		return nil, fmt.Errorf("assistance ID is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", authorRole)
	}

	return &Communication{
		assistanceID:        assistanceID,
		message:             message,
		authorName:          authorName,
		authorRole:          authorRole,
		visibleToContractor: visibleToContractor,
		visibleToTenant:     visibleToTenant,
		internal:            internal,
		createdAt:           time.Now(),
	}, nil
}

func ReconstructCommunication(
	id uint,
	assistanceID uint,
	message string,
	authorName string,
	authorRole AuthorRole,
	visibleToContractor bool,
	visibleToTenant bool,
	internal bool,
	createdAt time.Time,
) (*Communication, error) {
	if id == 0 {
		return nil, fmt.Errorf("communication ID cannot be zero")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", authorRole)
	}
	return &Communication{
		id:                  id,
		assistanceID:        assistanceID,
		message:             message,
		authorName:          authorName,
		authorRole:          authorRole,
		visibleToContractor: visibleToContractor,
		visibleToTenant:     visibleToTenant,
		internal:            internal,
		createdAt:           createdAt,
	}, nil
}

func (c *Communication) ID() uint                  { return c.id }
func (c *Communication) AssistanceID() uint        { return c.assistanceID }
func (c *Communication) Message() string           { return c.message }
func (c *Communication) AuthorName() string        { return c.authorName }
func (c *Communication) AuthorRole() AuthorRole    { return c.authorRole }
func (c *Communication) VisibleToContractor() bool { return c.visibleToContractor }
func (c *Communication) VisibleToTenant() bool     { return c.visibleToTenant }
func (c *Communication) IsInternal() bool          { return c.internal }
func (c *Communication) CreatedAt() time.Time      { return c.createdAt }

func (c *Communication) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("communication ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("communication ID cannot be zero")
	}
	c.id = id
	return nil
}
