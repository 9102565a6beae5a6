package supplier

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Supplier is an external contractor that performs assistance work.
type Supplier struct {
	id        uint
	name      string
	email     string
	phone     string
	specialty string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSupplier(name, email, phone, specialty string) (*Supplier, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if !isValidEmail(email) {
		return nil, fmt.Errorf("invalid email address")
	}

	now := time.Now()
	return &Supplier{
		name:      name,
		email:     email,
		phone:     phone,
		specialty: specialty,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id uint,
	name, email, phone, specialty string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Supplier, error) {
	if id == 0 {
		return nil, fmt.Errorf("supplier ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	return &Supplier{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		specialty: specialty,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Supplier) ID() uint             { return s.id }
func (s *Supplier) Name() string         { return s.name }
func (s *Supplier) Email() string        { return s.email }
func (s *Supplier) Phone() string        { return s.phone }
func (s *Supplier) Specialty() string    { return s.specialty }
func (s *Supplier) IsActive() bool       { return s.active }
func (s *Supplier) CreatedAt() time.Time { return s.createdAt }
func (s *Supplier) UpdatedAt() time.Time { return s.updatedAt }

func (s *Supplier) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("supplier ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("supplier ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Supplier) UpdateContact(email, phone string) error {
	if !isValidEmail(email) {
		return fmt.Errorf("invalid email address")
	}
	s.email = email
	s.phone = phone
	s.updatedAt = time.Now()
	return nil
}

func (s *Supplier) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	s.name = name
	s.updatedAt = time.Now()
	return nil
}

// Deactivate soft-removes the supplier from assignment candidates.
func (s *Supplier) Deactivate() {
	s.active = false
	s.updatedAt = time.Now()
}

func (s *Supplier) Activate() {
	s.active = true
	s.updatedAt = time.Now()
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

type Repository interface {
	Save(ctx context.Context, s *Supplier) error
	Update(ctx context.Context, s *Supplier) error
	GetByID(ctx context.Context, id uint) (*Supplier, error)
	List(ctx context.Context, activeOnly bool, page, pageSize int) ([]*Supplier, int64, error)
}
