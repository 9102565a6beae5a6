package building

import (
	"context"
	"fmt"
	"time"
)

// Building is a managed property assistances are raised against.
type Building struct {
	id        uint
	name      string
	address   string
	postcode  string
	city      string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewBuilding(name, address, postcode, city string) (*Building, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if len(address) == 0 {
		return nil, fmt.Errorf("address is required")
	}

	now := time.Now()
	return &Building{
		name:      name,
		address:   address,
		postcode:  postcode,
		city:      city,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id uint,
	name, address, postcode, city string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Building, error) {
	if id == 0 {
		return nil, fmt.Errorf("building ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	return &Building{
		id:        id,
		name:      name,
		address:   address,
		postcode:  postcode,
		city:      city,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (b *Building) ID() uint             { return b.id }
func (b *Building) Name() string         { return b.name }
func (b *Building) Address() string      { return b.address }
func (b *Building) Postcode() string     { return b.postcode }
func (b *Building) City() string         { return b.city }
func (b *Building) IsActive() bool       { return b.active }
func (b *Building) CreatedAt() time.Time { return b.createdAt }
func (b *Building) UpdatedAt() time.Time { return b.updatedAt }

func (b *Building) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("building ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("building ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *Building) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	b.name = name
	b.updatedAt = time.Now()
	return nil
}

func (b *Building) UpdateAddress(address, postcode, city string) error {
	if len(address) == 0 {
		return fmt.Errorf("address is required")
	}
	b.address = address
	b.postcode = postcode
	b.city = city
	b.updatedAt = time.Now()
	return nil
}

// Deactivate soft-removes the building; existing tickets keep referencing it.
func (b *Building) Deactivate() {
	b.active = false
	b.updatedAt = time.Now()
}

func (b *Building) Activate() {
	b.active = true
	b.updatedAt = time.Now()
}

type Repository interface {
	Save(ctx context.Context, b *Building) error
	Update(ctx context.Context, b *Building) error
	GetByID(ctx context.Context, id uint) (*Building, error)
	List(ctx context.Context, activeOnly bool, page, pageSize int) ([]*Building, int64, error)
}
