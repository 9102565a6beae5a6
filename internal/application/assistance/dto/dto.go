package dto

import (
	"time"

	"zelo/internal/domain/assistance"
)

type AssistanceDTO struct {
	ID          uint   `json:"id"`
	BuildingID  uint   `json:"building_id"`
	SupplierID  *uint  `json:"supplier_id"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
	Status      string `json:"status"`

	ScheduledAt      *time.Time `json:"scheduled_at"`
	RejectionReason  string     `json:"rejection_reason,omitempty"`
	RescheduleReason string     `json:"reschedule_reason,omitempty"`

	RespondedAt *time.Time `json:"responded_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Communications []CommunicationDTO `json:"communications,omitempty"`
	Attachments    []AttachmentDTO    `json:"attachments,omitempty"`
}

type CommunicationDTO struct {
	ID         uint      `json:"id"`
	Message    string    `json:"message"`
	AuthorName string    `json:"author_name"`
	AuthorRole string    `json:"author_role"`
	CreatedAt  time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID        uint      `json:"id"`
	PublicURL string    `json:"public_url"`
	Category  string    `json:"category"`
	MimeType  string    `json:"mime_type"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplierViewDTO is the redacted shape exposed over capability-token reads.
// Tokens, internal notes and admin-only fields never appear here.
type SupplierViewDTO struct {
	ID               uint               `json:"id"`
	Category         string             `json:"category"`
	Priority         string             `json:"priority"`
	Description      string             `json:"description"`
	Status           string             `json:"status"`
	ScheduledAt      *time.Time         `json:"scheduled_at"`
	RescheduleReason string             `json:"reschedule_reason,omitempty"`
	BuildingName     string             `json:"building_name"`
	BuildingAddress  string             `json:"building_address"`
	CreatedAt        time.Time          `json:"created_at"`
	Communications   []CommunicationDTO `json:"communications,omitempty"`
	Attachments      []AttachmentDTO    `json:"attachments,omitempty"`
}

func ToAssistanceDTO(a *assistance.Assistance) *AssistanceDTO {
	if a == nil {
		return nil
	}

	return &AssistanceDTO{
		ID:               a.ID(),
		BuildingID:       a.BuildingID(),
		SupplierID:       a.SupplierID(),
		Category:         a.Category().String(),
		Priority:         a.Priority().String(),
		Description:      a.Description(),
		Status:           a.Status().String(),
		ScheduledAt:      a.ScheduledAt(),
		RejectionReason:  a.RejectionReason(),
		RescheduleReason: a.RescheduleReason(),
		RespondedAt:      a.RespondedAt(),
		CompletedAt:      a.CompletedAt(),
		CancelledAt:      a.CancelledAt(),
		CreatedAt:        a.CreatedAt(),
		UpdatedAt:        a.UpdatedAt(),
	}
}

func ToCommunicationDTO(c *assistance.Communication) CommunicationDTO {
	return CommunicationDTO{
		ID:         c.ID(),
		Message:    c.Message(),
		AuthorName: c.AuthorName(),
		AuthorRole: string(c.AuthorRole()),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToAttachmentDTO(at *assistance.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:        at.ID(),
		PublicURL: at.PublicURL(),
		Category:  at.Category().String(),
		MimeType:  at.MimeType(),
		SizeBytes: at.SizeBytes(),
		CreatedAt: at.CreatedAt(),
	}
}
