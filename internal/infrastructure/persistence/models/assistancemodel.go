package models

import "zelo/internal/shared/constants"

type AssistanceModel struct {
	ID          uint   `gorm:"primaryKey"`
	BuildingID  uint   `gorm:"not null;index"`
	SupplierID  *uint  `gorm:"index"`
	Category    string `gorm:"size:50;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:50;not null;index"`

	AcceptanceToken string `gorm:"uniqueIndex;size:100;not null"`
	SchedulingToken string `gorm:"uniqueIndex;size:100;not null"`
	ValidationToken string `gorm:"uniqueIndex;size:100;not null"`

	ScheduledAt      *int64 `gorm:"index"`
	RejectionReason  string `gorm:"type:text"`
	RescheduleReason string `gorm:"type:text"`

	ValidationReminderCount int `gorm:"not null;default:0"`
	ValidationEmailSentAt   *int64

	RespondedAt *int64
	CompletedAt *int64
	CancelledAt *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (AssistanceModel) TableName() string {
	return constants.TableAssistances
}

type CommunicationModel struct {
	ID                  uint   `gorm:"primaryKey"`
	AssistanceID        uint   `gorm:"not null;index"`
	Message             string `gorm:"type:text;not null"`
	AuthorName          string `gorm:"size:200"`
	AuthorRole          string `gorm:"size:20;not null"`
	VisibleToContractor bool   `gorm:"not null;default:false"`
	VisibleToTenant     bool   `gorm:"not null;default:false"`
	IsInternal          bool   `gorm:"not null;default:false"`
	CreatedAt           int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommunicationModel) TableName() string {
	return constants.TableCommunications
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	AssistanceID uint   `gorm:"not null;index"`
	StoragePath  string `gorm:"size:500;not null"`
	PublicURL    string `gorm:"size:1000"`
	Category     string `gorm:"size:20;not null"`
	UploaderName string `gorm:"size:200"`
	UploaderRole string `gorm:"size:20;not null"`
	MimeType     string `gorm:"size:100"`
	SizeBytes    int64  `gorm:"not null;default:0"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}
