package mappers

import (
	"fmt"

	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/infrastructure/persistence/models"
)

// AssistanceMapper handles the conversion between Assistance domain entities
// and persistence models.
type AssistanceMapper interface {
	// ToModel converts an assistance domain entity to a persistence model.
	ToModel(a *assistance.Assistance) *models.AssistanceModel

	// ToDomain converts an assistance persistence model to a domain entity.
	ToDomain(model *models.AssistanceModel) (*assistance.Assistance, error)

	// CommunicationToModel converts a communication domain entity to a persistence model.
	CommunicationToModel(c *assistance.Communication) *models.CommunicationModel

	// CommunicationToDomain converts a communication persistence model to a domain entity.
	CommunicationToDomain(model *models.CommunicationModel) (*assistance.Communication, error)

	// AttachmentToModel converts an attachment domain entity to a persistence model.
	AttachmentToModel(at *assistance.Attachment) *models.AttachmentModel

	// AttachmentToDomain converts an attachment persistence model to a domain entity.
	AttachmentToDomain(model *models.AttachmentModel) (*assistance.Attachment, error)
}

// AssistanceMapperImpl is the concrete implementation of AssistanceMapper.
type AssistanceMapperImpl struct{}

// NewAssistanceMapper creates a new AssistanceMapper.
func NewAssistanceMapper() AssistanceMapper {
	return &AssistanceMapperImpl{}
}

// ToModel converts an assistance domain entity to a persistence model.
func (m *AssistanceMapperImpl) ToModel(a *assistance.Assistance) *models.AssistanceModel {
	return &models.AssistanceModel{
		ID:                      a.ID(),
		BuildingID:              a.BuildingID(),
		SupplierID:              a.SupplierID(),
		Category:                a.Category().String(),
		Priority:                a.Priority().String(),
		Description:             a.Description(),
		Status:                  a.Status().String(),
		AcceptanceToken:         a.AcceptanceToken().String(),
		SchedulingToken:         a.SchedulingToken().String(),
		ValidationToken:         a.ValidationToken().String(),
		ScheduledAt:             timePtrToMillisPtr(a.ScheduledAt()),
		RejectionReason:         a.RejectionReason(),
		RescheduleReason:        a.RescheduleReason(),
		ValidationReminderCount: a.ValidationReminderCount(),
		ValidationEmailSentAt:   timePtrToMillisPtr(a.ValidationEmailSentAt()),
		RespondedAt:             timePtrToMillisPtr(a.RespondedAt()),
		CompletedAt:             timePtrToMillisPtr(a.CompletedAt()),
		CancelledAt:             timePtrToMillisPtr(a.CancelledAt()),
		CreatedAt:               a.CreatedAt().UnixMilli(),
		UpdatedAt:               a.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts an assistance persistence model to a domain entity.
func (m *AssistanceMapperImpl) ToDomain(model *models.AssistanceModel) (*assistance.Assistance, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to map assistance category (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to map assistance priority (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map assistance status (id=%d): %w", model.ID, err)
	}

	return assistance.Reconstruct(
		model.ID,
		model.BuildingID,
		model.SupplierID,
		category,
		priority,
		model.Description,
		status,
		vo.ActionToken(model.AcceptanceToken),
		vo.ActionToken(model.SchedulingToken),
		vo.ActionToken(model.ValidationToken),
		millisPtrToTimePtr(model.ScheduledAt),
		model.RejectionReason,
		model.RescheduleReason,
		model.ValidationReminderCount,
		millisPtrToTimePtr(model.ValidationEmailSentAt),
		millisPtrToTimePtr(model.RespondedAt),
		millisPtrToTimePtr(model.CompletedAt),
		millisPtrToTimePtr(model.CancelledAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

// CommunicationToModel converts a communication domain entity to a persistence model.
func (m *AssistanceMapperImpl) CommunicationToModel(c *assistance.Communication) *models.CommunicationModel {
	return &models.CommunicationModel{
		ID:                  c.ID(),
		AssistanceID:        c.AssistanceID(),
		Message:             c.Message(),
		AuthorName:          c.AuthorName(),
		AuthorRole:          string(c.AuthorRole()),
		VisibleToContractor: c.VisibleToContractor(),
		VisibleToTenant:     c.VisibleToTenant(),
		IsInternal:          c.IsInternal(),
		CreatedAt:           c.CreatedAt().UnixMilli(),
	}
}

// CommunicationToDomain converts a communication persistence model to a domain entity.
func (m *AssistanceMapperImpl) CommunicationToDomain(model *models.CommunicationModel) (*assistance.Communication, error) {
	return assistance.ReconstructCommunication(
		model.ID,
		model.AssistanceID,
		model.Message,
		model.AuthorName,
		assistance.AuthorRole(model.AuthorRole),
		model.VisibleToContractor,
		model.VisibleToTenant,
		model.IsInternal,
		millisToTime(model.CreatedAt),
	)
}

// AttachmentToModel converts an attachment domain entity to a persistence model.
func (m *AssistanceMapperImpl) AttachmentToModel(at *assistance.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           at.ID(),
		AssistanceID: at.AssistanceID(),
		StoragePath:  at.StoragePath(),
		PublicURL:    at.PublicURL(),
		Category:     at.Category().String(),
		UploaderName: at.UploaderName(),
		UploaderRole: string(at.UploaderRole()),
		MimeType:     at.MimeType(),
		SizeBytes:    at.SizeBytes(),
		CreatedAt:    at.CreatedAt().UnixMilli(),
	}
}

// AttachmentToDomain converts an attachment persistence model to a domain entity.
func (m *AssistanceMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*assistance.Attachment, error) {
	category, err := vo.NewPhotoCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to map attachment category (id=%d): %w", model.ID, err)
	}

	return assistance.ReconstructAttachment(
		model.ID,
		model.AssistanceID,
		model.StoragePath,
		model.PublicURL,
		category,
		model.UploaderName,
		assistance.AuthorRole(model.UploaderRole),
		model.MimeType,
		model.SizeBytes,
		millisToTime(model.CreatedAt),
	)
}
