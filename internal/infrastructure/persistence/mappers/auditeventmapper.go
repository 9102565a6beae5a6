package mappers

import (
	"zelo/internal/domain/audit"
	"zelo/internal/infrastructure/persistence/models"
)

// AuditEventMapper handles the conversion between audit events and
// persistence models. Audit rows are write-only so only ToModel exists.
type AuditEventMapper interface {
	ToModel(e *audit.Event) *models.AuditEventModel
}

type AuditEventMapperImpl struct{}

func NewAuditEventMapper() AuditEventMapper {
	return &AuditEventMapperImpl{}
}

func (m *AuditEventMapperImpl) ToModel(e *audit.Event) *models.AuditEventModel {
	return &models.AuditEventModel{
		EventType:    string(e.EventType),
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		ClientIP:     e.ClientIP,
		UserAgent:    e.UserAgent,
		ActorRole:    e.ActorRole,
		OldValue:     e.OldValue,
		NewValue:     e.NewValue,
		Details:      e.Details,
		CreatedAt:    e.OccurredAt.UnixMilli(),
	}
}
