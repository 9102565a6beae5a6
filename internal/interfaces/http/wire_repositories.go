package http

import (
	"gorm.io/gorm"

	"zelo/internal/infrastructure/repository"
)

type repositories struct {
	assistances    *repository.AssistanceRepository
	communications *repository.CommunicationRepository
	attachments    *repository.AttachmentRepository
	buildings      *repository.BuildingRepository
	suppliers      *repository.SupplierRepository
	auditEvents    *repository.AuditEventRepository
}

func buildRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		assistances:    repository.NewAssistanceRepository(gdb),
		communications: repository.NewCommunicationRepository(gdb),
		attachments:    repository.NewAttachmentRepository(gdb),
		buildings:      repository.NewBuildingRepository(gdb),
		suppliers:      repository.NewSupplierRepository(gdb),
		auditEvents:    repository.NewAuditEventRepository(gdb),
	}
}
