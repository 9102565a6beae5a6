package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"zelo/internal/domain/assistance"
	"zelo/internal/infrastructure/persistence/mappers"
	"zelo/internal/infrastructure/persistence/models"
	db "zelo/internal/shared/db"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.AssistanceMapper
}

func NewAttachmentRepository(gdb *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     gdb,
		mapper: mappers.NewAssistanceMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, at *assistance.Attachment) error {
	model := r.mapper.AttachmentToModel(at)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	if err := at.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *AttachmentRepository) ListByAssistanceID(
	ctx context.Context,
	assistanceID uint,
) ([]*assistance.Attachment, error) {
	var attachmentModels []models.AttachmentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("assistance_id = ?", assistanceID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*assistance.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		at, err := r.mapper.AttachmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		attachments[i] = at
	}

	return attachments, nil
}
