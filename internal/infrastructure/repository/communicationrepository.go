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

type CommunicationRepository struct {
	db     *gorm.DB
	mapper mappers.AssistanceMapper
}

func NewCommunicationRepository(gdb *gorm.DB) *CommunicationRepository {
	return &CommunicationRepository{
		db:     gdb,
		mapper: mappers.NewAssistanceMapper(),
	}
}

func (r *CommunicationRepository) Save(ctx context.Context, c *assistance.Communication) error {
	model := r.mapper.CommunicationToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save communication: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CommunicationRepository) ListByAssistanceID(
	ctx context.Context,
	assistanceID uint,
) ([]*assistance.Communication, error) {
	var communicationModels []models.CommunicationModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("assistance_id = ?", assistanceID).
		Order("created_at ASC").
		Find(&communicationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list communications: %w", err)
	}

	communications := make([]*assistance.Communication, len(communicationModels))
	for i, model := range communicationModels {
		c, err := r.mapper.CommunicationToDomain(&model)
		if err != nil {
			return nil, err
		}
		communications[i] = c
	}

	return communications, nil
}
