package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"zelo/internal/domain/building"
	"zelo/internal/infrastructure/persistence/mappers"
	"zelo/internal/infrastructure/persistence/models"
	db "zelo/internal/shared/db"
	apperrors "zelo/internal/shared/errors"
)

type BuildingRepository struct {
	db     *gorm.DB
	mapper mappers.BuildingMapper
}

func NewBuildingRepository(gdb *gorm.DB) *BuildingRepository {
	return &BuildingRepository{
		db:     gdb,
		mapper: mappers.NewBuildingMapper(),
	}
}

func (r *BuildingRepository) Save(ctx context.Context, b *building.Building) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save building: %w", err)
	}

	if err := b.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *BuildingRepository) Update(ctx context.Context, b *building.Building) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BuildingModel{}).
		Where("id = ?", model.ID).
		Select("name", "address", "postcode", "city", "active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update building: %w", result.Error)
	}

	return nil
}

func (r *BuildingRepository) GetByID(ctx context.Context, id uint) (*building.Building, error) {
	var model models.BuildingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("edifício não encontrado")
		}
		return nil, fmt.Errorf("failed to find building: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BuildingRepository) List(
	ctx context.Context,
	activeOnly bool,
	page, pageSize int,
) ([]*building.Building, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.BuildingModel{})

	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count buildings: %w", err)
	}

	query = query.Order("name ASC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var buildingModels []models.BuildingModel
	if err := query.Find(&buildingModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list buildings: %w", err)
	}

	buildings := make([]*building.Building, len(buildingModels))
	for i, model := range buildingModels {
		b, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		buildings[i] = b
	}

	return buildings, total, nil
}
