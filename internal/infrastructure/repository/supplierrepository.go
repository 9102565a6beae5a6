package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"zelo/internal/domain/supplier"
	"zelo/internal/infrastructure/persistence/mappers"
	"zelo/internal/infrastructure/persistence/models"
	db "zelo/internal/shared/db"
	apperrors "zelo/internal/shared/errors"
)

type SupplierRepository struct {
	db     *gorm.DB
	mapper mappers.SupplierMapper
}

func NewSupplierRepository(gdb *gorm.DB) *SupplierRepository {
	return &SupplierRepository{
		db:     gdb,
		mapper: mappers.NewSupplierMapper(),
	}
}

func (r *SupplierRepository) Save(ctx context.Context, s *supplier.Supplier) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SupplierModel{}).
		Where("id = ?", model.ID).
		Select("name", "email", "phone", "specialty", "active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", result.Error)
	}

	return nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id uint) (*supplier.Supplier, error) {
	var model models.SupplierModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("fornecedor não encontrado")
		}
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SupplierRepository) List(
	ctx context.Context,
	activeOnly bool,
	page, pageSize int,
) ([]*supplier.Supplier, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.SupplierModel{})

	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	query = query.Order("name ASC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var supplierModels []models.SupplierModel
	if err := query.Find(&supplierModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}

	suppliers := make([]*supplier.Supplier, len(supplierModels))
	for i, model := range supplierModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		suppliers[i] = s
	}

	return suppliers, total, nil
}
