package mappers

import (
	"zelo/internal/domain/supplier"
	"zelo/internal/infrastructure/persistence/models"
)

// SupplierMapper handles the conversion between Supplier domain entities
// and persistence models.
type SupplierMapper interface {
	ToModel(s *supplier.Supplier) *models.SupplierModel
	ToDomain(model *models.SupplierModel) (*supplier.Supplier, error)
}

type SupplierMapperImpl struct{}

func NewSupplierMapper() SupplierMapper {
	return &SupplierMapperImpl{}
}

func (m *SupplierMapperImpl) ToModel(s *supplier.Supplier) *models.SupplierModel {
	return &models.SupplierModel{
		ID:        s.ID(),
		Name:      s.Name(),
		Email:     s.Email(),
		Phone:     s.Phone(),
		Specialty: s.Specialty(),
		Active:    s.IsActive(),
		CreatedAt: s.CreatedAt().UnixMilli(),
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}
}

func (m *SupplierMapperImpl) ToDomain(model *models.SupplierModel) (*supplier.Supplier, error) {
	return supplier.Reconstruct(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.Specialty,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
