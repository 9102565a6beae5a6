package mappers

import (
	"zelo/internal/domain/building"
	"zelo/internal/infrastructure/persistence/models"
)

// BuildingMapper handles the conversion between Building domain entities
// and persistence models.
type BuildingMapper interface {
	ToModel(b *building.Building) *models.BuildingModel
	ToDomain(model *models.BuildingModel) (*building.Building, error)
}

type BuildingMapperImpl struct{}

func NewBuildingMapper() BuildingMapper {
	return &BuildingMapperImpl{}
}

func (m *BuildingMapperImpl) ToModel(b *building.Building) *models.BuildingModel {
	return &models.BuildingModel{
		ID:        b.ID(),
		Name:      b.Name(),
		Address:   b.Address(),
		Postcode:  b.Postcode(),
		City:      b.City(),
		Active:    b.IsActive(),
		CreatedAt: b.CreatedAt().UnixMilli(),
		UpdatedAt: b.UpdatedAt().UnixMilli(),
	}
}

func (m *BuildingMapperImpl) ToDomain(model *models.BuildingModel) (*building.Building, error) {
	return building.Reconstruct(
		model.ID,
		model.Name,
		model.Address,
		model.Postcode,
		model.City,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
