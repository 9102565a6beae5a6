package usecases

import (
	"context"
	"time"

	"zelo/internal/domain/building"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
	"zelo/internal/shared/utils"
)

type BuildingDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Postcode  string    `json:"postcode"`
	City      string    `json:"city"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBuildingDTO(b *building.Building) *BuildingDTO {
	return &BuildingDTO{
		ID:        b.ID(),
		Name:      b.Name(),
		Address:   b.Address(),
		Postcode:  b.Postcode(),
		City:      b.City(),
		Active:    b.IsActive(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

type ListBuildingsQuery struct {
	ActiveOnly bool
	Page       int
	PageSize   int
}

type ListBuildingsResult struct {
	Buildings []*BuildingDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListBuildingsUseCase struct {
	buildingRepo building.Repository
	logger       logger.Interface
}

func NewListBuildingsUseCase(
	buildingRepo building.Repository,
	logger logger.Interface,
) *ListBuildingsUseCase {
	return &ListBuildingsUseCase{
		buildingRepo: buildingRepo,
		logger:       logger,
	}
}

func (uc *ListBuildingsUseCase) Execute(ctx context.Context, query ListBuildingsQuery) (*ListBuildingsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	buildings, total, err := uc.buildingRepo.List(ctx, query.ActiveOnly, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list buildings", "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	items := make([]*BuildingDTO, len(buildings))
	for i, b := range buildings {
		items[i] = toBuildingDTO(b)
	}

	return &ListBuildingsResult{
		Buildings: items,
		Total:     total,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}, nil
}
