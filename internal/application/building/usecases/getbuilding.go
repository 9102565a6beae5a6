package usecases

import (
	"context"

	"zelo/internal/domain/building"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type GetBuildingQuery struct {
	BuildingID uint
}

type GetBuildingUseCase struct {
	buildingRepo building.Repository
	logger       logger.Interface
}

func NewGetBuildingUseCase(
	buildingRepo building.Repository,
	logger logger.Interface,
) *GetBuildingUseCase {
	return &GetBuildingUseCase{
		buildingRepo: buildingRepo,
		logger:       logger,
	}
}

func (uc *GetBuildingUseCase) Execute(ctx context.Context, query GetBuildingQuery) (*BuildingDTO, error) {
	if query.BuildingID == 0 {
		return nil, errors.NewValidationError("building ID is required")
	}

	b, err := uc.buildingRepo.GetByID(ctx, query.BuildingID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get building", "building_id", query.BuildingID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	return toBuildingDTO(b), nil
}
