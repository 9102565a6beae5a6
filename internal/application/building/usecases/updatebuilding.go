package usecases

import (
	"context"

	"zelo/internal/domain/building"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type UpdateBuildingCommand struct {
	BuildingID uint
	Name       string
	Address    string
	Postcode   string
	City       string
	Active     *bool
}

type UpdateBuildingResult struct {
	BuildingID uint
}

type UpdateBuildingUseCase struct {
	buildingRepo building.Repository
	logger       logger.Interface
}

func NewUpdateBuildingUseCase(
	buildingRepo building.Repository,
	logger logger.Interface,
) *UpdateBuildingUseCase {
	return &UpdateBuildingUseCase{
		buildingRepo: buildingRepo,
		logger:       logger,
	}
}

func (uc *UpdateBuildingUseCase) Execute(ctx context.Context, cmd UpdateBuildingCommand) (*UpdateBuildingResult, error) {
	if cmd.BuildingID == 0 {
		return nil, errors.NewValidationError("building ID is required")
	}

	b, err := uc.buildingRepo.GetByID(ctx, cmd.BuildingID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get building", "building_id", cmd.BuildingID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	if cmd.Name != "" {
		if err := b.Rename(cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Address != "" {
		if err := b.UpdateAddress(cmd.Address, cmd.Postcode, cmd.City); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Active != nil {
		if *cmd.Active {
			b.Activate()
		} else {
			b.Deactivate()
		}
	}

	if err := uc.buildingRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update building", "building_id", cmd.BuildingID, "error", err)
		return nil, errors.NewInternalError("falha ao atualizar o edifício")
	}

	return &UpdateBuildingResult{BuildingID: b.ID()}, nil
}
