package usecases

import (
	"context"

	"zelo/internal/domain/building"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type CreateBuildingCommand struct {
	Name     string
	Address  string
	Postcode string
	City     string
}

type CreateBuildingResult struct {
	BuildingID uint
}

type CreateBuildingUseCase struct {
	buildingRepo building.Repository
	logger       logger.Interface
}

func NewCreateBuildingUseCase(
	buildingRepo building.Repository,
	logger logger.Interface,
) *CreateBuildingUseCase {
	return &CreateBuildingUseCase{
		buildingRepo: buildingRepo,
		logger:       logger,
	}
}

func (uc *CreateBuildingUseCase) Execute(ctx context.Context, cmd CreateBuildingCommand) (*CreateBuildingResult, error) {
	b, err := building.NewBuilding(cmd.Name, cmd.Address, cmd.Postcode, cmd.City)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.buildingRepo.Save(ctx, b); err != nil {
		uc.logger.Errorw("failed to save building", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("falha ao criar o edifício")
	}

	uc.logger.Infow("building created", "building_id", b.ID(), "name", b.Name())

	return &CreateBuildingResult{BuildingID: b.ID()}, nil
}
