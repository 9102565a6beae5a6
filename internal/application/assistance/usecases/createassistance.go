package usecases

import (
	"context"

	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/domain/building"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type CreateAssistanceCommand struct {
	BuildingID  uint
	Category    string
	Priority    string
	Description string
}

type CreateAssistanceResult struct {
	AssistanceID    uint
	Status          string
	AcceptanceToken string
	SchedulingToken string
	ValidationToken string
}

type CreateAssistanceUseCase struct {
	assistanceRepo assistance.Repository
	buildingRepo   building.Repository
	logger         logger.Interface
}

func NewCreateAssistanceUseCase(
	assistanceRepo assistance.Repository,
	buildingRepo building.Repository,
	logger logger.Interface,
) *CreateAssistanceUseCase {
	return &CreateAssistanceUseCase{
		assistanceRepo: assistanceRepo,
		buildingRepo:   buildingRepo,
		logger:         logger,
	}
}

func (uc *CreateAssistanceUseCase) Execute(ctx context.Context, cmd CreateAssistanceCommand) (*CreateAssistanceResult, error) {
	uc.logger.Infow("executing create assistance use case", "building_id", cmd.BuildingID, "category", cmd.Category)

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError("categoria inválida")
	}

	priority := vo.PriorityNormal
	if cmd.Priority != "" {
		priority, err = vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("prioridade inválida")
		}
	}

	b, err := uc.buildingRepo.GetByID(ctx, cmd.BuildingID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load building", "building_id", cmd.BuildingID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}
	if !b.IsActive() {
		return nil, errors.NewValidationError("edifício inativo")
	}

	a, err := assistance.NewAssistance(cmd.BuildingID, category, priority, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assistanceRepo.Save(ctx, a); err != nil {
		uc.logger.Errorw("failed to save assistance", "building_id", cmd.BuildingID, "error", err)
		return nil, errors.NewInternalError("falha ao criar a assistência")
	}

	uc.logger.Infow("assistance created", "assistance_id", a.ID(), "building_id", cmd.BuildingID)

	return &CreateAssistanceResult{
		AssistanceID:    a.ID(),
		Status:          a.Status().String(),
		AcceptanceToken: a.AcceptanceToken().String(),
		SchedulingToken: a.SchedulingToken().String(),
		ValidationToken: a.ValidationToken().String(),
	}, nil
}
