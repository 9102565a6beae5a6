package usecases

import (
	"context"

	"zelo/internal/application/assistance/dto"
	"zelo/internal/domain/assistance"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type ListCommunicationsQuery struct {
	AssistanceID uint
}

type ListCommunicationsUseCase struct {
	commRepo assistance.CommunicationRepository
	logger   logger.Interface
}

func NewListCommunicationsUseCase(
	commRepo assistance.CommunicationRepository,
	logger logger.Interface,
) *ListCommunicationsUseCase {
	return &ListCommunicationsUseCase{
		commRepo: commRepo,
		logger:   logger,
	}
}

func (uc *ListCommunicationsUseCase) Execute(ctx context.Context, query ListCommunicationsQuery) ([]dto.CommunicationDTO, error) {
	if query.AssistanceID == 0 {
		return nil, errors.NewValidationError("assistance ID is required")
	}

	comms, err := uc.commRepo.ListByAssistanceID(ctx, query.AssistanceID)
	if err != nil {
		uc.logger.Errorw("failed to list communications", "assistance_id", query.AssistanceID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	items := make([]dto.CommunicationDTO, len(comms))
	for i, c := range comms {
		items[i] = dto.ToCommunicationDTO(c)
	}

	return items, nil
}
