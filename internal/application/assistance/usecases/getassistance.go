package usecases

import (
	"context"

	"zelo/internal/application/assistance/dto"
	"zelo/internal/domain/assistance"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type GetAssistanceQuery struct {
	AssistanceID uint
}

type GetAssistanceUseCase struct {
	assistanceRepo assistance.Repository
	commRepo       assistance.CommunicationRepository
	attachRepo     assistance.AttachmentRepository
	logger         logger.Interface
}

func NewGetAssistanceUseCase(
	assistanceRepo assistance.Repository,
	commRepo assistance.CommunicationRepository,
	attachRepo assistance.AttachmentRepository,
	logger logger.Interface,
) *GetAssistanceUseCase {
	return &GetAssistanceUseCase{
		assistanceRepo: assistanceRepo,
		commRepo:       commRepo,
		attachRepo:     attachRepo,
		logger:         logger,
	}
}

func (uc *GetAssistanceUseCase) Execute(ctx context.Context, query GetAssistanceQuery) (*dto.AssistanceDTO, error) {
	if query.AssistanceID == 0 {
		return nil, errors.NewValidationError("assistance ID is required")
	}

	a, err := uc.assistanceRepo.GetByID(ctx, query.AssistanceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get assistance", "assistance_id", query.AssistanceID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	result := dto.ToAssistanceDTO(a)

	if comms, err := uc.commRepo.ListByAssistanceID(ctx, a.ID()); err == nil {
		for _, c := range comms {
			result.Communications = append(result.Communications, dto.ToCommunicationDTO(c))
		}
	}

	if attachments, err := uc.attachRepo.ListByAssistanceID(ctx, a.ID()); err == nil {
		for _, at := range attachments {
			result.Attachments = append(result.Attachments, dto.ToAttachmentDTO(at))
		}
	}

	return result, nil
}
