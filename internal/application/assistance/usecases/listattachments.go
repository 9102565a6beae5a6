package usecases

import (
	"context"

	"zelo/internal/application/assistance/dto"
	"zelo/internal/domain/assistance"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type ListAttachmentsQuery struct {
	AssistanceID uint
}

type ListAttachmentsUseCase struct {
	attachRepo assistance.AttachmentRepository
	logger     logger.Interface
}

func NewListAttachmentsUseCase(
	attachRepo assistance.AttachmentRepository,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		attachRepo: attachRepo,
		logger:     logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error) {
	if query.AssistanceID == 0 {
		return nil, errors.NewValidationError("assistance ID is required")
	}

	attachments, err := uc.attachRepo.ListByAssistanceID(ctx, query.AssistanceID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "assistance_id", query.AssistanceID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	items := make([]dto.AttachmentDTO, len(attachments))
	for i, at := range attachments {
		items[i] = dto.ToAttachmentDTO(at)
	}

	return items, nil
}
