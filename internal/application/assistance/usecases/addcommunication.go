package usecases

import (
	"context"

	"zelo/internal/domain/assistance"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type AddCommunicationCommand struct {
	AssistanceID        uint
	Message             string
	AuthorName          string
	AuthorRole          string
	VisibleToContractor bool
	VisibleToTenant     bool
	Internal            bool
}

type AddCommunicationResult struct {
	CommunicationID uint
}

type AddCommunicationUseCase struct {
	assistanceRepo assistance.Repository
	commRepo       assistance.CommunicationRepository
	logger         logger.Interface
}

func NewAddCommunicationUseCase(
	assistanceRepo assistance.Repository,
	commRepo assistance.CommunicationRepository,
	logger logger.Interface,
) *AddCommunicationUseCase {
	return &AddCommunicationUseCase{
		assistanceRepo: assistanceRepo,
		commRepo:       commRepo,
		logger:         logger,
	}
}

func (uc *AddCommunicationUseCase) Execute(ctx context.Context, cmd AddCommunicationCommand) (*AddCommunicationResult, error) {
	if _, err := uc.assistanceRepo.GetByID(ctx, cmd.AssistanceID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get assistance", "assistance_id", cmd.AssistanceID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	c, err := assistance.NewCommunication(
		cmd.AssistanceID,
		cmd.Message,
		cmd.AuthorName,
		assistance.AuthorRole(cmd.AuthorRole),
		cmd.VisibleToContractor,
		cmd.VisibleToTenant,
		cmd.Internal,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save communication", "assistance_id", cmd.AssistanceID, "error", err)
		return nil, errors.NewInternalError("falha ao registar a comunicação")
	}

	return &AddCommunicationResult{CommunicationID: c.ID()}, nil
}
