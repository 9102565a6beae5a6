package usecases

import (
	"context"
	stderrors "errors"

	"zelo/internal/domain/assistance"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type CancelAssistanceCommand struct {
	AssistanceID uint
	Reason       string
	CancelledBy  string
}

type CancelAssistanceResult struct {
	AssistanceID uint
	OldStatus    string
	NewStatus    string
}

// CancelAssistanceUseCase closes a ticket from the admin side. It shares the
// atomic status-update primitive with the supplier portal so racing writers
// cannot produce divergent statuses.
type CancelAssistanceUseCase struct {
	assistanceRepo assistance.Repository
	commRepo       assistance.CommunicationRepository
	logger         logger.Interface
}

func NewCancelAssistanceUseCase(
	assistanceRepo assistance.Repository,
	commRepo assistance.CommunicationRepository,
	logger logger.Interface,
) *CancelAssistanceUseCase {
	return &CancelAssistanceUseCase{
		assistanceRepo: assistanceRepo,
		commRepo:       commRepo,
		logger:         logger,
	}
}

func (uc *CancelAssistanceUseCase) Execute(ctx context.Context, cmd CancelAssistanceCommand) (*CancelAssistanceResult, error) {
	if cmd.AssistanceID == 0 {
		return nil, errors.NewValidationError("assistance ID is required")
	}

	a, err := uc.assistanceRepo.GetByID(ctx, cmd.AssistanceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get assistance", "assistance_id", cmd.AssistanceID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	oldStatus := a.Status()

	if err := a.Cancel(); err != nil {
		if stderrors.Is(err, assistance.ErrInvalidTransition) {
			return nil, errors.NewInvalidTransitionError("invalid_transition", err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assistanceRepo.UpdateStatus(ctx, a, oldStatus); err != nil {
		if stderrors.Is(err, assistance.ErrStatusConflict) {
			return nil, errors.NewConflictError("a assistência foi alterada entretanto, tente novamente")
		}
		uc.logger.Errorw("failed to cancel assistance", "assistance_id", cmd.AssistanceID, "error", err)
		return nil, errors.NewInternalError("falha ao cancelar a assistência")
	}

	if cmd.Reason != "" {
		note, err := assistance.NewCommunication(
			a.ID(),
			"Assistência cancelada: "+cmd.Reason,
			cmd.CancelledBy,
			assistance.RoleAdmin,
			true,
			false,
			false,
		)
		if err == nil {
			if err := uc.commRepo.Save(ctx, note); err != nil {
				uc.logger.Warnw("failed to record cancellation note", "assistance_id", a.ID(), "error", err)
			}
		}
	}

	uc.logger.Infow("assistance cancelled",
		"assistance_id", a.ID(),
		"old_status", oldStatus,
	)

	return &CancelAssistanceResult{
		AssistanceID: a.ID(),
		OldStatus:    oldStatus.String(),
		NewStatus:    a.Status().String(),
	}, nil
}
