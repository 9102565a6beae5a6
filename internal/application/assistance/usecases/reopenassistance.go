package usecases

import (
	"context"
	stderrors "errors"

	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type ReopenAssistanceCommand struct {
	AssistanceID uint
	TargetStatus string
}

type ReopenAssistanceResult struct {
	AssistanceID uint
	NewStatus    string
}

// ReopenAssistanceUseCase moves a cancelled ticket back into the flow.
// Reopening is an admin-only operation; no capability token reaches it.
type ReopenAssistanceUseCase struct {
	assistanceRepo assistance.Repository
	logger         logger.Interface
}

func NewReopenAssistanceUseCase(
	assistanceRepo assistance.Repository,
	logger logger.Interface,
) *ReopenAssistanceUseCase {
	return &ReopenAssistanceUseCase{
		assistanceRepo: assistanceRepo,
		logger:         logger,
	}
}

func (uc *ReopenAssistanceUseCase) Execute(ctx context.Context, cmd ReopenAssistanceCommand) (*ReopenAssistanceResult, error) {
	if cmd.AssistanceID == 0 {
		return nil, errors.NewValidationError("assistance ID is required")
	}

	target, err := vo.NewStatus(cmd.TargetStatus)
	if err != nil {
		return nil, errors.NewValidationError("estado inválido")
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

	if err := a.Reopen(target); err != nil {
		if stderrors.Is(err, assistance.ErrInvalidTransition) {
			return nil, errors.NewInvalidTransitionError("invalid_transition", err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assistanceRepo.UpdateStatus(ctx, a, oldStatus); err != nil {
		if stderrors.Is(err, assistance.ErrStatusConflict) {
			return nil, errors.NewConflictError("a assistência foi alterada entretanto, tente novamente")
		}
		uc.logger.Errorw("failed to reopen assistance", "assistance_id", cmd.AssistanceID, "error", err)
		return nil, errors.NewInternalError("falha ao reabrir a assistência")
	}

	uc.logger.Infow("assistance reopened",
		"assistance_id", a.ID(),
		"new_status", a.Status(),
	)

	return &ReopenAssistanceResult{
		AssistanceID: a.ID(),
		NewStatus:    a.Status().String(),
	}, nil
}
