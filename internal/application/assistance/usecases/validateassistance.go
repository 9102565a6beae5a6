package usecases

import (
	"context"
	stderrors "errors"

	"zelo/internal/domain/assistance"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type ValidateAssistanceCommand struct {
	AssistanceID uint
	ValidatedBy  string
}

type ValidateAssistanceResult struct {
	AssistanceID uint
	OldStatus    string
	NewStatus    string
}

// ValidateAssistanceUseCase is the administrator confirming that completed
// work was actually done, closing the validation window.
type ValidateAssistanceUseCase struct {
	assistanceRepo assistance.Repository
	logger         logger.Interface
}

func NewValidateAssistanceUseCase(
	assistanceRepo assistance.Repository,
	logger logger.Interface,
) *ValidateAssistanceUseCase {
	return &ValidateAssistanceUseCase{
		assistanceRepo: assistanceRepo,
		logger:         logger,
	}
}

func (uc *ValidateAssistanceUseCase) Execute(ctx context.Context, cmd ValidateAssistanceCommand) (*ValidateAssistanceResult, error) {
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

	if err := a.Validate(); err != nil {
		if stderrors.Is(err, assistance.ErrInvalidTransition) {
			return nil, errors.NewInvalidTransitionError("invalid_transition", err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assistanceRepo.UpdateStatus(ctx, a, oldStatus); err != nil {
		if stderrors.Is(err, assistance.ErrStatusConflict) {
			return nil, errors.NewConflictError("a assistência foi alterada entretanto, tente novamente")
		}
		uc.logger.Errorw("failed to validate assistance", "assistance_id", cmd.AssistanceID, "error", err)
		return nil, errors.NewInternalError("falha ao validar a assistência")
	}

	uc.logger.Infow("assistance validated",
		"assistance_id", a.ID(),
		"validated_by", cmd.ValidatedBy,
	)

	return &ValidateAssistanceResult{
		AssistanceID: a.ID(),
		OldStatus:    oldStatus.String(),
		NewStatus:    a.Status().String(),
	}, nil
}
