package usecases

import (
	"context"

	"zelo/internal/domain/assistance"
	"zelo/internal/domain/building"
	"zelo/internal/domain/supplier"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type AssignSupplierCommand struct {
	AssistanceID uint
	SupplierID   uint
}

type AssignSupplierResult struct {
	AssistanceID uint
	SupplierID   uint
	Status       string
	EmailSent    bool
}

// AssignSupplierUseCase attaches a supplier to a ticket and sends them the
// acceptance link. Assignment itself does not move the status; the supplier
// responds through the portal.
type AssignSupplierUseCase struct {
	assistanceRepo assistance.Repository
	supplierRepo   supplier.Repository
	buildingRepo   building.Repository
	notifier       NotificationSender
	logger         logger.Interface
}

func NewAssignSupplierUseCase(
	assistanceRepo assistance.Repository,
	supplierRepo supplier.Repository,
	buildingRepo building.Repository,
	notifier NotificationSender,
	logger logger.Interface,
) *AssignSupplierUseCase {
	return &AssignSupplierUseCase{
		assistanceRepo: assistanceRepo,
		supplierRepo:   supplierRepo,
		buildingRepo:   buildingRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *AssignSupplierUseCase) Execute(ctx context.Context, cmd AssignSupplierCommand) (*AssignSupplierResult, error) {
	uc.logger.Infow("executing assign supplier use case",
		"assistance_id", cmd.AssistanceID,
		"supplier_id", cmd.SupplierID,
	)

	if cmd.AssistanceID == 0 {
		return nil, errors.NewValidationError("assistance ID is required")
	}
	if cmd.SupplierID == 0 {
		return nil, errors.NewValidationError("supplier ID is required")
	}

	a, err := uc.assistanceRepo.GetByID(ctx, cmd.AssistanceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get assistance", "assistance_id", cmd.AssistanceID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	s, err := uc.supplierRepo.GetByID(ctx, cmd.SupplierID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get supplier", "supplier_id", cmd.SupplierID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}
	if !s.IsActive() {
		return nil, errors.NewValidationError("fornecedor inativo")
	}

	if err := a.AssignSupplier(cmd.SupplierID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assistanceRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update assistance", "assistance_id", cmd.AssistanceID, "error", err)
		return nil, errors.NewInternalError("falha ao atribuir fornecedor")
	}

	buildingName := ""
	if b, err := uc.buildingRepo.GetByID(ctx, a.BuildingID()); err == nil && b != nil {
		buildingName = b.Name()
	}

	emailSent := true
	if err := uc.notifier.SendAssignmentEmail(s.Email(), buildingName, a.Description(), a.AcceptanceToken().String()); err != nil {
		emailSent = false
		uc.logger.Warnw("failed to send assignment email",
			"assistance_id", a.ID(),
			"supplier_id", s.ID(),
			"error", err,
		)
	}

	uc.logger.Infow("supplier assigned",
		"assistance_id", a.ID(),
		"supplier_id", s.ID(),
		"email_sent", emailSent,
	)

	return &AssignSupplierResult{
		AssistanceID: a.ID(),
		SupplierID:   s.ID(),
		Status:       a.Status().String(),
		EmailSent:    emailSent,
	}, nil
}
