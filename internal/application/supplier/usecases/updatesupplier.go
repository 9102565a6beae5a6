package usecases

import (
	"context"

	"zelo/internal/domain/supplier"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type UpdateSupplierCommand struct {
	SupplierID uint
	Name       string
	Email      string
	Phone      string
	Active     *bool
}

type UpdateSupplierResult struct {
	SupplierID uint
}

type UpdateSupplierUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewUpdateSupplierUseCase(
	supplierRepo supplier.Repository,
	logger logger.Interface,
) *UpdateSupplierUseCase {
	return &UpdateSupplierUseCase{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

func (uc *UpdateSupplierUseCase) Execute(ctx context.Context, cmd UpdateSupplierCommand) (*UpdateSupplierResult, error) {
	if cmd.SupplierID == 0 {
		return nil, errors.NewValidationError("supplier ID is required")
	}

	s, err := uc.supplierRepo.GetByID(ctx, cmd.SupplierID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get supplier", "supplier_id", cmd.SupplierID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	if cmd.Name != "" {
		if err := s.Rename(cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Email != "" {
		if err := s.UpdateContact(cmd.Email, cmd.Phone); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Active != nil {
		if *cmd.Active {
			s.Activate()
		} else {
			s.Deactivate()
		}
	}

	if err := uc.supplierRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update supplier", "supplier_id", cmd.SupplierID, "error", err)
		return nil, errors.NewInternalError("falha ao atualizar o fornecedor")
	}

	return &UpdateSupplierResult{SupplierID: s.ID()}, nil
}
