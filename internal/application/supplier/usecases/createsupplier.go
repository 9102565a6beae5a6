package usecases

import (
	"context"

	"zelo/internal/domain/supplier"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type CreateSupplierCommand struct {
	Name      string
	Email     string
	Phone     string
	Specialty string
}

type CreateSupplierResult struct {
	SupplierID uint
}

type CreateSupplierUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewCreateSupplierUseCase(
	supplierRepo supplier.Repository,
	logger logger.Interface,
) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

func (uc *CreateSupplierUseCase) Execute(ctx context.Context, cmd CreateSupplierCommand) (*CreateSupplierResult, error) {
	s, err := supplier.NewSupplier(cmd.Name, cmd.Email, cmd.Phone, cmd.Specialty)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.supplierRepo.Save(ctx, s); err != nil {
		uc.logger.Errorw("failed to save supplier", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("falha ao criar o fornecedor")
	}

	uc.logger.Infow("supplier created", "supplier_id", s.ID(), "name", s.Name())

	return &CreateSupplierResult{SupplierID: s.ID()}, nil
}
