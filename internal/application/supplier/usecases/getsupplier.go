package usecases

import (
	"context"

	"zelo/internal/domain/supplier"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type GetSupplierQuery struct {
	SupplierID uint
}

type GetSupplierUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewGetSupplierUseCase(
	supplierRepo supplier.Repository,
	logger logger.Interface,
) *GetSupplierUseCase {
	return &GetSupplierUseCase{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

func (uc *GetSupplierUseCase) Execute(ctx context.Context, query GetSupplierQuery) (*SupplierDTO, error) {
	if query.SupplierID == 0 {
		return nil, errors.NewValidationError("supplier ID is required")
	}

	s, err := uc.supplierRepo.GetByID(ctx, query.SupplierID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get supplier", "supplier_id", query.SupplierID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	return toSupplierDTO(s), nil
}
