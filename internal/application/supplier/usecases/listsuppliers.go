package usecases

import (
	"context"
	"time"

	"zelo/internal/domain/supplier"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
	"zelo/internal/shared/utils"
)

type SupplierDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Specialty string    `json:"specialty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toSupplierDTO(s *supplier.Supplier) *SupplierDTO {
	return &SupplierDTO{
		ID:        s.ID(),
		Name:      s.Name(),
		Email:     s.Email(),
		Phone:     s.Phone(),
		Specialty: s.Specialty(),
		Active:    s.IsActive(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

type ListSuppliersQuery struct {
	ActiveOnly bool
	Page       int
	PageSize   int
}

type ListSuppliersResult struct {
	Suppliers []*SupplierDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListSuppliersUseCase struct {
	supplierRepo supplier.Repository
	logger       logger.Interface
}

func NewListSuppliersUseCase(
	supplierRepo supplier.Repository,
	logger logger.Interface,
) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

func (uc *ListSuppliersUseCase) Execute(ctx context.Context, query ListSuppliersQuery) (*ListSuppliersResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	suppliers, total, err := uc.supplierRepo.List(ctx, query.ActiveOnly, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list suppliers", "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	items := make([]*SupplierDTO, len(suppliers))
	for i, s := range suppliers {
		items[i] = toSupplierDTO(s)
	}

	return &ListSuppliersResult{
		Suppliers: items,
		Total:     total,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}, nil
}
