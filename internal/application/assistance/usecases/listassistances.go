package usecases

import (
	"context"

	"zelo/internal/application/assistance/dto"
	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
	"zelo/internal/shared/utils"
)

type ListAssistancesQuery struct {
	Status     string
	Priority   string
	Category   string
	BuildingID *uint
	SupplierID *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListAssistancesResult struct {
	Assistances []*dto.AssistanceDTO
	Total       int64
	Page        int
	PageSize    int
}

type ListAssistancesUseCase struct {
	assistanceRepo assistance.Repository
	logger         logger.Interface
}

func NewListAssistancesUseCase(
	assistanceRepo assistance.Repository,
	logger logger.Interface,
) *ListAssistancesUseCase {
	return &ListAssistancesUseCase{
		assistanceRepo: assistanceRepo,
		logger:         logger,
	}
}

func (uc *ListAssistancesUseCase) Execute(ctx context.Context, query ListAssistancesQuery) (*ListAssistancesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := assistance.Filter{
		BuildingID: query.BuildingID,
		SupplierID: query.SupplierID,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("estado inválido")
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("prioridade inválida")
		}
		filter.Priority = &priority
	}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError("categoria inválida")
		}
		filter.Category = &category
	}

	assistances, total, err := uc.assistanceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assistances", "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	items := make([]*dto.AssistanceDTO, len(assistances))
	for i, a := range assistances {
		items[i] = dto.ToAssistanceDTO(a)
	}

	return &ListAssistancesResult{
		Assistances: items,
		Total:       total,
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	}, nil
}
