package usecases

import (
	"context"

	"zelo/internal/application/assistance/dto"
	"zelo/internal/application/audit"
	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	domainaudit "zelo/internal/domain/audit"
	"zelo/internal/domain/building"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type ViewByTokenQuery struct {
	Action    string
	Token     string
	ClientIP  string
	UserAgent string
}

// ViewByTokenUseCase is the read half of the supplier portal. It runs the
// same admission stages as the write pipeline but never mutates the ticket;
// resolving the same token twice returns identical data.
type ViewByTokenUseCase struct {
	assistanceRepo assistance.Repository
	commRepo       assistance.CommunicationRepository
	attachRepo     assistance.AttachmentRepository
	buildingRepo   building.Repository
	auditor        audit.Recorder
	limiter        RateLimiter
	logger         logger.Interface
}

func NewViewByTokenUseCase(
	assistanceRepo assistance.Repository,
	commRepo assistance.CommunicationRepository,
	attachRepo assistance.AttachmentRepository,
	buildingRepo building.Repository,
	auditor audit.Recorder,
	limiter RateLimiter,
	logger logger.Interface,
) *ViewByTokenUseCase {
	return &ViewByTokenUseCase{
		assistanceRepo: assistanceRepo,
		commRepo:       commRepo,
		attachRepo:     attachRepo,
		buildingRepo:   buildingRepo,
		auditor:        auditor,
		limiter:        limiter,
		logger:         logger,
	}
}

func (uc *ViewByTokenUseCase) Execute(ctx context.Context, query ViewByTokenQuery) (*dto.SupplierViewDTO, error) {
	allowed, err := uc.limiter.Allow(query.ClientIP)
	if err != nil {
		uc.logger.Errorw("rate limiter check failed", "client_ip", query.ClientIP, "error", err)
		allowed = true
	}
	if !allowed {
		uc.auditView(ctx, query, domainaudit.EventRateLimitExceeded, 0)
		return nil, errors.NewRateLimitedError("demasiados pedidos, tente novamente mais tarde")
	}

	if query.Token == "" {
		uc.auditView(ctx, query, domainaudit.EventMissingToken, 0)
		return nil, errors.NewValidationError("token em falta")
	}

	token, err := vo.NewActionToken(query.Token)
	if err != nil {
		uc.auditView(ctx, query, domainaudit.EventInvalidTokenFormat, 0)
		return nil, errors.NewValidationError("formato de token inválido")
	}

	action, err := vo.NewReadAction(query.Action)
	if err != nil {
		uc.auditView(ctx, query, domainaudit.EventInvalidAction, 0)
		return nil, errors.NewValidationError("ação inválida")
	}

	scope, err := action.Scope()
	if err != nil {
		return nil, errors.NewValidationError("ação inválida")
	}

	a, err := uc.assistanceRepo.GetByActionToken(ctx, scope, token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.auditView(ctx, query, domainaudit.EventTokenNotFound, 0)
			return nil, err
		}
		uc.logger.Errorw("failed to resolve action token", "action", action, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	view := &dto.SupplierViewDTO{
		ID:               a.ID(),
		Category:         a.Category().String(),
		Priority:         a.Priority().String(),
		Description:      a.Description(),
		Status:           a.Status().String(),
		ScheduledAt:      a.ScheduledAt(),
		RescheduleReason: a.RescheduleReason(),
		CreatedAt:        a.CreatedAt(),
	}

	if b, err := uc.buildingRepo.GetByID(ctx, a.BuildingID()); err == nil && b != nil {
		view.BuildingName = b.Name()
		view.BuildingAddress = b.Address()
	}

	if comms, err := uc.commRepo.ListByAssistanceID(ctx, a.ID()); err == nil {
		for _, c := range comms {
			if c.IsInternal() {
				continue
			}
			view.Communications = append(view.Communications, dto.ToCommunicationDTO(c))
		}
	}

	if attachments, err := uc.attachRepo.ListByAssistanceID(ctx, a.ID()); err == nil {
		for _, at := range attachments {
			view.Attachments = append(view.Attachments, dto.ToAttachmentDTO(at))
		}
	}

	uc.auditView(ctx, query, domainaudit.EventTokenAccessSuccess, a.ID())

	return view, nil
}

func (uc *ViewByTokenUseCase) auditView(ctx context.Context, query ViewByTokenQuery, eventType domainaudit.EventType, resourceID uint) {
	uc.auditor.Record(ctx, domainaudit.Event{
		EventType:    eventType,
		ResourceType: audit.ResourceAssistance,
		ResourceID:   resourceID,
		ClientIP:     query.ClientIP,
		UserAgent:    query.UserAgent,
		ActorRole:    string(assistance.RoleSupplier),
		Details:      "action=" + query.Action,
	})
}
