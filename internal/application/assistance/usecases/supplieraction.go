package usecases

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"

	"zelo/internal/application/audit"
	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	domainaudit "zelo/internal/domain/audit"
	"zelo/internal/domain/building"
	"zelo/internal/domain/supplier"
	"zelo/internal/shared/db"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

// RateLimiter is the per-client admission check the gateway consults before
// any store access tied to the token.
type RateLimiter interface {
	Allow(key string) (bool, error)
}

type SupplierActionCommand struct {
	Action    string
	Token     string
	ClientIP  string
	UserAgent string
	Data      ActionData
}

type SupplierActionResult struct {
	AssistanceID uint
	OldStatus    string
	NewStatus    string
	Message      string
}

// SupplierActionUseCase runs the write pipeline of the supplier portal:
// rate limit, token syntax, action allow-list, token resolution, status
// transition, atomic persist, audit. Stages are strictly ordered and
// short-circuit on failure; nothing hits the database before the rate limit
// and syntax stages pass.
type SupplierActionUseCase struct {
	assistanceRepo assistance.Repository
	commRepo       assistance.CommunicationRepository
	attachRepo     assistance.AttachmentRepository
	supplierRepo   supplier.Repository
	buildingRepo   building.Repository
	auditor        audit.Recorder
	limiter        RateLimiter
	notifier       NotificationSender
	photos         PhotoStore
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewSupplierActionUseCase(
	assistanceRepo assistance.Repository,
	commRepo assistance.CommunicationRepository,
	attachRepo assistance.AttachmentRepository,
	supplierRepo supplier.Repository,
	buildingRepo building.Repository,
	auditor audit.Recorder,
	limiter RateLimiter,
	notifier NotificationSender,
	photos PhotoStore,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *SupplierActionUseCase {
	return &SupplierActionUseCase{
		assistanceRepo: assistanceRepo,
		commRepo:       commRepo,
		attachRepo:     attachRepo,
		supplierRepo:   supplierRepo,
		buildingRepo:   buildingRepo,
		auditor:        auditor,
		limiter:        limiter,
		notifier:       notifier,
		photos:         photos,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *SupplierActionUseCase) Execute(ctx context.Context, cmd SupplierActionCommand) (*SupplierActionResult, error) {
	uc.logger.Infow("executing supplier action",
		"action", cmd.Action,
		"client_ip", cmd.ClientIP,
	)

	allowed, err := uc.limiter.Allow(cmd.ClientIP)
	if err != nil {
		// A broken limiter store must not take the portal down.
		uc.logger.Errorw("rate limiter check failed", "client_ip", cmd.ClientIP, "error", err)
		allowed = true
	}
	if !allowed {
		uc.audit(ctx, cmd, domainaudit.EventRateLimitExceeded, 0, "", "", "action="+cmd.Action)
		return nil, errors.NewRateLimitedError("demasiados pedidos, tente novamente mais tarde")
	}

	if cmd.Token == "" {
		uc.audit(ctx, cmd, domainaudit.EventMissingToken, 0, "", "", "action="+cmd.Action)
		return nil, errors.NewValidationError("token em falta")
	}

	token, err := vo.NewActionToken(cmd.Token)
	if err != nil {
		uc.audit(ctx, cmd, domainaudit.EventInvalidTokenFormat, 0, "", "", "action="+cmd.Action)
		return nil, errors.NewValidationError("formato de token inválido")
	}

	action, err := vo.NewWriteAction(cmd.Action)
	if err != nil {
		uc.audit(ctx, cmd, domainaudit.EventInvalidAction, 0, "", "", "action="+cmd.Action)
		return nil, errors.NewValidationError("ação inválida")
	}

	payload, err := buildPayload(action, cmd.Data)
	if err != nil {
		return nil, err
	}

	scope, err := action.Scope()
	if err != nil {
		return nil, errors.NewValidationError("ação inválida")
	}

	a, err := uc.assistanceRepo.GetByActionToken(ctx, scope, token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.audit(ctx, cmd, domainaudit.EventTokenNotFound, 0, "", "", "action="+action.String())
			return nil, err
		}
		uc.logger.Errorw("failed to resolve action token", "action", action, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	oldStatus := a.Status()

	if err := applyPayload(a, payload); err != nil {
		if stderrors.Is(err, assistance.ErrInvalidTransition) {
			uc.audit(ctx, cmd, domainaudit.EventInvalidTransition, a.ID(),
				oldStatus.String(), "", fmt.Sprintf("action=%s", action))
			return nil, errors.NewInvalidTransitionError("invalid_transition",
				fmt.Sprintf("ação %s não permitida no estado %s", action, oldStatus))
		}
		return nil, errors.NewValidationError(err.Error())
	}

	attachment, err := uc.storePhoto(ctx, cmd, a, payload)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assistanceRepo.UpdateStatus(txCtx, a, oldStatus); err != nil {
			return err
		}

		activity, err := assistance.NewCommunication(
			a.ID(),
			fmt.Sprintf("Fornecedor: Ação %s realizada através do portal", action),
			"Fornecedor",
			assistance.RoleSystem,
			true,
			false,
			false,
		)
		if err != nil {
			return err
		}
		if err := uc.commRepo.Save(txCtx, activity); err != nil {
			return err
		}

		if attachment != nil {
			return uc.attachRepo.Save(txCtx, attachment)
		}
		return nil
	})
	if err != nil {
		uc.audit(ctx, cmd, domainaudit.EventSupplierActionFailed, a.ID(),
			oldStatus.String(), a.Status().String(), fmt.Sprintf("action=%s error=%v", action, err))

		if stderrors.Is(err, assistance.ErrStatusConflict) {
			return nil, errors.NewConflictError("a assistência foi alterada entretanto, tente novamente")
		}
		uc.logger.Errorw("failed to persist supplier action",
			"assistance_id", a.ID(),
			"action", action,
			"error", err,
		)
		return nil, errors.NewInternalError("falha ao atualizar a assistência")
	}

	uc.audit(ctx, cmd, domainaudit.EventSupplierActionOK, a.ID(),
		oldStatus.String(), a.Status().String(), "action="+action.String())

	uc.sendFollowUpEmail(ctx, a, action)

	uc.logger.Infow("supplier action applied",
		"assistance_id", a.ID(),
		"action", action,
		"old_status", oldStatus,
		"new_status", a.Status(),
	)

	return &SupplierActionResult{
		AssistanceID: a.ID(),
		OldStatus:    oldStatus.String(),
		NewStatus:    a.Status().String(),
		Message:      "Ação realizada com sucesso",
	}, nil
}

// applyPayload dispatches the typed payload onto the aggregate.
func applyPayload(a *assistance.Assistance, payload actionPayload) error {
	switch p := payload.(type) {
	case acceptPayload:
		return a.Accept(p.scheduledAt)
	case rejectPayload:
		return a.Reject(p.reason)
	case schedulePayload:
		return a.Schedule(p.scheduledAt)
	case reschedulePayload:
		return a.Reschedule(p.scheduledAt, p.reason)
	case completePayload:
		return a.Complete()
	default:
		return fmt.Errorf("unsupported payload type %T", payload)
	}
}

// storePhoto uploads completion evidence before the database transaction. An
// orphaned blob on a later persist failure is accepted; a missing blob behind
// a saved attachment row is not.
func (uc *SupplierActionUseCase) storePhoto(
	ctx context.Context,
	cmd SupplierActionCommand,
	a *assistance.Assistance,
	payload actionPayload,
) (*assistance.Attachment, error) {
	cp, ok := payload.(completePayload)
	if !ok || cp.photo == nil {
		return nil, nil
	}

	key := fmt.Sprintf("assistances/%d/%s.jpg", a.ID(), uuid.NewString())
	if err := uc.photos.Upload(ctx, key, bytes.NewReader(cp.photo.content), "image/jpeg", int64(len(cp.photo.content))); err != nil {
		uc.logger.Errorw("failed to upload completion photo",
			"assistance_id", a.ID(),
			"error", err,
		)
		uc.audit(ctx, cmd, domainaudit.EventSupplierActionFailed, a.ID(),
			a.Status().String(), "", "photo upload failed")
		return nil, errors.NewInternalError("falha ao guardar a fotografia")
	}

	publicURL, err := uc.photos.PresignedURL(ctx, key, photoURLExpiry)
	if err != nil {
		uc.logger.Warnw("failed to presign photo URL", "assistance_id", a.ID(), "error", err)
	}

	return assistance.NewAttachment(
		a.ID(),
		key,
		publicURL,
		cp.photo.category,
		"Fornecedor",
		assistance.RoleSupplier,
		"image/jpeg",
		int64(len(cp.photo.content)),
	)
}

// sendFollowUpEmail nudges the supplier to pick a date after an accept
// without one. Failures are logged only; the action already succeeded.
func (uc *SupplierActionUseCase) sendFollowUpEmail(ctx context.Context, a *assistance.Assistance, action vo.Action) {
	if action != vo.ActionAccept || !a.Status().IsPendingScheduling() {
		return
	}
	if a.SupplierID() == nil {
		return
	}

	s, err := uc.supplierRepo.GetByID(ctx, *a.SupplierID())
	if err != nil {
		uc.logger.Warnw("failed to load supplier for scheduling email",
			"assistance_id", a.ID(), "supplier_id", *a.SupplierID(), "error", err)
		return
	}

	buildingName := ""
	if b, err := uc.buildingRepo.GetByID(ctx, a.BuildingID()); err == nil && b != nil {
		buildingName = b.Name()
	}

	if err := uc.notifier.SendSchedulingEmail(s.Email(), buildingName, a.SchedulingToken().String()); err != nil {
		uc.logger.Warnw("failed to send scheduling email",
			"assistance_id", a.ID(), "supplier_id", s.ID(), "error", err)
	}
}

func (uc *SupplierActionUseCase) audit(
	ctx context.Context,
	cmd SupplierActionCommand,
	eventType domainaudit.EventType,
	resourceID uint,
	oldValue, newValue, details string,
) {
	uc.auditor.Record(ctx, domainaudit.Event{
		EventType:    eventType,
		ResourceType: audit.ResourceAssistance,
		ResourceID:   resourceID,
		ClientIP:     cmd.ClientIP,
		UserAgent:    cmd.UserAgent,
		ActorRole:    string(assistance.RoleSupplier),
		OldValue:     oldValue,
		NewValue:     newValue,
		Details:      details,
	})
}
