package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/infrastructure/persistence/mappers"
	"zelo/internal/infrastructure/persistence/models"
	db "zelo/internal/shared/db"
	apperrors "zelo/internal/shared/errors"
)

// allowedAssistanceOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedAssistanceOrderByFields = map[string]bool{
	"id":           true,
	"building_id":  true,
	"supplier_id":  true,
	"category":     true,
	"priority":     true,
	"status":       true,
	"scheduled_at": true,
	"created_at":   true,
	"updated_at":   true,
}

type AssistanceRepository struct {
	db     *gorm.DB
	mapper mappers.AssistanceMapper
}

func NewAssistanceRepository(gdb *gorm.DB) *AssistanceRepository {
	return &AssistanceRepository{
		db:     gdb,
		mapper: mappers.NewAssistanceMapper(),
	}
}

func (r *AssistanceRepository) Save(ctx context.Context, a *assistance.Assistance) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save assistance: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *AssistanceRepository) Update(ctx context.Context, a *assistance.Assistance) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AssistanceModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update assistance: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *AssistanceRepository) GetByID(ctx context.Context, id uint) (*assistance.Assistance, error) {
	var model models.AssistanceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("assistência não encontrada")
		}
		return nil, fmt.Errorf("failed to find assistance: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByActionToken resolves the ticket owning the token via the column the
// scope maps to. ScopeAny checks all three columns; lookups are exact
// matches against unique indexes.
func (r *AssistanceRepository) GetByActionToken(
	ctx context.Context,
	scope vo.TokenScope,
	token vo.ActionToken,
) (*assistance.Assistance, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssistanceModel{})

	switch scope {
	case vo.ScopeAcceptance:
		query = query.Where("acceptance_token = ?", token.String())
	case vo.ScopeScheduling:
		query = query.Where("scheduling_token = ?", token.String())
	case vo.ScopeValidation:
		query = query.Where("validation_token = ?", token.String())
	case vo.ScopeAny:
		query = query.Where(
			"acceptance_token = ? OR scheduling_token = ? OR validation_token = ?",
			token.String(), token.String(), token.String(),
		)
	default:
		return nil, fmt.Errorf("unknown token scope: %s", scope)
	}

	var model models.AssistanceModel
	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("token inválido ou assistência não encontrada")
		}
		return nil, fmt.Errorf("failed to find assistance by token: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// UpdateStatus persists the aggregate's current state as one conditional
// UPDATE guarded on the previous status. A concurrent writer that already
// moved the ticket leaves zero rows matched and the caller gets
// ErrStatusConflict instead of a silent overwrite.
func (r *AssistanceRepository) UpdateStatus(
	ctx context.Context,
	a *assistance.Assistance,
	expected vo.Status,
) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	updates := map[string]interface{}{
		"status":                    model.Status,
		"supplier_id":               model.SupplierID,
		"scheduled_at":              model.ScheduledAt,
		"rejection_reason":          model.RejectionReason,
		"reschedule_reason":         model.RescheduleReason,
		"validation_reminder_count": model.ValidationReminderCount,
		"validation_email_sent_at":  model.ValidationEmailSentAt,
		"responded_at":              model.RespondedAt,
		"completed_at":              model.CompletedAt,
		"cancelled_at":              model.CancelledAt,
		"updated_at":                model.UpdatedAt,
	}

	result := tx.
		Model(&models.AssistanceModel{}).
		Where("id = ? AND status = ?", model.ID, expected.String()).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update assistance status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return assistance.ErrStatusConflict
	}

	return nil
}

func (r *AssistanceRepository) List(
	ctx context.Context,
	filter assistance.Filter,
) ([]*assistance.Assistance, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssistanceModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.BuildingID != nil {
		query = query.Where("building_id = ?", *filter.BuildingID)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assistances: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedAssistanceOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var assistanceModels []models.AssistanceModel
	if err := query.Find(&assistanceModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assistances: %w", err)
	}

	assistances := make([]*assistance.Assistance, len(assistanceModels))
	for i, model := range assistanceModels {
		a, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		assistances[i] = a
	}

	return assistances, total, nil
}

func (r *AssistanceRepository) ListScheduledBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*assistance.Assistance, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var assistanceModels []models.AssistanceModel
	if err := tx.
		Model(&models.AssistanceModel{}).
		Where("status = ?", vo.StatusScheduled.String()).
		Where("scheduled_at >= ? AND scheduled_at < ?", from.UnixMilli(), to.UnixMilli()).
		Order("scheduled_at ASC").
		Find(&assistanceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list scheduled assistances: %w", err)
	}

	assistances := make([]*assistance.Assistance, len(assistanceModels))
	for i, model := range assistanceModels {
		a, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		assistances[i] = a
	}

	return assistances, nil
}
