package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"zelo/internal/domain/audit"
	"zelo/internal/infrastructure/persistence/mappers"
	db "zelo/internal/shared/db"
)

// AuditEventRepository writes append-only audit rows. There is no update or
// delete path on this table.
type AuditEventRepository struct {
	db     *gorm.DB
	mapper mappers.AuditEventMapper
}

func NewAuditEventRepository(gdb *gorm.DB) *AuditEventRepository {
	return &AuditEventRepository{
		db:     gdb,
		mapper: mappers.NewAuditEventMapper(),
	}
}

func (r *AuditEventRepository) Save(ctx context.Context, e *audit.Event) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save audit event: %w", err)
	}

	return nil
}
