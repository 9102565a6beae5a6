package models

import "zelo/internal/shared/constants"

type AuditEventModel struct {
	ID           uint   `gorm:"primaryKey"`
	EventType    string `gorm:"size:50;not null;index"`
	ResourceType string `gorm:"size:50;not null;index"`
	ResourceID   uint   `gorm:"index"`
	ClientIP     string `gorm:"size:45;index"`
	UserAgent    string `gorm:"size:500"`
	ActorRole    string `gorm:"size:20"`
	OldValue     string `gorm:"size:100"`
	NewValue     string `gorm:"size:100"`
	Details      string `gorm:"type:text"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditEventModel) TableName() string {
	return constants.TableAuditEvents
}
