package models

import "zelo/internal/shared/constants"

type SupplierModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null;index"`
	Email     string `gorm:"size:255;not null;index"`
	Phone     string `gorm:"size:50"`
	Specialty string `gorm:"size:100;index"`
	Active    bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SupplierModel) TableName() string {
	return constants.TableSuppliers
}
