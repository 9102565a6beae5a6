package models

import "zelo/internal/shared/constants"

type BuildingModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null;index"`
	Address   string `gorm:"size:500;not null"`
	Postcode  string `gorm:"size:20"`
	City      string `gorm:"size:100"`
	Active    bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (BuildingModel) TableName() string {
	return constants.TableBuildings
}
