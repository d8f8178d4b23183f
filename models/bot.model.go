package models

import (
	"gorm.io/gorm"
)

// Risk level enum values
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

type Bot struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `gorm:"default:''" json:"description"`
	Strategy     string  `gorm:"default:''" json:"strategy"`
	RiskLevel    string  `gorm:"type:varchar(10);default:'MEDIUM'" json:"riskLevel"`
	MonthlyPrice float64 `gorm:"not null;default:0" json:"monthlyPrice"`
	GroupID      uint    `gorm:"not null;index" json:"groupId"`
	IsActive     bool    `gorm:"default:true" json:"isActive"`
	IsDeleted    bool    `gorm:"default:false" json:"-"`

	// Relations
	Group Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}
