package models

import (
	"gorm.io/gorm"
)

// Group is a named collection of bots (e.g. a strategy family).
type Group struct {
	gorm.Model
	Name        string `gorm:"unique;not null" json:"name"`
	Description string `gorm:"default:''" json:"description"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}
