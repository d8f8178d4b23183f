package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string     `gorm:"default:''" json:"name"`
	Email               string     `gorm:"unique;not null" json:"email"`
	Mobile              string     `gorm:"index;default:''" json:"mobile"`
	Role                string     `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	Password            string     `gorm:"default:''" json:"-"`
	GoogleID            string     `gorm:"index;default:''" json:"-"`
	PinHash             string     `gorm:"default:''" json:"-"`
	IsEmailVerified     bool       `gorm:"default:false" json:"isEmailVerified"`
	IsMobileVerified    bool       `gorm:"default:false" json:"isMobileVerified"`
	ResetTokenHash      string     `gorm:"default:''" json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `gorm:"default:false" json:"-"`
	BlockedUntil        *time.Time `json:"-"`
	LastLogin           time.Time  `gorm:"default:NULL" json:"lastLogin"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}
