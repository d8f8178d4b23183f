package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP purpose values
const (
	OTPEmailVerify = "EMAIL_VERIFY"
	OTPPhoneVerify = "PHONE_VERIFY"
)

// OTP is a pending one-time code for a subject (email or mobile).
// Rows are deleted on successful verification; expired leftovers are
// purged by the cleanup scheduler.
type OTP struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Subject   string    `gorm:"size:100;not null;index:idx_otp_subject_purpose" json:"subject"`
	Purpose   string    `gorm:"size:20;not null;index:idx_otp_subject_purpose" json:"purpose"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
