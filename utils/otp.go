package utils

import (
	"botapi/models"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

const (
	// OTPTTL is how long an issued code stays valid
	OTPTTL = 5 * time.Minute
	// OTPCooldown is the minimum gap between two codes for the same
	// subject and purpose
	OTPCooldown = 60 * time.Second
)

var (
	ErrOTPCooldown = errors.New("an OTP was sent recently, try again later")
	ErrOTPInvalid  = errors.New("invalid OTP code")
	ErrOTPExpired  = errors.New("OTP has expired")
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// IssueOTP creates a fresh code for subject+purpose. A new code cannot
// be issued inside the cooldown window, and issuing one invalidates any
// earlier codes still in flight for the same subject+purpose.
func IssueOTP(db *gorm.DB, userID uint, subject, purpose string) (*models.OTP, error) {
	var last models.OTP
	err := db.Where("subject = ? AND purpose = ?", subject, purpose).
		Order("created_at DESC").
		First(&last).Error
	if err == nil && time.Since(last.CreatedAt) < OTPCooldown {
		return nil, ErrOTPCooldown
	}

	// Replace any earlier codes so at most one is valid at a time
	if err := db.Unscoped().
		Where("subject = ? AND purpose = ?", subject, purpose).
		Delete(&models.OTP{}).Error; err != nil {
		return nil, err
	}

	otpRecord := models.OTP{
		UserID:    userID,
		Subject:   subject,
		Purpose:   purpose,
		Code:      GenerateOTP(),
		ExpiresAt: time.Now().Add(OTPTTL),
	}

	if err := db.Create(&otpRecord).Error; err != nil {
		return nil, err
	}

	return &otpRecord, nil
}

// ConsumeOTP verifies a code and deletes it on success. Mismatched
// codes and expired codes are rejected; a consumed code cannot be
// verified twice.
func ConsumeOTP(db *gorm.DB, subject, purpose, code string) error {
	var otpRecord models.OTP
	err := db.Where("subject = ? AND purpose = ?", subject, purpose).
		Order("created_at DESC").
		First(&otpRecord).Error
	if err != nil {
		return ErrOTPInvalid
	}

	if otpRecord.Code != code {
		return ErrOTPInvalid
	}

	if otpRecord.ExpiresAt.Before(time.Now()) {
		return ErrOTPExpired
	}

	return db.Unscoped().Delete(&otpRecord).Error
}
