package utils

import (
	"botapi/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OTP{}))
	return db
}

// backdate moves an OTP's creation time so cooldown checks do not trip
func backdate(t *testing.T, db *gorm.DB, otp *models.OTP, d time.Duration) {
	require.NoError(t, db.Model(otp).Update("created_at", time.Now().Add(-d)).Error)
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9', "OTP must be numeric, got %q", otp)
		}
	}
}

func TestIssueOTPCooldown(t *testing.T) {
	db := newTestDB(t)

	first, err := IssueOTP(db, 1, "user@example.com", models.OTPEmailVerify)
	require.NoError(t, err)
	assert.Len(t, first.Code, 6)

	// Immediate re-issue is inside the cooldown window
	_, err = IssueOTP(db, 1, "user@example.com", models.OTPEmailVerify)
	assert.ErrorIs(t, err, ErrOTPCooldown)

	// A different purpose for the same subject has its own window
	_, err = IssueOTP(db, 1, "user@example.com", models.OTPPhoneVerify)
	assert.NoError(t, err)
}

func TestIssueOTPReplacesPrevious(t *testing.T) {
	db := newTestDB(t)

	first, err := IssueOTP(db, 1, "user@example.com", models.OTPEmailVerify)
	require.NoError(t, err)
	backdate(t, db, first, 2*time.Minute)

	second, err := IssueOTP(db, 1, "user@example.com", models.OTPEmailVerify)
	require.NoError(t, err)

	// The old code must no longer verify, only the fresh one may
	if first.Code != second.Code {
		assert.ErrorIs(t, ConsumeOTP(db, "user@example.com", models.OTPEmailVerify, first.Code), ErrOTPInvalid)
	}

	var count int64
	db.Model(&models.OTP{}).Where("subject = ?", "user@example.com").Count(&count)
	assert.Equal(t, int64(1), count)

	assert.NoError(t, ConsumeOTP(db, "user@example.com", models.OTPEmailVerify, second.Code))
}

func TestConsumeOTP(t *testing.T) {
	db := newTestDB(t)

	otp, err := IssueOTP(db, 1, "9876543210", models.OTPPhoneVerify)
	require.NoError(t, err)

	t.Run("wrong code", func(t *testing.T) {
		wrong := "000000"
		if otp.Code == wrong {
			wrong = "111111"
		}
		assert.ErrorIs(t, ConsumeOTP(db, "9876543210", models.OTPPhoneVerify, wrong), ErrOTPInvalid)
	})

	t.Run("wrong purpose", func(t *testing.T) {
		assert.ErrorIs(t, ConsumeOTP(db, "9876543210", models.OTPEmailVerify, otp.Code), ErrOTPInvalid)
	})

	t.Run("success consumes the row", func(t *testing.T) {
		assert.NoError(t, ConsumeOTP(db, "9876543210", models.OTPPhoneVerify, otp.Code))

		// Single use: a second verification must fail
		assert.ErrorIs(t, ConsumeOTP(db, "9876543210", models.OTPPhoneVerify, otp.Code), ErrOTPInvalid)
	})
}

func TestConsumeOTPExpired(t *testing.T) {
	db := newTestDB(t)

	otp, err := IssueOTP(db, 1, "late@example.com", models.OTPEmailVerify)
	require.NoError(t, err)

	require.NoError(t, db.Model(otp).Update("expires_at", time.Now().Add(-time.Minute)).Error)

	assert.ErrorIs(t, ConsumeOTP(db, "late@example.com", models.OTPEmailVerify, otp.Code), ErrOTPExpired)
}
