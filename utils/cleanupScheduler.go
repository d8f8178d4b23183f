package utils

import (
	"botapi/database"
	"botapi/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeCleanupScheduler starts the background jobs that stand in
// for the store-side TTLs: expired OTP purge, stale reset token purge
// and login history retention.
func InitializeCleanupScheduler() {
	log.Println("[CLEANUP] Initializing cleanup scheduler...")

	c := cron.New()

	// Hourly: expired OTPs and stale reset tokens
	if _, err := c.AddFunc("0 * * * *", func() {
		PurgeExpiredOTPs()
		PurgeExpiredResetTokens()
	}); err != nil {
		log.Printf("[CLEANUP] Error scheduling purge job: %v", err)
	}

	// Daily at 03:30: trim old login history
	if _, err := c.AddFunc("30 3 * * *", func() {
		TrimLoginHistory()
	}); err != nil {
		log.Printf("[CLEANUP] Error scheduling login history job: %v", err)
	}

	c.Start()
	log.Println("[CLEANUP] Cleanup scheduler started")
}

// PurgeExpiredOTPs hard-deletes OTP rows past their expiry
func PurgeExpiredOTPs() {
	db := database.Database.Db

	result := db.Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&models.OTP{})
	if result.Error != nil {
		log.Printf("[CLEANUP] Error purging expired OTPs: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[CLEANUP] Purged %d expired OTPs", result.RowsAffected)
	}
}

// PurgeExpiredResetTokens clears reset token fields past their expiry
func PurgeExpiredResetTokens() {
	db := database.Database.Db

	result := db.Model(&models.User{}).
		Where("reset_token_hash <> '' AND reset_token_expires_at < ?", time.Now()).
		Updates(map[string]interface{}{
			"reset_token_hash":       "",
			"reset_token_expires_at": nil,
		})
	if result.Error != nil {
		log.Printf("[CLEANUP] Error purging reset tokens: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[CLEANUP] Cleared %d stale reset tokens", result.RowsAffected)
	}
}

// TrimLoginHistory drops login tracking rows older than 90 days
func TrimLoginHistory() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -90)

	result := db.Unscoped().
		Where("timestamp < ?", cutoff).
		Delete(&models.LoginTracking{})
	if result.Error != nil {
		log.Printf("[CLEANUP] Error trimming login history: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[CLEANUP] Trimmed %d login history rows", result.RowsAffected)
	}
}
