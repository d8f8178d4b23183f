package models

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionStatus enum values
const (
	SubscriptionActive    = "ACTIVE"
	SubscriptionCancelled = "CANCELLED"
)

// BotSubscription tracks user subscriptions to bots. There is at most
// one row per user+bot; cancelling keeps the row so a re-subscribe
// reactivates it instead of inserting a duplicate.
type BotSubscription struct {
	gorm.Model
	UserID       uint       `gorm:"not null;uniqueIndex:idx_user_bot" json:"userId"`
	BotID        uint       `gorm:"not null;uniqueIndex:idx_user_bot" json:"botId"`
	Status       string     `gorm:"not null;type:varchar(20);default:'ACTIVE'" json:"status"`
	SubscribedAt time.Time  `gorm:"not null" json:"subscribedAt"`
	CancelledAt  *time.Time `json:"cancelledAt"`

	// Relations
	Bot Bot `gorm:"foreignKey:BotID" json:"bot,omitempty"`
}

func (BotSubscription) TableName() string {
	return "bot_subscriptions"
}
