package models

import (
	"time"

	"gorm.io/gorm"
)

// Signal status enum values
const (
	SignalOpen   = "OPEN"
	SignalClosed = "CLOSED"
)

// Signal side enum values
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// Signal is a trade call published by a bot to its subscribers.
type Signal struct {
	gorm.Model
	BotID       uint       `gorm:"not null;index" json:"botId"`
	Reference   string     `gorm:"size:36;uniqueIndex" json:"reference"`
	Symbol      string     `gorm:"not null" json:"symbol"`
	Side        string     `gorm:"type:varchar(5);not null" json:"side"` // BUY or SELL
	EntryPrice  float64    `gorm:"not null" json:"entryPrice"`
	TargetPrice float64    `gorm:"default:0" json:"targetPrice"`
	StopLoss    float64    `gorm:"default:0" json:"stopLoss"`
	Status      string     `gorm:"type:varchar(10);default:'OPEN'" json:"status"`
	Result      float64    `gorm:"default:0" json:"result"` // realized pnl percent, set on close
	ClosedAt    *time.Time `json:"closedAt"`
	IsDeleted   bool       `gorm:"default:false" json:"-"`

	// Relations
	Bot Bot `gorm:"foreignKey:BotID" json:"bot,omitempty"`
}
