package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// KYC section status values. Empty string means the section was never
// submitted.
const (
	KycPending  = "PENDING"
	KycVerified = "VERIFIED"
	KycRejected = "REJECTED"
)

// KYC section names accepted by the verify endpoint
const (
	KycSectionPan    = "PAN"
	KycSectionAadhar = "AADHAR"
	KycSectionBank   = "BANK"
)

type UserKYC struct {
	gorm.Model
	UserID      uint           `gorm:"uniqueIndex;not null" json:"userId"`
	Country     string         `gorm:"default:''" json:"country"`
	PanProof    PanDetails     `gorm:"embedded;embeddedPrefix:pan_" json:"pan"`
	AadharProof AadharDetails  `gorm:"embedded;embeddedPrefix:aadhar_" json:"aadhar"`
	BankProof   BankDetails    `gorm:"embedded;embeddedPrefix:bank_" json:"bank"`
	Documents   datatypes.JSON `json:"documents"` // uploaded document metadata
	IsVerified  bool           `gorm:"default:false" json:"isVerified"`
	IsDeleted   bool           `gorm:"default:false" json:"-"`
}

type PanDetails struct {
	PanNumber string `gorm:"index;default:''" json:"panNumber"`
	Name      string `gorm:"default:''" json:"name"`
	Status    string `gorm:"default:''" json:"status"`
	Remarks   string `gorm:"default:''" json:"remarks"`
}

type AadharDetails struct {
	AadharNumber string `gorm:"index;default:''" json:"aadharNumber"`
	Name         string `gorm:"default:''" json:"name"`
	DOB          string `gorm:"default:''" json:"dob"`
	Address      string `gorm:"default:''" json:"address"`
	Status       string `gorm:"default:''" json:"status"`
	Remarks      string `gorm:"default:''" json:"remarks"`
}

type BankDetails struct {
	AccountNumber string `gorm:"default:''" json:"accountNumber"`
	IFSC          string `gorm:"default:''" json:"ifsc"`
	Status        string `gorm:"default:''" json:"status"`
	Remarks       string `gorm:"default:''" json:"remarks"`
}
