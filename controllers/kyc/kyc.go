package kycController

import (
	"botapi/database"
	"botapi/middleware"
	"botapi/models"
	kycValidator "botapi/validators/kyc"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// recomputeVerified derives the overall flag: every section submitted
// and verified, with all three sections present.
func recomputeVerified(kyc *models.UserKYC) {
	kyc.IsVerified = kyc.PanProof.Status == models.KycVerified &&
		kyc.AadharProof.Status == models.KycVerified &&
		kyc.BankProof.Status == models.KycVerified
}

func SubmitKYC(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedSubmitKYC").(*kycValidator.SubmitKYCRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var kyc models.UserKYC
	if err := db.Where("user_id = ? AND is_deleted = ?", userId, false).First(&kyc).Error; err != nil {
		kyc = models.UserKYC{UserID: userId}
	}

	if reqData.Country != "" {
		kyc.Country = reqData.Country
	}

	// Each submitted section lands in PENDING, replacing whatever was
	// there before
	if reqData.Pan != nil {
		var existing models.UserKYC
		if err := db.Where("pan_pan_number = ? AND user_id <> ?", reqData.Pan.PanNumber, userId).
			First(&existing).Error; err == nil {
			return middleware.Fail(c, fiber.StatusConflict, "PAN_EXISTS", "PAN number is already registered!")
		}
		kyc.PanProof = models.PanDetails{
			PanNumber: reqData.Pan.PanNumber,
			Name:      reqData.Pan.Name,
			Status:    models.KycPending,
		}
	}

	if reqData.Aadhar != nil {
		var existing models.UserKYC
		if err := db.Where("aadhar_aadhar_number = ? AND user_id <> ?", reqData.Aadhar.AadharNumber, userId).
			First(&existing).Error; err == nil {
			return middleware.Fail(c, fiber.StatusConflict, "AADHAR_EXISTS", "Aadhar number is already registered!")
		}
		kyc.AadharProof = models.AadharDetails{
			AadharNumber: reqData.Aadhar.AadharNumber,
			Name:         reqData.Aadhar.Name,
			DOB:          reqData.Aadhar.DOB,
			Address:      reqData.Aadhar.Address,
			Status:       models.KycPending,
		}
	}

	if reqData.Bank != nil {
		kyc.BankProof = models.BankDetails{
			AccountNumber: reqData.Bank.AccountNumber,
			IFSC:          reqData.Bank.IFSC,
			Status:        models.KycPending,
		}
	}

	if reqData.Documents != nil {
		raw, err := json.Marshal(reqData.Documents)
		if err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid documents payload!")
		}
		kyc.Documents = raw
	}

	recomputeVerified(&kyc)

	if err := db.Save(&kyc).Error; err != nil {
		log.Printf("Error saving KYC: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to save KYC!")
	}

	return middleware.Success(c, fiber.StatusOK, "KYC submitted for review.", kyc)
}

func GetMyKYC(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized!")
	}

	var kyc models.UserKYC
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userId, false).First(&kyc).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "KYC_NOT_FOUND", "No KYC submitted yet!")
	}

	return middleware.Success(c, fiber.StatusOK, "KYC details.", kyc)
}

func ListKYC(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedListKYC").(*kycValidator.ListKYCRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db
	offset := (reqData.Page - 1) * reqData.Limit

	query := db.Model(&models.UserKYC{}).Where("is_deleted = ?", false)
	switch reqData.Status {
	case models.KycVerified:
		query = query.Where("is_verified = ?", true)
	case models.KycPending:
		query = query.Where("is_verified = ? AND (pan_status = ? OR aadhar_status = ? OR bank_status = ?)",
			false, models.KycPending, models.KycPending, models.KycPending)
	case models.KycRejected:
		query = query.Where("pan_status = ? OR aadhar_status = ? OR bank_status = ?",
			models.KycRejected, models.KycRejected, models.KycRejected)
	}

	var total int64
	query.Count(&total)

	var records []models.UserKYC
	if err := query.Order("updated_at DESC").Offset(offset).Limit(reqData.Limit).Find(&records).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch KYC records!")
	}

	return middleware.Success(c, fiber.StatusOK, "KYC list.", fiber.Map{
		"records": records,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func VerifySection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifySection").(*kycValidator.VerifySectionRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var kyc models.UserKYC
	if err := db.Where("user_id = ? AND is_deleted = ?", reqData.UserID, false).First(&kyc).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "KYC_NOT_FOUND", "No KYC found for this user!")
	}

	status := models.KycRejected
	if *reqData.Approve {
		status = models.KycVerified
	}

	switch reqData.Section {
	case models.KycSectionPan:
		if kyc.PanProof.Status == "" {
			return middleware.Fail(c, fiber.StatusBadRequest, "SECTION_NOT_SUBMITTED", "PAN section was never submitted!")
		}
		kyc.PanProof.Status = status
		kyc.PanProof.Remarks = reqData.Remarks
	case models.KycSectionAadhar:
		if kyc.AadharProof.Status == "" {
			return middleware.Fail(c, fiber.StatusBadRequest, "SECTION_NOT_SUBMITTED", "Aadhar section was never submitted!")
		}
		kyc.AadharProof.Status = status
		kyc.AadharProof.Remarks = reqData.Remarks
	case models.KycSectionBank:
		if kyc.BankProof.Status == "" {
			return middleware.Fail(c, fiber.StatusBadRequest, "SECTION_NOT_SUBMITTED", "Bank section was never submitted!")
		}
		kyc.BankProof.Status = status
		kyc.BankProof.Remarks = reqData.Remarks
	}

	recomputeVerified(&kyc)

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&kyc).Error
	})
	if err != nil {
		log.Printf("Error updating KYC section: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update KYC!")
	}

	return middleware.Success(c, fiber.StatusOK, "KYC section updated.", kyc)
}
