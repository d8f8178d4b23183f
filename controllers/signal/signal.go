package signalController

import (
	"botapi/database"
	"botapi/middleware"
	"botapi/models"
	signalValidator "botapi/validators/signal"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateSignal(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateSignal").(*signalValidator.CreateSignalRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var bot models.Bot
	if err := db.Where("id = ? AND is_deleted = ?", reqData.BotID, false).First(&bot).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "BOT_NOT_FOUND", "Bot not found!")
	}

	signal := models.Signal{
		BotID:       reqData.BotID,
		Reference:   uuid.NewString(),
		Symbol:      reqData.Symbol,
		Side:        reqData.Side,
		EntryPrice:  reqData.EntryPrice,
		TargetPrice: reqData.TargetPrice,
		StopLoss:    reqData.StopLoss,
		Status:      models.SignalOpen,
	}

	if err := db.Create(&signal).Error; err != nil {
		log.Printf("Error creating signal: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create signal!")
	}

	return middleware.Success(c, fiber.StatusCreated, "Signal published.", signal)
}

func CloseSignal(c *fiber.Ctx) error {
	signalId, err := c.ParamsInt("id")
	if err != nil || signalId < 1 {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid signal id!")
	}

	reqData, ok := c.Locals("validatedCloseSignal").(*signalValidator.CloseSignalRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var signal models.Signal
	if err := db.Where("id = ? AND is_deleted = ?", signalId, false).First(&signal).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "SIGNAL_NOT_FOUND", "Signal not found!")
	}

	if signal.Status == models.SignalClosed {
		return middleware.Fail(c, fiber.StatusConflict, "SIGNAL_CLOSED", "Signal is already closed!")
	}

	now := time.Now()
	signal.Status = models.SignalClosed
	signal.Result = reqData.Result
	signal.ClosedAt = &now

	if err := db.Save(&signal).Error; err != nil {
		log.Printf("Error closing signal: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to close signal!")
	}

	return middleware.Success(c, fiber.StatusOK, "Signal closed.", signal)
}

func ListBotSignals(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized!")
	}

	botId, err := c.ParamsInt("botId")
	if err != nil || botId < 1 {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid bot id!")
	}

	reqData, ok := c.Locals("validatedListSignals").(*signalValidator.ListSignalsRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var bot models.Bot
	if err := db.Where("id = ? AND is_deleted = ?", botId, false).First(&bot).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "BOT_NOT_FOUND", "Bot not found!")
	}

	// Signals are for paying subscribers; admins see everything
	role, _ := c.Locals("userRole").(string)
	if role != "ADMIN" {
		var sub models.BotSubscription
		if err := db.Where("user_id = ? AND bot_id = ? AND status = ?",
			userId, botId, models.SubscriptionActive).First(&sub).Error; err != nil {
			return middleware.Fail(c, fiber.StatusForbidden, "NOT_SUBSCRIBED", "An active subscription is required to view signals!")
		}
	}

	offset := (reqData.Page - 1) * reqData.Limit

	query := db.Model(&models.Signal{}).Where("bot_id = ? AND is_deleted = ?", botId, false)
	if reqData.Status != "" {
		query = query.Where("status = ?", reqData.Status)
	}

	var total int64
	query.Count(&total)

	var signals []models.Signal
	if err := query.Order("created_at DESC").Offset(offset).Limit(reqData.Limit).Find(&signals).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch signals!")
	}

	return middleware.Success(c, fiber.StatusOK, "Signal list.", fiber.Map{
		"signals": signals,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}
