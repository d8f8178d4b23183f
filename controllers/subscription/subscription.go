package subscriptionController

import (
	"botapi/database"
	"botapi/middleware"
	"botapi/models"
	"botapi/utils"
	subscriptionValidator "botapi/validators/subscription"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

func Subscribe(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedSubscribe").(*subscriptionValidator.SubscribeRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "User not found!")
	}

	var bot models.Bot
	if err := db.Where("id = ? AND is_deleted = ?", reqData.BotID, false).First(&bot).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "BOT_NOT_FOUND", "Bot not found!")
	}
	if !bot.IsActive {
		return middleware.Fail(c, fiber.StatusConflict, "BOT_INACTIVE", "Bot is not accepting subscriptions!")
	}

	// Idempotent per user+bot: an active row is returned as-is, a
	// cancelled row is reactivated
	var sub models.BotSubscription
	if err := db.Where("user_id = ? AND bot_id = ?", userId, reqData.BotID).First(&sub).Error; err == nil {
		if sub.Status == models.SubscriptionActive {
			sub.Bot = bot
			return middleware.Success(c, fiber.StatusOK, "Already subscribed to this bot.", sub)
		}

		sub.Status = models.SubscriptionActive
		sub.SubscribedAt = time.Now()
		sub.CancelledAt = nil
		if err := db.Save(&sub).Error; err != nil {
			log.Printf("Error reactivating subscription: %v", err)
			return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to subscribe!")
		}

		sub.Bot = bot
		utils.SendSubscriptionEmail(user.Email, user.Name, bot.Name)
		return middleware.Success(c, fiber.StatusOK, "Subscription reactivated.", sub)
	}

	sub = models.BotSubscription{
		UserID:       userId,
		BotID:        reqData.BotID,
		Status:       models.SubscriptionActive,
		SubscribedAt: time.Now(),
	}

	if err := db.Create(&sub).Error; err != nil {
		log.Printf("Error creating subscription: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to subscribe!")
	}

	sub.Bot = bot
	utils.SendSubscriptionEmail(user.Email, user.Name, bot.Name)

	return middleware.Success(c, fiber.StatusCreated, "Subscribed successfully.", sub)
}

func Cancel(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized!")
	}

	botId, err := c.ParamsInt("botId")
	if err != nil || botId < 1 {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid bot id!")
	}

	db := database.Database.Db

	var sub models.BotSubscription
	if err := db.Where("user_id = ? AND bot_id = ? AND status = ?",
		userId, botId, models.SubscriptionActive).First(&sub).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "SUBSCRIPTION_NOT_FOUND", "No active subscription for this bot!")
	}

	now := time.Now()
	sub.Status = models.SubscriptionCancelled
	sub.CancelledAt = &now

	if err := db.Save(&sub).Error; err != nil {
		log.Printf("Error cancelling subscription: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to cancel subscription!")
	}

	return middleware.Success(c, fiber.StatusOK, "Subscription cancelled.", sub)
}

func MySubscriptions(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedListSubscriptions").(*subscriptionValidator.ListSubscriptionsRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db
	offset := (reqData.Page - 1) * reqData.Limit

	query := db.Model(&models.BotSubscription{}).Where("user_id = ?", userId)
	if reqData.Status != "" {
		query = query.Where("status = ?", reqData.Status)
	}

	var total int64
	query.Count(&total)

	var subs []models.BotSubscription
	if err := query.Preload("Bot").Preload("Bot.Group").
		Order("subscribed_at DESC").
		Offset(offset).Limit(reqData.Limit).
		Find(&subs).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch subscriptions!")
	}

	return middleware.Success(c, fiber.StatusOK, "Subscription list.", fiber.Map{
		"subscriptions": subs,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func ListAllSubscriptions(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedListSubscriptions").(*subscriptionValidator.ListSubscriptionsRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db
	offset := (reqData.Page - 1) * reqData.Limit

	query := db.Model(&models.BotSubscription{})
	if reqData.Status != "" {
		query = query.Where("status = ?", reqData.Status)
	}

	var total int64
	query.Count(&total)

	var subs []models.BotSubscription
	if err := query.Preload("Bot").
		Order("subscribed_at DESC").
		Offset(offset).Limit(reqData.Limit).
		Find(&subs).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch subscriptions!")
	}

	return middleware.Success(c, fiber.StatusOK, "All subscriptions.", fiber.Map{
		"subscriptions": subs,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}
