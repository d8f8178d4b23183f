package botController

import (
	"botapi/database"
	"botapi/middleware"
	"botapi/models"
	botValidator "botapi/validators/bot"
	"log"

	"github.com/gofiber/fiber/v2"
)

func CreateBot(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateBot").(*botValidator.CreateBotRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var group models.Group
	if err := db.Where("id = ? AND is_deleted = ?", reqData.GroupID, false).First(&group).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "GROUP_NOT_FOUND", "Group not found!")
	}

	bot := models.Bot{
		Name:         reqData.Name,
		Description:  reqData.Description,
		Strategy:     reqData.Strategy,
		MonthlyPrice: reqData.MonthlyPrice,
		GroupID:      reqData.GroupID,
	}
	if reqData.RiskLevel != "" {
		bot.RiskLevel = reqData.RiskLevel
	}

	if err := db.Create(&bot).Error; err != nil {
		log.Printf("Error creating bot: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create bot!")
	}

	bot.Group = group
	return middleware.Success(c, fiber.StatusCreated, "Bot created.", bot)
}

func UpdateBot(c *fiber.Ctx) error {
	botId, err := c.ParamsInt("id")
	if err != nil || botId < 1 {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid bot id!")
	}

	reqData, ok := c.Locals("validatedUpdateBot").(*botValidator.UpdateBotRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var bot models.Bot
	if err := db.Where("id = ? AND is_deleted = ?", botId, false).First(&bot).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "BOT_NOT_FOUND", "Bot not found!")
	}

	if reqData.Name != "" {
		bot.Name = reqData.Name
	}
	if reqData.Description != nil {
		bot.Description = *reqData.Description
	}
	if reqData.Strategy != nil {
		bot.Strategy = *reqData.Strategy
	}
	if reqData.RiskLevel != "" {
		bot.RiskLevel = reqData.RiskLevel
	}
	if reqData.MonthlyPrice != nil {
		bot.MonthlyPrice = *reqData.MonthlyPrice
	}
	if reqData.IsActive != nil {
		bot.IsActive = *reqData.IsActive
	}
	if reqData.GroupID != 0 && reqData.GroupID != bot.GroupID {
		var group models.Group
		if err := db.Where("id = ? AND is_deleted = ?", reqData.GroupID, false).First(&group).Error; err != nil {
			return middleware.Fail(c, fiber.StatusNotFound, "GROUP_NOT_FOUND", "Group not found!")
		}
		bot.GroupID = reqData.GroupID
	}

	if err := db.Save(&bot).Error; err != nil {
		log.Printf("Error updating bot: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update bot!")
	}

	return middleware.Success(c, fiber.StatusOK, "Bot updated.", bot)
}

func DeleteBot(c *fiber.Ctx) error {
	botId, err := c.ParamsInt("id")
	if err != nil || botId < 1 {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid bot id!")
	}

	db := database.Database.Db

	var bot models.Bot
	if err := db.Where("id = ? AND is_deleted = ?", botId, false).First(&bot).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "BOT_NOT_FOUND", "Bot not found!")
	}

	bot.IsDeleted = true
	bot.IsActive = false
	if err := db.Save(&bot).Error; err != nil {
		log.Printf("Error deleting bot: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to delete bot!")
	}

	return middleware.Success(c, fiber.StatusOK, "Bot deleted.", nil)
}

func ListBots(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedListBots").(*botValidator.ListBotsRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db
	offset := (reqData.Page - 1) * reqData.Limit

	query := db.Model(&models.Bot{}).Where("is_deleted = ?", false)

	if reqData.Search != "" {
		search := "%" + reqData.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", search, search)
	}
	if reqData.GroupID != 0 {
		query = query.Where("group_id = ?", reqData.GroupID)
	}
	if reqData.RiskLevel != "" {
		query = query.Where("risk_level = ?", reqData.RiskLevel)
	}

	var total int64
	query.Count(&total)

	var bots []models.Bot
	if err := query.Preload("Group").
		Order("created_at DESC").
		Offset(offset).Limit(reqData.Limit).
		Find(&bots).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch bots!")
	}

	return middleware.Success(c, fiber.StatusOK, "Bot list.", fiber.Map{
		"bots": bots,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func GetBot(c *fiber.Ctx) error {
	botId, err := c.ParamsInt("id")
	if err != nil || botId < 1 {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid bot id!")
	}

	var bot models.Bot
	if err := database.Database.Db.Preload("Group").
		Where("id = ? AND is_deleted = ?", botId, false).
		First(&bot).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "BOT_NOT_FOUND", "Bot not found!")
	}

	return middleware.Success(c, fiber.StatusOK, "Bot details.", bot)
}
