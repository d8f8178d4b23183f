package groupController

import (
	"botapi/database"
	"botapi/middleware"
	"botapi/models"
	groupValidator "botapi/validators/group"
	"log"

	"github.com/gofiber/fiber/v2"
)

func CreateGroup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateGroup").(*groupValidator.CreateGroupRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	// Unique name across non-deleted groups
	if err := db.Where("name = ? AND is_deleted = ?", reqData.Name, false).First(&models.Group{}).Error; err == nil {
		return middleware.Fail(c, fiber.StatusConflict, "GROUP_EXISTS", "A group with this name already exists!")
	}

	group := models.Group{
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	if err := db.Create(&group).Error; err != nil {
		log.Printf("Error creating group: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create group!")
	}

	return middleware.Success(c, fiber.StatusCreated, "Group created.", group)
}

func UpdateGroup(c *fiber.Ctx) error {
	groupId, err := c.ParamsInt("id")
	if err != nil || groupId < 1 {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid group id!")
	}

	reqData, ok := c.Locals("validatedUpdateGroup").(*groupValidator.UpdateGroupRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var group models.Group
	if err := db.Where("id = ? AND is_deleted = ?", groupId, false).First(&group).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "GROUP_NOT_FOUND", "Group not found!")
	}

	if reqData.Name != "" && reqData.Name != group.Name {
		if err := db.Where("name = ? AND is_deleted = ? AND id <> ?", reqData.Name, false, group.ID).
			First(&models.Group{}).Error; err == nil {
			return middleware.Fail(c, fiber.StatusConflict, "GROUP_EXISTS", "A group with this name already exists!")
		}
		group.Name = reqData.Name
	}
	if reqData.Description != "" {
		group.Description = reqData.Description
	}

	if err := db.Save(&group).Error; err != nil {
		log.Printf("Error updating group: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update group!")
	}

	return middleware.Success(c, fiber.StatusOK, "Group updated.", group)
}

func DeleteGroup(c *fiber.Ctx) error {
	groupId, err := c.ParamsInt("id")
	if err != nil || groupId < 1 {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid group id!")
	}

	db := database.Database.Db

	var group models.Group
	if err := db.Where("id = ? AND is_deleted = ?", groupId, false).First(&group).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "GROUP_NOT_FOUND", "Group not found!")
	}

	// A group still referenced by bots cannot be removed
	var botCount int64
	db.Model(&models.Bot{}).Where("group_id = ? AND is_deleted = ?", group.ID, false).Count(&botCount)
	if botCount > 0 {
		return middleware.Fail(c, fiber.StatusConflict, "GROUP_NOT_EMPTY", "Group still has bots assigned!")
	}

	group.IsDeleted = true
	if err := db.Save(&group).Error; err != nil {
		log.Printf("Error deleting group: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to delete group!")
	}

	return middleware.Success(c, fiber.StatusOK, "Group deleted.", nil)
}

func ListGroups(c *fiber.Ctx) error {
	var groups []models.Group
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("name ASC").Find(&groups).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch groups!")
	}

	return middleware.Success(c, fiber.StatusOK, "Group list.", groups)
}

func GetGroup(c *fiber.Ctx) error {
	groupId, err := c.ParamsInt("id")
	if err != nil || groupId < 1 {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid group id!")
	}

	var group models.Group
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", groupId, false).First(&group).Error; err != nil {
		return middleware.Fail(c, fiber.StatusNotFound, "GROUP_NOT_FOUND", "Group not found!")
	}

	return middleware.Success(c, fiber.StatusOK, "Group details.", group)
}
