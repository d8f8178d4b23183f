package groupRoutes

import (
	groupController "botapi/controllers/group"
	"botapi/middleware"
	groupValidator "botapi/validators/group"

	"github.com/gofiber/fiber/v2"
)

func SetupGroupRoutes(app *fiber.App) {
	groupGroup := app.Group("/api/groups")

	// Public reads
	groupGroup.Get("/", groupController.ListGroups)
	groupGroup.Get("/:id", groupController.GetGroup)

	// Admin mutations
	groupGroup.Post("/", groupValidator.CreateGroup(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), groupController.CreateGroup)
	groupGroup.Put("/:id", groupValidator.UpdateGroup(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), groupController.UpdateGroup)
	groupGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), groupController.DeleteGroup)
}
