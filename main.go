package main

import (
	"botapi/config"
	"botapi/database"
	"botapi/middleware"
	authRoutes "botapi/routers/authRoutes"
	botRoutes "botapi/routers/botRoutes"
	groupRoutes "botapi/routers/groupRoutes"
	kycRoutes "botapi/routers/kycRoutes"
	signalRoutes "botapi/routers/signalRoutes"
	subscriptionRoutes "botapi/routers/subscriptionRoutes"
	userRoutes "botapi/routers/userRoutes"
	"botapi/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitializeCleanupScheduler()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder (reset-password page)
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	kycRoutes.SetupKYCRoutes(app)
	groupRoutes.SetupGroupRoutes(app)
	botRoutes.SetupBotRoutes(app)
	signalRoutes.SetupSignalRoutes(app)
	subscriptionRoutes.SetupSubscriptionRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
