package main

import (
	"fmt"
	"log"
	"net/http"

	"familytree/backend/internal/auth"
	"familytree/backend/internal/config"
	"familytree/backend/internal/database"
	"familytree/backend/internal/directory"
	"familytree/backend/internal/handler"
	"familytree/backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Swagger imports
	_ "familytree/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Familiale Tree API
// @version         1.0
// @description     Genealogy service: registration with family-link validation, admin review, tree and timeline views.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Optional Redis cache for the member directory
	if err := directory.Connect(config.AppConfig.RedisURL); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Email notifications, when SES is configured
	if config.AppConfig.SESFromEmail != "" {
		notifier, err := notify.NewSESNotifier(config.AppConfig.AWSRegion, config.AppConfig.SESFromEmail, config.AppConfig.AppBaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize email notifications: %v", err)
		}
		notify.Default = notifier
	}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
			authRoutes.GET("/oauth/:provider", handler.StartOAuth)
			authRoutes.GET("/oauth/:provider/callback", handler.OAuthCallback)
		}

		// Public tree views (token optional)
		treeRoutes := apiV1.Group("")
		treeRoutes.Use(auth.OptionalAuthMiddleware())
		{
			treeRoutes.GET("/tree", handler.GetFamilyTree)
			treeRoutes.GET("/timeline", handler.GetTimeline)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
		}

		// Member routes (protected)
		memberRoutes := apiV1.Group("/members")
		memberRoutes.Use(auth.AuthMiddleware())
		{
			memberRoutes.GET("", handler.SearchMembers) // Must be before /:id
			memberRoutes.POST("", handler.CreateMember)
			memberRoutes.GET("/:id", handler.GetMemberByID)
			memberRoutes.GET("/:id/media", handler.GetMemberMedia)
			memberRoutes.POST("/:id/media", handler.AddMemberMedia)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			// Family validation requests
			requests := adminRoutes.Group("/requests")
			{
				requests.GET("", handler.ListRequests)
				requests.POST("/:id/approve", handler.ApproveRequest)
				requests.POST("/:id/reject", handler.RejectRequest)
			}

			// Member edits (admin-only parts)
			adminRoutes.PUT("/members/:id", handler.UpdateMember)
		}
	}

	fmt.Println("Server is running on :8080")
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(":8080"))
}
