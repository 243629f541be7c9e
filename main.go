package main

import (
	"log"
	"os"

	"bapi/config"
	"bapi/controllers"
	"bapi/database"
	"bapi/middleware"
	"bapi/routes"
	"bapi/services"
	"bapi/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bapi/docs"
)

// @title Blog API
// @version 1.0
// @description A token-authenticated blog API with users, posts and comments.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()

	var st store.Store
	if cfg.DBDriver == "memory" {
		st = store.NewMemory()
	} else {
		db := database.Connect(cfg)
		database.Migrate(db)
		st = services.NewStore(db)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Logger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	authController := controllers.NewAuthController(st)
	postController := controllers.NewPostController(st)
	commentController := controllers.NewCommentController(st)

	routes.SetupRoutes(r, cfg, st, authController, postController, commentController)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
