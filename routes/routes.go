package routes

import (
	"net/http"

	"bapi/config"
	"bapi/controllers"
	"bapi/middleware"
	"bapi/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, st store.Store, authController *controllers.AuthController, postController *controllers.PostController, commentController *controllers.CommentController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", middleware.AuthRequired(st), authController.Me)
		if cfg.ResetEnabled {
			auth.DELETE("/reset", authController.Reset)
		}
	}

	posts := r.Group("/posts")
	posts.Use(middleware.AuthRequired(st))
	{
		posts.POST("", postController.Create)
		posts.GET("", postController.List)
		posts.GET("/:id", postController.Get)
		posts.PATCH("/:id", postController.Update)
		// gin's tree cannot hold /posts/reset next to /posts/:id, so the
		// reset path is dispatched inside the param route.
		posts.DELETE("/:id", func(c *gin.Context) {
			if cfg.ResetEnabled && c.Param("id") == "reset" {
				postController.Reset(c)
				return
			}
			postController.Delete(c)
		})
	}

	comments := r.Group("/comments")
	comments.Use(middleware.AuthRequired(st))
	{
		comments.POST("", commentController.Create)
		comments.DELETE("/:id", func(c *gin.Context) {
			if cfg.ResetEnabled && c.Param("id") == "reset" {
				commentController.Reset(c)
				return
			}
			commentController.Delete(c)
		})
	}
}
