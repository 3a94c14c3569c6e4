package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/inkwell-dev/inkwell/internal/handlers"
	"github.com/inkwell-dev/inkwell/internal/middleware"
	"github.com/inkwell-dev/inkwell/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.RequireAuth(), handlers.Me)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", handlers.ListPosts)
			posts.GET("/:post_id", handlers.GetPost)

			authed := posts.Group("", middleware.RequireAuth())
			{
				authed.POST("", handlers.CreatePost)
				authed.POST("/:post_id/comments", handlers.CreateComment)

				admin := authed.Group("", middleware.RequireAdmin())
				{
					admin.PUT("/:post_id", handlers.UpdatePost)
					admin.DELETE("/:post_id", handlers.DeletePost)
					admin.DELETE("/:post_id/comments/:comment_id", handlers.DeleteComment)
				}
			}
		}
	}

	return r
}
