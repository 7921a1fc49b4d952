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

	r.GET("/api/health", handlers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/login", handlers.LoginUser)
	}

	users := r.Group("/users")
	{
		users.POST("", handlers.CreateUser)
		users.GET("/:id", handlers.GetUser)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", handlers.ListPosts)
		posts.GET("/:id", handlers.GetPost)
		posts.POST("", middleware.AuthMiddleware(), handlers.CreatePost)
		posts.PATCH("/:id", middleware.AuthMiddleware(), handlers.UpdatePost)
		posts.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeletePost)
	}

	r.POST("/vote", middleware.AuthMiddleware(), handlers.CastVote)

	return r
}
