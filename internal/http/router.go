package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"touradmin/internal/cache"
	intconfig "touradmin/internal/config"
	"touradmin/internal/domain/models"
	h "touradmin/internal/http/handlers"
	"touradmin/internal/http/middleware"
	"touradmin/internal/queue"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env, cache.New(intconfig.NewRedisClient()), &queue.Publisher{URL: env.RabbitURL})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"status": h.StatusNotFound,
			"errors": gin.H{"details": "không tìm thấy đường dẫn " + c.Request.URL.Path},
		})
	})

	r.Static("/uploads", env.UploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Everything below requires a session.
		protected := api.Group("")
		protected.Use(middleware.JWTAuth(env.JWTSecret))
		admin := middleware.RequireRoles(models.RoleAdmin)

		// Categories
		categories := protected.Group("/categories")
		categories.GET("", h.GetCategories)
		categories.GET("/options", h.GetCategoryOptions)
		categories.GET("/:id", h.GetCategoryByID)
		categories.POST("", admin, h.CreateCategory)
		categories.PUT("/:id", admin, h.UpdateCategory)
		categories.DELETE("/:id", admin, h.DeleteCategory)

		// Scopes
		scopes := protected.Group("/scopes")
		scopes.GET("", h.GetScopes)
		scopes.GET("/options", h.GetScopeOptions)
		scopes.GET("/:id", h.GetScopeByID)
		scopes.POST("", admin, h.CreateScope)
		scopes.PUT("/:id", admin, h.UpdateScope)
		scopes.DELETE("/:id", admin, h.DeleteScope)

		// Costumes
		costumes := protected.Group("/costumes")
		costumes.GET("", h.GetCostumes)
		costumes.GET("/:id", h.GetCostumeByID)
		costumes.POST("", admin, h.CreateCostume)
		costumes.PUT("/:id", admin, h.UpdateCostume)
		costumes.DELETE("/:id", admin, h.DeleteCostume)

		// Users (admin management)
		users := protected.Group("/users", admin)
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		// Own profile
		profile := protected.Group("/profile")
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.PUT("/password", h.ChangePassword)

		// Attachments (any authenticated user; avatars use it too)
		protected.POST("/attachments", h.UploadAttachment)

		// Reports
		reports := protected.Group("/reports", admin)
		reports.GET("/costumes", h.GetCostumeCataloguePDF)
	}

	return r
}
