package routes

import (
	"net/http"
	"time"

	"postpilot/handlers"
	"postpilot/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.DELETE("/revoke", hb.RevokeUserTokenHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
		api.PUT("/linkedin", hb.ConnectLinkedInHandler)
	}
}

// RegisterScheduleRoutes registers the recurring schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/time-options", hb.TimeOptionsHandler)
		api.GET("/quick-picks", hb.QuickPicksHandler)
		api.GET("/:profileID", hb.GetScheduleHandler)
		api.PUT("/:profileID", hb.SaveScheduleHandler)
	}
}

// RegisterPostRoutes registers the post lifecycle endpoints.
func RegisterPostRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/posts")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateDraftHandler)
		api.GET("/profile/:profileID", hb.ListPostsHandler)
		api.PUT("/:postID", hb.UpdateDraftHandler)
		api.DELETE("/:postID", hb.DeletePostHandler)
		api.POST("/:postID/publish", hb.PublishNowHandler)
		api.POST("/:postID/schedule", hb.SchedulePostHandler)
		api.POST("/:postID/queue", hb.QueuePostHandler)
	}
}

// RegisterAIRoutes registers AI composer endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/compose", hb.AIComposeHandler)
		api.DELETE("/context", hb.AIResetHandler)
	}
}

// RegisterBillingRoutes registers subscription endpoints.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/billing")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/checkout", hb.CheckoutHandler)
		api.POST("/activate", hb.ActivatePlanHandler)
	}
}

// RegisterStorageRoutes registers media upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/media")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/upload", hb.UploadImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm PostPilot"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterPostRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterBillingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
