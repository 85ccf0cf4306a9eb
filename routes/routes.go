package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"worklane/handlers"
	"worklane/middleware"
)

// RegisterSchedulingRoutes registers the proposal engine endpoints. All of
// them are internal service-to-service calls and require a service token.
func RegisterSchedulingRoutes(r *gin.Engine) {
	api := r.Group("/api/scheduling")
	{
		api.Use(middleware.ServiceAuthMiddleware())
		api.POST("/earliest", handlers.GetEarliestBookableDate)
		api.POST("/proposals", handlers.ComputeScheduleProposals)
		api.POST("/validate", handlers.ValidateSelection)
		api.GET("/session/:sessionID", handlers.GetProposalSession)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthCheck)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSchedulingRoutes(r)
	RegisterHealthRoute(r)
}
