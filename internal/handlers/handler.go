package handlers

import (
	"roomsign/internal/logger"
	"roomsign/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "roomsign/docs"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
//
// The display endpoints are deliberately unauthenticated: the signs poll them
// from firmware that holds no credentials beyond Wi-Fi. Only the admin
// configuration surface sits behind JWT.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Live preview stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		// Polled by the signs; no auth (see InitRoutes).
		api.GET("/display", h.getDisplay)
		api.GET("/resources", h.listPublicResources)

		admin := api.Group("/admin", h.userIdMiddleware)
		{
			h.registerResourceRoutes(admin)
		}
	}
}

func (h *Handler) registerResourceRoutes(admin *gin.RouterGroup) {
	resources := admin.Group("/resources")
	{
		resources.GET("", h.listResources)
		resources.POST("", h.createResource)
		resources.GET("/:id", h.getResource)
		resources.PUT("/:id", h.updateResource)
		resources.DELETE("/:id", h.deleteResource)
	}
}
