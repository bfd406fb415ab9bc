package handlers

import (
	"gallery_users/internal/logger"
	"gallery_users/internal/repository"
	"gallery_users/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api/user")
	{
		// Public auth endpoints
		api.POST("/register", h.register)
		api.POST("/login", h.login)

		// Protected personalization endpoints
		protected := api.Group("", h.authClaimMiddleware)
		{
			h.registerCollectionRoutes(protected, "/favourites", repository.KindFavourites)
			h.registerCollectionRoutes(protected, "/history", repository.KindHistory)

			// Live collections feed (HTTP upgrade) on the same port
			protected.GET("/ws", h.wsConnect)
		}
	}

	return router
}

// registerCollectionRoutes wires the list/add/remove trio for one collection.
// Mutations take the item id from the path.
func (h *Handler) registerCollectionRoutes(g *gin.RouterGroup, path, kind string) {
	g.GET(path, h.listCollection(kind))
	g.PUT(path+"/:id", h.addToCollection(kind))
	g.DELETE(path+"/:id", h.removeFromCollection(kind))
}
