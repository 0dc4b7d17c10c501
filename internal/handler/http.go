package handler

import (
	"origo-server/internal/repository"
	"origo-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeneratorHandler exposes the generation and project lifecycle endpoints.
type GeneratorHandler struct {
	generator service.GeneratorService
	archive   service.ArchiveService
	logger    *zap.Logger
}

func NewGeneratorHandler(generator service.GeneratorService, archive service.ArchiveService, logger *zap.Logger) *GeneratorHandler {
	return &GeneratorHandler{
		generator: generator,
		archive:   archive,
		logger:    logger.Named("GeneratorHandler"),
	}
}

// RegisterRoutes mounts all endpoints. rateLimiter guards the synthesis
// endpoints only; reads and downloads stay unthrottled.
func (h *GeneratorHandler) RegisterRoutes(router *gin.Engine, rateLimiter gin.HandlerFunc) {
	generateGroup := router.Group("/generate")
	if rateLimiter != nil {
		generateGroup.Use(rateLimiter)
	}
	{
		generateGroup.POST("", h.generateProject)
		generateGroup.POST("/component", h.generateComponent)
		generateGroup.POST("/preview", h.generatePreview)
	}

	projectGroup := router.Group("/projects")
	{
		projectGroup.GET("", h.listProjects)
		projectGroup.GET("/:project_id", h.getProject)
		projectGroup.DELETE("/:project_id", h.deleteProject)
		projectGroup.GET("/:project_id/download", h.downloadProject)
	}

	router.POST("/admin/cleanup", h.cleanup)
}

// ItemHandler exposes the simple item CRUD endpoints.
type ItemHandler struct {
	items  repository.ItemRepository
	logger *zap.Logger
}

func NewItemHandler(items repository.ItemRepository, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{items: items, logger: logger.Named("ItemHandler")}
}

func (h *ItemHandler) RegisterRoutes(router *gin.Engine) {
	itemGroup := router.Group("/api/items")
	{
		itemGroup.POST("", h.createItem)
		itemGroup.GET("", h.listItems)
		itemGroup.GET("/:item_id", h.getItem)
		itemGroup.PUT("/:item_id", h.updateItem)
		itemGroup.DELETE("/:item_id", h.deleteItem)
	}
}
