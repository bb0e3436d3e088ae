package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consultly/config"
	"consultly/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.requestIDMiddleware())

	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		experts := api.Group("/experts")
		{
			experts.GET("/:id/availability", h.getMonthAvailability)
			experts.GET("/:id/availability/day", h.getDayAvailability)
			experts.GET("/:id/rules", h.getExpertRules)
		}

		h.initScheduleRoutes(api)
	}
}

func (h *Handler) initScheduleRoutes(api *gin.RouterGroup) {
	schedule := api.Group("/schedule", h.authMiddleware(), h.expertMiddleware())
	{
		rules := schedule.Group("/rules")
		{
			rules.GET("", h.listRules)
			rules.POST("", h.createRule)
			rules.PUT("/:id", h.updateRule)
			rules.DELETE("/:id", h.deleteRule)
		}

		exceptions := schedule.Group("/exceptions")
		{
			exceptions.GET("", h.listExceptions)
			exceptions.POST("", h.createException)
			exceptions.DELETE("/:id", h.deleteException)
		}

		schedule.PUT("/timezone", h.updateTimezone)
	}
}
