package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zapis/config"
	"zapis/internal/service"
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
		api.GET("/availability", h.getDayAvailability)

		appointments := api.Group("/appointments")
		appointments.Use(h.authMiddleware())
		{
			appointments.POST("/", h.createAppointment)
			appointments.POST("/validate", h.validateBooking)
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PUT("/:id", h.updateAppointment)
			appointments.DELETE("/:id", h.cancelAppointment)
		}

		staff := api.Group("/staff")
		{
			staff.GET("/", h.getStaffList)
			staff.GET("/:id", h.getStaffByID)
			staff.GET("/:id/calendar", h.getStaffCalendar)

			auth := staff.Group("/", h.authMiddleware())
			{
				auth.PUT("/:id/calendar", h.staffMiddleware(), h.upsertStaffCalendar)

				admin := auth.Group("/", h.adminMiddleware())
				{
					admin.POST("/", h.createStaff)
					admin.PUT("/:id", h.updateStaff)
				}
			}
		}

		services := api.Group("/services")
		{
			services.GET("/", h.getServices)
			services.GET("/:id", h.getServiceByID)

			admin := services.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createService)
				admin.PUT("/:id", h.updateService)
				admin.DELETE("/:id", h.deleteService)
			}
		}
	}
}
