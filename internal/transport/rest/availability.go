package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zapis/internal/domain"
)

// @Summary Сетка доступности на день
// @Description Возвращает полную сетку слотов специалиста на дату для выбранной услуги: каждый слот либо доступен, либо помечен причиной недоступности
// @Tags Доступность
// @Accept json
// @Produce json
// @Param staff_id query int true "ID специалиста"
// @Param date query string true "Дата (YYYY-MM-DD)"
// @Param service_id query int true "ID услуги"
// @Success 200 {object} domain.DayAvailability "Сетка дня"
// @Failure 400 {object} errorResponseBody "Неверные параметры запроса"
// @Failure 404 {object} errorResponseBody "Специалист или услуга не найдены"
// @Failure 422 {object} errorResponseBody "Рабочие часы специалиста не настроены"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /availability [get]
func (h *Handler) getDayAvailability(c *gin.Context) {
	staffID, err := strconv.ParseInt(c.Query("staff_id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID специалиста")
		return
	}

	serviceID, err := strconv.ParseInt(c.Query("service_id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID услуги")
		return
	}

	date := c.Query("date")
	if date == "" {
		badRequestResponse(c, "не указана дата")
		return
	}

	day, err := h.services.Availability.GetDay(c.Request.Context(), staffID, date, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, err.Error())
			return
		}
		if errors.Is(err, domain.ErrScheduleNotConfigured) {
			errorResponse(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("ошибка построения сетки доступности",
			zap.Int64("staffID", staffID),
			zap.String("date", date),
			zap.Error(err),
		)
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, day)
}
