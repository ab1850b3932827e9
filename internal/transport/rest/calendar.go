package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zapis/internal/domain"
)

// @Summary Недельный календарь специалиста
// @Description Возвращает недельный шаблон работы: рабочие дни, часы и обеденный перерыв
// @Tags Календарь
// @Accept json
// @Produce json
// @Param id path int true "ID специалиста"
// @Success 200 {object} domain.WorkCalendar "Календарь специалиста"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Календарь не настроен"
// @Router /staff/{id}/calendar [get]
func (h *Handler) getStaffCalendar(c *gin.Context) {
	staffID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	calendar, err := h.services.Calendar.GetByStaffID(c.Request.Context(), staffID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "календарь специалиста не настроен")
			return
		}
		h.logger.Error("ошибка получения календаря", zap.Int64("staffID", staffID), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, calendar)
}

// @Summary Задать календарь специалиста
// @Description Создает или целиком заменяет недельный шаблон работы специалиста. Специалист меняет только свой календарь, администратор — любой
// @Tags Календарь
// @Accept json
// @Produce json
// @Param id path int true "ID специалиста"
// @Param input body domain.UpsertWorkCalendarDTO true "Рабочие дни, часы и обед"
// @Success 200 {object} messageResponseType "Календарь сохранен"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Чужой календарь"
// @Failure 422 {object} errorResponseBody "Несогласованные рабочие часы"
// @Security ApiKeyAuth
// @Router /staff/{id}/calendar [put]
func (h *Handler) upsertStaffCalendar(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("ошибка получения ID пользователя", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	staffID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	userRole, _ := getUserRole(c)
	if userRole != domain.UserRoleAdmin {
		staff, err := h.services.Staff.GetByUserID(c.Request.Context(), userID)
		if err != nil || staff == nil || staff.ID != staffID {
			h.logger.Warn("попытка изменить чужой календарь",
				zap.Int64("userID", userID),
				zap.Int64("staffID", staffID),
			)
			forbiddenResponse(c, "можно менять только свой календарь")
			return
		}
	}

	var req domain.UpsertWorkCalendarDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Calendar.Upsert(c.Request.Context(), staffID, req); err != nil {
		h.logger.Warn("календарь не сохранен", zap.Int64("staffID", staffID), zap.Error(err))
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "специалист не найден")
			return
		}
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "календарь сохранен")
}
