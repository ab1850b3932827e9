package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zapis/internal/domain"
)

// @Summary Создать запись
// @Description Создает новую запись к специалисту; время проверяется на конфликты с расписанием и другими записями
// @Tags Записи
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Данные для записи"
// @Success 201 {object} map[string]interface{} "ID созданной записи"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 409 {object} conflictResponseBody "Выбранное время занято"
// @Failure 422 {object} errorResponseBody "Нарушение инварианта расписания"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("ошибка получения ID пользователя", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Booking.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Warn("запись не создана", zap.Int64("userID", userID), zap.Error(err))
		bookingErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Проверить время без бронирования
// @Description Сухая проверка: свободно ли запрошенное время у специалиста и клиента. Ничего не создает
// @Tags Записи
// @Accept json
// @Produce json
// @Param input body domain.ValidateBookingDTO true "Проверяемое время"
// @Success 200 {object} messageResponseType "Время свободно"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 409 {object} conflictResponseBody "Время занято, в ответе — с чем пересекается"
// @Failure 422 {object} errorResponseBody "Нарушение инварианта расписания"
// @Security ApiKeyAuth
// @Router /appointments/validate [post]
func (h *Handler) validateBooking(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("ошибка получения ID пользователя", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	var req domain.ValidateBookingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Booking.Validate(c.Request.Context(), userID, req); err != nil {
		bookingErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "время свободно")
}

// @Summary Получить запись по ID
// @Description Возвращает запись; доступна клиенту записи, её специалисту и администратору
// @Tags Записи
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} domain.Appointment "Данные записи"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	appointment, ok := h.loadOwnedAppointment(c)
	if !ok {
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Обновить запись
// @Description Переносит запись на другое время, услугу или специалиста и/или меняет статус; новое время проверяется на конфликты, прежнее время записи конфликтом не считается
// @Tags Записи
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Param input body domain.UpdateAppointmentDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType "Сообщение об успешном обновлении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 409 {object} conflictResponseBody "Новое время занято"
// @Failure 422 {object} errorResponseBody "Нарушение инварианта расписания"
// @Security ApiKeyAuth
// @Router /appointments/{id} [put]
func (h *Handler) updateAppointment(c *gin.Context) {
	appointment, ok := h.loadOwnedAppointment(c)
	if !ok {
		return
	}

	var req domain.UpdateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Booking.Update(c.Request.Context(), appointment.ID, req); err != nil {
		h.logger.Warn("запись не обновлена", zap.Int64("id", appointment.ID), zap.Error(err))
		bookingErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "запись успешно обновлена")
}

// @Summary Отменить запись
// @Description Отменяет запись, её время сразу освобождается для новых бронирований
// @Tags Записи
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} messageResponseType "Сообщение об успешной отмене"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Security ApiKeyAuth
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	appointment, ok := h.loadOwnedAppointment(c)
	if !ok {
		return
	}

	if err := h.services.Booking.Cancel(c.Request.Context(), appointment.ID); err != nil {
		h.logger.Error("ошибка отмены записи", zap.Int64("id", appointment.ID), zap.Error(err))
		bookingErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "запись успешно отменена")
}

// @Summary Список записей
// @Description Возвращает записи с фильтрацией и пагинацией; клиент видит свои записи, сотрудник — записи к себе, администратор — любые
// @Tags Записи
// @Accept json
// @Produce json
// @Param limit query int false "Лимит записей на странице (по умолчанию 20)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Param client_id query int false "ID клиента (только для админов)"
// @Param staff_id query int false "ID специалиста"
// @Param status query string false "Статус записи"
// @Param start_date query string false "Начальная дата (YYYY-MM-DD)"
// @Param end_date query string false "Конечная дата (YYYY-MM-DD)"
// @Success 200 {object} paginatedResponse "Список записей с пагинацией"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("ошибка получения ID пользователя", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.AppointmentFilter{
		Limit:  limit,
		Offset: offset,
	}

	userRole, _ := getUserRole(c)

	if clientIDStr := c.Query("client_id"); clientIDStr != "" && userRole == domain.UserRoleAdmin {
		clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
		if err == nil {
			filter.ClientID = &clientID
		}
	}

	if staffIDStr := c.Query("staff_id"); staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err == nil {
			filter.StaffID = &staffID
		}
	}

	// Без явного фильтра каждый видит только свой срез.
	if filter.ClientID == nil && filter.StaffID == nil && userRole != domain.UserRoleAdmin {
		staff, err := h.services.Staff.GetByUserID(c.Request.Context(), userID)
		if err == nil && staff != nil {
			filter.StaffID = &staff.ID
		} else {
			filter.ClientID = &userID
		}
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.AppointmentStatus(statusStr)
		filter.Status = &status
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err == nil {
			filter.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err == nil {
			filter.EndDate = &endDate
		}
	}

	appointments, total, err := h.services.Booking.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка записей", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, appointments, total, page, limit)
}

// loadOwnedAppointment читает запись из пути и проверяет право доступа:
// клиент записи, её специалист или администратор.
func (h *Handler) loadOwnedAppointment(c *gin.Context) (*domain.Appointment, bool) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("ошибка получения ID пользователя", zap.Error(err))
		unauthorizedResponse(c)
		return nil, false
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return nil, false
	}

	appointment, err := h.services.Booking.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("запись не найдена", zap.Int64("id", id), zap.Error(err))
		notFoundResponse(c, "запись не найдена")
		return nil, false
	}

	userRole, _ := getUserRole(c)
	if userRole == domain.UserRoleAdmin || appointment.ClientID == userID {
		return appointment, true
	}

	staff, err := h.services.Staff.GetByUserID(c.Request.Context(), userID)
	if err == nil && staff != nil && staff.ID == appointment.StaffID {
		return appointment, true
	}

	h.logger.Warn("попытка несанкционированного доступа к записи",
		zap.Int64("userID", userID),
		zap.Int64("appointmentID", id),
	)
	forbiddenResponse(c)
	return nil, false
}
