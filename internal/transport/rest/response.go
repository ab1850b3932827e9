package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zapis/internal/domain"
)

type errorResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

type successResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type messageResponseType struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type conflictResponseBody struct {
	Status   string                `json:"status"`
	Message  string                `json:"message"`
	Conflict *domain.ConflictError `json:"conflict"`
}

type paginatedResponse struct {
	Data       interface{} `json:"data"`
	TotalCount int         `json:"total_count"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageResponseType{
		Status:  "success",
		Message: message,
	})
}

func paginatedSuccessResponse(c *gin.Context, data interface{}, totalCount, page, pageSize int) {
	totalPages := totalCount / pageSize
	if totalCount%pageSize > 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, paginatedResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context) {
	errorResponse(c, http.StatusUnauthorized, "требуется авторизация")
}

func forbiddenResponse(c *gin.Context, message ...string) {
	msg := "доступ запрещен"
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	errorResponse(c, http.StatusForbidden, msg)
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

func internalServerErrorResponse(c *gin.Context) {
	errorResponse(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
}

func conflictResponse(c *gin.Context, ce *domain.ConflictError) {
	c.AbortWithStatusJSON(http.StatusConflict, conflictResponseBody{
		Status:   "error",
		Message:  ce.Error(),
		Conflict: ce,
	})
}

// bookingErrorResponse переводит ошибки планирования в HTTP-статусы:
// конфликт времени — 409, нарушение инварианта расписания — 422,
// отсутствие сущности — 404, остальное — 400.
func bookingErrorResponse(c *gin.Context, err error) {
	if ce, ok := domain.IsConflict(err); ok {
		conflictResponse(c, ce)
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFoundResponse(c, "запись не найдена")
	case errors.Is(err, domain.ErrInvalidTimeFormat),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrScheduleNotConfigured):
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		badRequestResponse(c, err.Error())
	}
}
