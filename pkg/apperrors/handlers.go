package apperrors

import (
	"storerate_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// HandleError - обработчик ошибок на границе HTTP.
// Клиент всегда получает тело вида {"error": "<message>"}.
// Для 5xx исходная причина логируется, наружу уходит общий текст.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr,
			"code", string(appErr.Code), "domain", appErr.Domain)
	}

	c.JSON(appErr.HTTPCode, gin.H{"error": appErr.Message})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
