package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-course-advisor-backend/internal/delivery/http/response"
	"go-course-advisor-backend/pkg/apperror"
	"go-course-advisor-backend/pkg/logger"
)

// ErrorHandler drains errors appended to the gin context into the uniform
// response envelope, carrying the error kind in the payload. Untyped errors
// are logged server-side and reported as internal.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			logger.Log.Error("Unhandled request error", "path", c.FullPath(), "error", err)
			appErr = apperror.Internal(err)
		}
		response.Error(c, appErr.Code, appErr.Message, response.ErrorDetail{Kind: appErr.Kind})
	}
}
