package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storekeep/internal/core/apperror"
	appctx "storekeep/internal/core/context"
	"storekeep/internal/infrastructure/http/v1/dto"
	"storekeep/pkg/logger"
)

// ErrorHandler renders the last error registered by a handler as JSON.
// Internal causes are logged and never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ctx := c.Request.Context()
		err := c.Errors.Last().Err

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				logger.Error(ctx, "request failed",
					"code", appErr.Code,
					"message", appErr.Message,
					"cause", appErr.Err,
				)
			} else if appErr.Err != nil {
				logger.Warn(ctx, "request rejected",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			c.JSON(appErr.HTTPStatus, dto.ErrorResponse{
				Code:    appErr.Code,
				Message: appErr.Message,
				Details: appErr.Details,
			})
			return
		}

		logger.Error(ctx, "unhandled error", "error", err)

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    apperror.CodeInternal,
			Message: "Internal server error",
			Details: map[string]any{
				"request_id": appctx.GetRequestID(ctx),
			},
		})
	}
}
