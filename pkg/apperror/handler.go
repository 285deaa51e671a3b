package apperror

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venskie03/fokus/pkg/logger"
)

// HTTPErrorHandler returns an Echo error handler rendering the {"error": "..."} envelope.
// It is used by both the production server and handler tests.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := ToHTTPError(err)

		// 5xx are logged with their cause, which never reaches the response
		if code >= http.StatusInternalServerError {
			log.Error("request error",
				slog.Int("status", code),
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				logger.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
		} else {
			_ = c.JSON(code, body)
		}
	}
}
