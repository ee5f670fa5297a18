package middleware

import (
	"log/slog"
	"net/http"

	"columbus/config"
	"columbus/internal/delivery/api/response"
	deliverycontext "columbus/internal/delivery/context"
	domainerrors "columbus/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
	cfg    *config.Config
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		cfg:    cfg,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every failure is
// mapped onto one taxonomy kind; the error object is redacted in production.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr, details := m.classify(err)

	if appErr.HTTPCode() >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
		)
	}

	var info *response.ErrorInfo
	if !m.cfg.IsProduction() {
		info = &response.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: details,
		}
	}

	_ = response.Error(c, appErr.HTTPCode(), appErr.Message(), info)
}

func (m *ErrorMiddleware) classify(err error) (domainerrors.AppError, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()
		if details == "" && appErr.HTTPCode() >= http.StatusInternalServerError {
			details = err.Error()
		}

		return appErr, details
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fromHTTPError(httpErr), httpErrorDetails(httpErr)
	}

	return domainerrors.ErrUnexpected, err.Error()
}

// fromHTTPError maps errors raised by echo itself (routing, binding, body limit).
func fromHTTPError(httpErr *echo.HTTPError) domainerrors.AppError {
	switch httpErr.Code {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return domainerrors.ErrValidation.WithMessage("Malformed request")
	case http.StatusRequestEntityTooLarge:
		return domainerrors.ErrValidation.WithMessage("Request body too large")
	case http.StatusUnauthorized:
		return domainerrors.ErrAuth
	case http.StatusForbidden:
		return domainerrors.ErrForbidden
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.WithMessage("Route not found")
	case http.StatusMethodNotAllowed:
		return domainerrors.ErrNotFound.WithMessage("Method not allowed on this route")
	case http.StatusTooManyRequests:
		return domainerrors.ErrRateLimited
	default:
		return domainerrors.ErrUnexpected
	}
}

func httpErrorDetails(httpErr *echo.HTTPError) string {
	if httpErr.Internal != nil {
		return httpErr.Internal.Error()
	}
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}

	return ""
}
