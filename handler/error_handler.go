package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/extractkit/extractor"
	"github.com/dmitrymomot/extractkit/pkg/logger"
	"github.com/dmitrymomot/extractkit/pkg/requestid"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// formatValidationErrors creates a comprehensive message from validation errors
func formatValidationErrors(validationErr ValidationError) string {
	var messages []string
	for field, fieldMessages := range validationErr {
		for _, msg := range fieldMessages {
			messages = append(messages, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	if len(messages) == 0 {
		return "Validation failed"
	}
	return strings.Join(messages, "; ")
}

// classifyError analyzes the error and returns structured error information
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	var rej *extractor.Rejection
	if errors.As(err, &rej) {
		info.StatusCode = rej.HTTPStatus()
		info.Message = rej.Error()
	}

	// Validation errors override everything else
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = formatValidationErrors(validationErr)
	}

	info.LogLevel = determineLogLevel(info.StatusCode)

	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	requestID := requestid.FromContext(ctx.Request().Context())

	log.LogAttrs(ctx.Request().Context(), info.LogLevel, "request error",
		logger.RequestID(requestID),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Request().URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates an error handler that logs every failure through
// the given slog logger and renders structured JSON error responses.
// Rejections with a configured response (route-scoped OnRejection or
// type-scoped RejectionMapper) render it unchanged.
// Configure once in main.go and pass to all wrapped handlers.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		var rej *extractor.Rejection
		if errors.As(err, &rej) && rej.Response != nil {
			if renderErr := rej.Response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
				log.Error("failed to render rejection response",
					logger.RequestID(requestid.FromContext(ctx.Request().Context())),
					logger.Error(renderErr),
					logger.Component("error_handler"),
				)
			}
			return
		}

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(ctx.Request().Context())),
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
			http.Error(ctx.ResponseWriter(), "Internal Server Error", http.StatusInternalServerError)
		}
	}
}
