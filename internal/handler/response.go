package handler

import (
	"net/http"

	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Response is the envelope every endpoint answers with. Data is null on
// failure; Errors carries human-readable messages for validation failures.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Errors  []string    `json:"errors"`
}

// OK writes a success envelope with the given status code.
func OK(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
		Errors:  []string{},
	})
}

// APIError is a request-scoped application error carrying the HTTP status and
// the messages shown to the caller. Handlers return it as a plain error; the
// central HTTPErrorHandler shapes it into the envelope.
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError builds an APIError. With no explicit error messages the main
// message is repeated in the errors list so it is never empty.
func NewAPIError(status int, message string, errs ...string) *APIError {
	if len(errs) == 0 {
		errs = []string{message}
	}
	return &APIError{Status: status, Message: message, Errors: errs}
}

// ErrValidation shapes a 400 from a list of validation messages.
func ErrValidation(errs []string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Validation failed", Errors: errs}
}

// ErrNotFound shapes a 404.
func ErrNotFound(message string) *APIError {
	return NewAPIError(http.StatusNotFound, message)
}

// HTTPErrorHandler is the centralized echo error handler. Every error path
// ends in the same envelope shape with data null.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := logger.FromEcho(c)

	status := http.StatusInternalServerError
	message := "Internal server error"
	errs := []string{}

	switch e := err.(type) {
	case *APIError:
		status = e.Status
		message = e.Message
		errs = e.Errors
	case *echo.HTTPError:
		status = e.Code
		if m, ok := e.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(e.Code)
		}
	default:
		message = err.Error()
	}

	if len(errs) == 0 {
		errs = []string{message}
	}

	if status >= http.StatusInternalServerError {
		log.Error("Request failed",
			zap.Int("status", status),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err))
	} else {
		log.Warn("Request rejected",
			zap.Int("status", status),
			zap.String("path", c.Request().URL.Path),
			zap.String("message", message))
	}

	_ = c.JSON(status, Response{
		Success: false,
		Message: message,
		Data:    nil,
		Errors:  errs,
	})
}
