// Package response renders the uniform JSON envelope of the planner API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo is only attached outside production.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "VALIDATION_ERROR"
	Details string `json:"details,omitempty"` // Underlying cause
}

// Success writes a successful envelope
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// OK writes a 200 envelope
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Created writes a 201 envelope
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error writes a failed envelope. A nil info omits the error object.
func Error(c echo.Context, statusCode int, message string, info *ErrorInfo) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error:   info,
	})
}
