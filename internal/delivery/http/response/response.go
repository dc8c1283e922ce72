// Package response writes the JSON bodies returned by the HTTP delivery.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes data as the response body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 response.
func OK(c echo.Context, data any) error {
	return JSON(c, http.StatusOK, data)
}

// Created writes a 201 response.
func Created(c echo.Context, data any) error {
	return JSON(c, http.StatusCreated, data)
}

// Error writes {"error": message}. An empty message falls back to the status text.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}
