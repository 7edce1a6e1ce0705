// Package response renders the JSON envelopes shared by every API route.
package response

import (
	"net/http"

	deliverycontext "usermgmt/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope for successful calls. Only the fields relevant to a
// route are populated.
type SuccessResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Token      string          `json:"token,omitempty"`
	User       *UserView       `json:"user,omitempty"`
	Count      *int            `json:"count,omitempty"`
	Pagination *PaginationView `json:"pagination,omitempty"`
	Data       any             `json:"data,omitempty"`
	Meta       *MetaInfo       `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// PageRefView describes a neighbouring page.
type PageRefView struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PaginationView carries the optional neighbouring pages. An empty object means a single page.
type PaginationView struct {
	Next *PageRefView `json:"next,omitempty"`
	Prev *PageRefView `json:"prev,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns {success, data}.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta(c),
	})
}

// Message returns {success, message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Message: message,
		Meta:    meta(c),
	})
}

// Authenticated returns {success, token, user} after signup or login.
func Authenticated(c echo.Context, statusCode int, token string, user *UserView) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Token:   token,
		User:    user,
		Meta:    meta(c),
	})
}

// List returns {success, count, data} and, when given, pagination.
func List(c echo.Context, data any, count int, pagination *PaginationView) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Success:    true,
		Count:      &count,
		Pagination: pagination,
		Data:       data,
		Meta:       meta(c),
	})
}

// Error returns an error response. Details are dropped for 401, 403 and 5xx.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: meta(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
