package httpx

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ResponseHandler renders decision outcomes and results as JSON
// envelopes. Browser-facing redirects live in browser.go; handlers pick
// one or the other based on WantsJSON.
type ResponseHandler struct {
	logger Logger
}

// NewResponseHandler creates a ResponseHandler.
func NewResponseHandler(logger Logger) *ResponseHandler {
	return &ResponseHandler{logger: logger}
}

// Success sends a 200 response with optional data and message.
func (h *ResponseHandler) Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// Created sends a 201 response with data.
func (h *ResponseHandler) Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// ValidationError sends a 400 for a rejected input field.
func (h *ResponseHandler) ValidationError(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error:   &Error{Code: CodeValidation, Message: message, Field: field},
	})
}

// NotFound sends a 404.
func (h *ResponseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Error:   &Error{Code: CodeNotFound, Message: message},
	})
}

// Conflict sends a 409 for a duplicate unique field.
func (h *ResponseHandler) Conflict(c *gin.Context, field, message string) {
	c.JSON(http.StatusConflict, Response{
		Success: false,
		Error:   &Error{Code: CodeConflict, Message: message, Field: field},
	})
}

// Unauthorized sends a 401 auth-required outcome.
func (h *ResponseHandler) Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Response{
		Success: false,
		Error:   &Error{Code: CodeUnauthorized, Message: message},
	})
}

// CsrfInvalid sends a 403 for a missing or mismatched CSRF token.
func (h *ResponseHandler) CsrfInvalid(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Response{
		Success: false,
		Error:   &Error{Code: CodeCsrfInvalid, Message: message},
	})
}

// TooManyRequests sends a 429 with a Retry-After hint. Rejection is an
// expected outcome; nothing is logged as an error.
func (h *ResponseHandler) TooManyRequests(c *gin.Context, retryAfter time.Duration) {
	seconds := int(retryAfter/time.Second) + 1
	c.Header("Retry-After", fmt.Sprintf("%d", seconds))
	c.JSON(http.StatusTooManyRequests, Response{
		Success: false,
		Error:   &Error{Code: CodeRateLimited, Message: "Too many requests"},
	})
}

// InternalError sends a 500 and logs the cause.
func (h *ResponseHandler) InternalError(c *gin.Context, message string, err error) {
	if err != nil {
		h.logger.LogError(err, message)
	}
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error:   &Error{Code: CodeInternal, Message: message},
	})
}
