package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-backend/internal/apperr"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Redirect string      `json:"redirect,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}

// RedirectResponse reports a successful action together with the page the
// caller should move to next.
func RedirectResponse(c *gin.Context, code int, message, redirect string, data interface{}) {
	c.JSON(code, Response{
		Success:  true,
		Message:  message,
		Redirect: redirect,
		Data:     data,
	})
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case apperr.CodeValidation, apperr.CodeAuthFailure:
		return http.StatusForbidden
	case apperr.CodeConflict:
		return http.StatusConflict
	case apperr.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperr.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse writes err as a failure envelope carrying its public message.
func ErrorResponse(c *gin.Context, err error) {
	code := apperr.CodeOf(err)
	APIResponse(c, StatusFor(code), false, apperr.PublicMessage(err, "Oops! An error occurred!"), nil)
}
