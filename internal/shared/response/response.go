package response

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// ValidationFailed render field-level errors: details là map field -> message
func ValidationFailed(c *gin.Context, fieldErrors interface{}) {
	c.JSON(400, Response{
		Success: false,
		Error: &Error{
			Code:    "VALIDATION_ERROR",
			Message: "one or more fields are invalid",
			Details: fieldErrors,
		},
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, 400, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, 401, "UNAUTHORIZED", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, 404, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, 500, "INTERNAL_SERVER_ERROR", message)
}

// LoginRedirect là redirect-style signal cho authorization failure
// Location mang original resource để caller quay lại sau khi login
func LoginRedirect(c *gin.Context, location string) {
	c.Header("Location", location)
	c.JSON(302, Response{
		Success: false,
		Error: &Error{
			Code:    "LOGIN_REQUIRED",
			Message: "authentication required",
			Details: gin.H{"redirect": location},
		},
	})
}
