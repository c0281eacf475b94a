package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-playground/validator/v10"
)

// Error codes shared by every handler.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidQuery    = "INVALID_QUERY"
	CodeValidationError = "VALIDATION_ERROR"
	CodeInvalidID       = "INVALID_ID"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// ErrorBody is the envelope for every non-2xx response.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   *Error `json:"error"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Items wraps list results as {"items": [...]}.
type Items[T any] struct {
	Items []T `json:"items"`
}

// Updated is the body of a partial update endpoint.
type Updated struct {
	Updated int64 `json:"updated"`
}

// Success writes data as-is. Success bodies are not enveloped.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// List writes {"items": items}, never null.
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, Items[T]{Items: items})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorBody{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, ErrorBody{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Common error responses
func BadRequest(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// InternalServerError echoes the failure message to the caller.
func InternalServerError(c *gin.Context, err error) {
	ErrorResponse(c, http.StatusInternalServerError, CodeInternalError, err.Error())
}

// ValidationFailed writes a 400 with one entry per offending field.
func ValidationFailed(c *gin.Context, err error) {
	ErrorWithDetails(c, http.StatusBadRequest, CodeValidationError, "Validation failed", ValidationDetails(err))
}

// ValidationDetails flattens ozzo-validation and validator/v10 errors into field -> message.
// Returns nil for any other error.
func ValidationDetails(err error) map[string]string {
	var ozzoErrs validation.Errors
	if errors.As(err, &ozzoErrs) {
		details := make(map[string]string, len(ozzoErrs))
		for field, fieldErr := range ozzoErrs {
			details[field] = fieldErr.Error()
		}
		return details
	}

	var bindErrs validator.ValidationErrors
	if errors.As(err, &bindErrs) {
		details := make(map[string]string, len(bindErrs))
		for _, fe := range bindErrs {
			details[snakeCase(fe.Field())] = describeTag(fe)
		}
		return details
	}

	return nil
}

// IsValidation reports whether err carries per-field validation details.
func IsValidation(err error) bool {
	var ozzoErrs validation.Errors
	var bindErrs validator.ValidationErrors
	return errors.As(err, &ozzoErrs) || errors.As(err, &bindErrs)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// InvalidRequest writes a 400 for a body that could not be decoded.
func InvalidRequest(c *gin.Context, err error) {
	ErrorResponse(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request body: "+err.Error())
}

// InvalidQuery writes a 400 for query parameters that failed binding.
func InvalidQuery(c *gin.Context, err error) {
	if details := ValidationDetails(err); details != nil {
		ErrorWithDetails(c, http.StatusBadRequest, CodeInvalidQuery, "Invalid query parameters", details)
		return
	}
	ErrorResponse(c, http.StatusBadRequest, CodeInvalidQuery, "Invalid query parameters: "+err.Error())
}
