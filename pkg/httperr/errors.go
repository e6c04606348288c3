package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error represents an application error carrying the HTTP status it should
// surface as.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Wrap attaches a cause to a sentinel error without mutating the sentinel.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{Code: sentinel.Code, Message: sentinel.Message, Err: err}
}

// Sentinel errors shared across the service layer. Compare with errors.Is.
var (
	ErrNotFound           = New(http.StatusNotFound, "Not found", nil)
	ErrInvalidInput       = New(http.StatusBadRequest, "Invalid input", nil)
	ErrInvalidStatus      = New(http.StatusBadRequest, "Invalid order status", nil)
	ErrPayloadTooLarge    = New(http.StatusBadRequest, "Payload too large", nil)
	ErrUnauthorized       = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid credentials", nil)
	ErrInternal           = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Is lets wrapped copies of a sentinel match the sentinel itself.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// Respond writes err as a JSON response. Application errors keep their code
// and message; anything else is logged and surfaced as a generic 500.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	zap.L().Error("Unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Message})
}
