package response

import (
	"errors"
	"net/http"

	xerrors "workshop-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response format.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string, err error) {
	c.Abort()

	response := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		response.Error = err.Error()
	}

	c.JSON(code, response)
}

// FromError maps the error taxonomy onto HTTP statuses. Rejected lifecycle
// events and ambiguous plate matches are conflicts; validation failures are
// bad requests; everything unrecognized is an unsaved server-side failure.
func FromError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound), errors.Is(err, xerrors.ErrRecordNotFound):
		Error(c, http.StatusNotFound, message, err)
	case errors.Is(err, xerrors.ErrInvalidTransition), errors.Is(err, xerrors.ErrAmbiguousMatch), errors.Is(err, xerrors.ErrConflict):
		Error(c, http.StatusConflict, message, err)
	case errors.Is(err, xerrors.ErrInvalidAmount), errors.Is(err, xerrors.ErrInvalidInput), errors.Is(err, xerrors.ErrBadRequest):
		Error(c, http.StatusBadRequest, message, err)
	default:
		Error(c, http.StatusInternalServerError, message, err)
	}
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}
