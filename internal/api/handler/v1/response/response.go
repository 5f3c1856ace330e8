package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

// Envelope is the uniform result shape of every endpoint. Presentation code
// relies on this contract only; handlers never propagate panics or raw
// errors.
type Envelope struct {
	Success     bool              `json:"success"`
	Data        interface{}       `json:"data,omitempty"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// Err is a renderable error with an HTTP status.
type Err struct {
	StatusCode  int               `json:"-"`
	Message     string            `json:"error"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

func (e *Err) Error() string {
	return e.Message
}

func RenderOK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func RenderCreated(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.JSON(err.StatusCode, Envelope{
		Success:     false,
		Error:       err.Message,
		FieldErrors: err.FieldErrors,
	})
}

// ErrBadRequest turns validation failures into a field-level error map.
// ozzo validation errors carry one message per field.
func ErrBadRequest(err error) *Err {
	e := &Err{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid request",
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		e.FieldErrors = make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			e.FieldErrors[field] = fieldErr.Error()
		}
	} else if err != nil {
		e.Message = err.Error()
	}

	return e
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%v not found (%v = %v)", resource, key, value),
	}
}

func ErrUnauthorized(reason string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    reason,
	}
}

func ErrPermissionDenied(err error) *Err {
	zap.L().Warn("permission denied", zap.Error(err))

	return &Err{
		StatusCode: http.StatusForbidden,
		Message:    "permission denied",
	}
}

// ErrInternalServerError logs the detailed error server-side and surfaces a
// generic message only.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "something went wrong",
	}
}
