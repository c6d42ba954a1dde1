package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-user-api-starter/internal/apperror"
)

// ErrorBody is the error payload shape for every non-2xx response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// Fail writes err with the status code its kind maps to. Unclassified
// errors become a 500.
func Fail(c *gin.Context, err error) {
	c.JSON(StatusOf(err), ErrorBody{Detail: err.Error()})
}

// AbortFail is Fail for middleware, stopping the handler chain.
func AbortFail(c *gin.Context, err error) {
	c.AbortWithStatusJSON(StatusOf(err), ErrorBody{Detail: err.Error()})
}

// StatusOf maps the error taxonomy to HTTP status codes.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
