package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-user-api-starter/internal/apperror"
	"go-user-api-starter/internal/transport/http/response"
)

// bindJSON binds the request body into out and writes the failure
// response itself: 413 when the body ran over the size cap set by the
// MaxBodyBytes middleware, 422 for anything else.
func bindJSON(c *gin.Context, out any) bool {
	err := c.ShouldBindJSON(out)
	if err == nil {
		return true
	}
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		c.JSON(http.StatusRequestEntityTooLarge, response.ErrorBody{Detail: "request body too large"})
		return false
	}
	response.Fail(c, apperror.Validation(err.Error()))
	return false
}
