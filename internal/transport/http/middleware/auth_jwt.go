package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"go-user-api-starter/internal/apperror"
	"go-user-api-starter/internal/core/auth"
	"go-user-api-starter/internal/transport/http/response"
)

const KeyClaims = "claims"

// AuthJWT requires a valid bearer token and stores its claims in the
// request context under KeyClaims.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.AbortFail(c, apperror.Unauthorized("missing bearer token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.AbortFail(c, apperror.Unauthorized("token expired"))
			} else {
				response.AbortFail(c, apperror.Unauthorized("invalid token"))
			}
			return
		}
		c.Set(KeyClaims, claims)
		c.Next()
	}
}
