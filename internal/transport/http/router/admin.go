package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-api-starter/internal/core/auth"
	"go-user-api-starter/internal/service"
	"go-user-api-starter/internal/transport/http/handler"
	mdw "go-user-api-starter/internal/transport/http/middleware"
)

// NewAdminEngine builds the ops API served on the admin port. Every
// /admin/v1 route requires a valid bearer token.
func NewAdminEngine(l *zap.Logger, svc *service.UserService, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	adminH := handler.NewAdminHandler(svc)

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter))
	{
		admin.GET("/users", adminH.List)
		admin.GET("/stats", adminH.Stats)
		admin.DELETE("/users/:id", adminH.Delete)
	}

	return r
}
