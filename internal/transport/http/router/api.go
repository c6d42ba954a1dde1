package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-user-api-starter/internal/core/auth"
	"go-user-api-starter/internal/service"
	"go-user-api-starter/internal/transport/http/handler"
	mdw "go-user-api-starter/internal/transport/http/middleware"
)

type APIOptions struct {
	// ProtectUsers puts the /users routes behind bearer auth.
	// /auth/register and /auth/login are always public.
	ProtectUsers bool
}

func NewAPIEngine(l *zap.Logger, svc *service.UserService, jwter *auth.JWTer, opt APIOptions) *gin.Engine {
	r := gin.New()

	reg := prometheus.NewRegistry()
	metrics := mdw.NewHTTPMetrics(reg)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		metrics.Middleware(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	authH := handler.NewAuthHandler(svc)
	userH := handler.NewUserHandler(svc)

	ag := r.Group("/auth")
	{
		ag.POST("/register", authH.Register)
		ag.POST("/login", authH.Login)
	}

	users := r.Group("/users")
	if opt.ProtectUsers {
		users.Use(mdw.AuthJWT(jwter))
	}
	{
		users.POST("", userH.Create)
		users.GET("", userH.List)
		users.GET("/:id", userH.GetOrSearch)      // also /users/search
		users.GET("/:id/:sub", userH.Subresource) // /users/:id/details, /users/email/:email
		users.PUT("/:id", userH.Update)
		users.DELETE("/:id", userH.Delete)
	}

	return r
}
