package httptransport

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/transport/http/handler"
	"github.com/orderdesk/orderdesk/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, orderHandler *handler.OrderHandler, verifier middleware.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// The storefront is a browser app served from another origin.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.POST("/admin/login", authHandler.Login)

	r.POST("/orders", orderHandler.Create)
	r.GET("/orders", middleware.Auth(verifier), orderHandler.List)

	return r
}
