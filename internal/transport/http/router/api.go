package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/auth"
	mdw "github.com/XYFORA-Dev/XYFORA-APIs/internal/transport/http/middleware"
	resp "github.com/XYFORA-Dev/XYFORA-APIs/internal/transport/http/response"
)

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, reg *Registry) *gin.Engine {
	// 请求体出现未知字段时绑定直接失败
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()

	// 中间件；recovery 放最内层，panic 的请求同样会被打点和记日志
	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
		ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, err any) {
			resp.Abort(c, resp.CodeServerError, "")
		}),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 前缀
	api := r.Group("/api/v1")

	// 鉴权分组（需要 Bearer 才能拿到 userId）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter))

	reg.MountAll(api, authed)
	return r
}
