package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"legal-case-api/internal/service"
	"legal-case-api/internal/transport/http/handler"
	mdw "legal-case-api/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, db *gorm.DB) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(), // 前端 SPA 跨域
	)

	// 健康检查 + 指标
	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	handler.NewUserHandler(service.NewUserService(db, l)).Mount(api)
	handler.NewClientHandler(service.NewClientService(db, l)).Mount(api)
	handler.NewCaseHandler(service.NewCaseService(db, l)).Mount(api)
	handler.NewDocumentHandler(service.NewDocumentService(db, l)).Mount(api)

	return r
}
