package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Liubai2026/VehicleTaskAnalysis/config"
	"github.com/Liubai2026/VehicleTaskAnalysis/internal/api/handler"
	"github.com/Liubai2026/VehicleTaskAnalysis/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Upload.MaxFileSizeMB << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 分析模块
		analysis := v1.Group("/analysis")
		{
			analysis.POST("/vehicle", h.Analysis.VehicleAnalysis)
			analysis.POST("/tasks", h.Analysis.TaskAnalysis)
			analysis.GET("/:id", h.Analysis.GetRun)
			analysis.GET("/:id/statistics", h.Analysis.GetStatistics)
			analysis.GET("/:id/uploader-stats", h.Analysis.GetUploaderStats)
			analysis.GET("/:id/city-trends", h.Analysis.GetCityTrends)
			analysis.GET("/:id/trend-summary", h.Analysis.GetTrendSummary)
			analysis.GET("/:id/export", h.Analysis.Export)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
