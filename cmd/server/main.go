package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop_backoffice/internal/pkg/config"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/internal/pkg/registry"
	"shop_backoffice/pkg/database"
	"shop_backoffice/pkg/logger"
	"shop_backoffice/pkg/metrics"
	"shop_backoffice/pkg/response"

	// 模块通过 init() 自注册
	_ "shop_backoffice/internal/domain/blog"
	_ "shop_backoffice/internal/domain/cart"
	_ "shop_backoffice/internal/domain/catalog"
	_ "shop_backoffice/internal/domain/contact"
	_ "shop_backoffice/internal/domain/coupon"
	_ "shop_backoffice/internal/domain/dashboard"
	_ "shop_backoffice/internal/domain/order"
	_ "shop_backoffice/internal/domain/review"
	_ "shop_backoffice/internal/domain/settings"
	_ "shop_backoffice/internal/domain/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	config.LoadConfig()

	// 2. 初始化日志
	logger.Init(config.GlobalConfig.Server.Mode)
	defer logger.Sync()

	// 3. 初始化数据库和 Redis
	db := database.InitDatabase()
	redisClient := database.InitRedis()

	// 4. 创建 Gin 引擎
	gin.SetMode(config.GlobalConfig.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(metrics.Default().Middleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	router.Use(cors.New(corsConfig))

	// 5. 健康检查与指标
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	// 6. 初始化所有业务模块
	moduleCtx := &registry.ModuleContext{
		DB:     db,
		Redis:  redisClient,
		Router: router,
	}
	if err := registry.InitModules(moduleCtx); err != nil {
		logger.Log.Fatal("Failed to initialize modules", zap.Error(err))
	}

	// 7. 启动 HTTP 服务，支持优雅关闭
	srv := &http.Server{
		Addr:    ":" + config.GlobalConfig.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Server starting", zap.String("port", config.GlobalConfig.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Log.Info("Server exited")
}
