package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wms/internal/database"
	"wms/internal/router"
	"wms/pkg/config"
	"wms/pkg/logger"
	"wms/pkg/session"
	"wms/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	if err := logger.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	appLogger := logger.GetLogger()
	appLogger.Info("Starting WMS backend...")

	// 初始化数据库
	if err := database.Initialize(cfg); err != nil {
		appLogger.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			appLogger.Error("Failed to close database:", err)
		}
	}()

	// 执行数据库迁移
	if err := database.Migrate(database.GetDB()); err != nil {
		appLogger.Fatalf("Failed to migrate database: %v", err)
	}

	// 执行种子数据初始化
	if err := seedData(database.GetDB()); err != nil {
		appLogger.Fatalf("Failed to initialize seed data: %v", err)
	}

	// 设置Gin模式
	gin.SetMode(cfg.Server.Mode)

	// 初始化会话管理
	tokenDuration, err := time.ParseDuration(cfg.Session.TokenDuration)
	if err != nil {
		tokenDuration = 24 * time.Hour
	}
	tokens := token.NewManager(cfg.Session.SecretKey, tokenDuration)

	var sessionStore session.Store
	scheduler := cron.New()
	switch cfg.Session.Store {
	case "memory":
		memStore := session.NewMemoryStore()
		sessionStore = memStore
		// 内存存储没有TTL机制，定时清理过期会话
		if _, err := scheduler.AddFunc(cfg.Session.SweepInterval, func() {
			if removed := memStore.Sweep(); removed > 0 {
				appLogger.Infof("Swept %d expired sessions", removed)
			}
		}); err != nil {
			appLogger.Fatalf("Failed to schedule session sweep: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	default:
		redisStore := session.NewRedisStore(&session.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		sessionStore = redisStore
		defer func() {
			if err := redisStore.Close(); err != nil {
				appLogger.Error("Failed to close Redis:", err)
			}
		}()
	}
	sessions := session.NewManager(tokens, sessionStore)

	// 设置路由
	r := router.SetupRouter(cfg, database.GetDB(), sessions)

	// 启动服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	appLogger.Infof("Server started on port %s", cfg.Server.Port)

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	if err := server.Close(); err != nil {
		appLogger.Error("Server forced to shutdown:", err)
	}
	appLogger.Info("Server exited")
}
