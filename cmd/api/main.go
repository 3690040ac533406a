package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/auth"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/cache"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/config"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/database"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/logger"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/server"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/domain"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/repo"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/service"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/transport/http/handler"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var (
		log     *zap.Logger
		cleanup func()
	)
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON,
			cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	// 自动迁移
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Product{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// JWT（缺省 7 天有效期）
	ttl := time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    ttl,
	}

	// 读缓存（未配置 addr 则关闭）
	var rc *cache.Cache
	cacheTTL := time.Duration(cfg.Redis.TTLSec) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	if cfg.Redis.Addr != "" {
		rc = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// 仓储 → 服务 → 路由模块
	users := repo.NewUserRepo(db)
	products := repo.NewProductRepo(db)
	authSvc := service.NewAuthService(users, jwter)
	productSvc := service.NewProductService(products, rc, cacheTTL)

	router.Register(
		handler.NewAuthHandler(authSvc),
		handler.NewProductHandler(productSvc),
	)
	r := router.NewAPIEngine(log, jwter, router.Default)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
