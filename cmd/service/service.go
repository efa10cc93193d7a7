// @title        Crypto Wallet API
// @version      1.0
// @description  這是 Crypto Wallet 的帳號與行情 API 文件
// @host         localhost:8000
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"crypto-wallet/internal/cache"
	"crypto-wallet/internal/config"
	"crypto-wallet/internal/database"
	"crypto-wallet/internal/market"
	"crypto-wallet/internal/router"
	"crypto-wallet/internal/service"
	"crypto-wallet/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "crypto-wallet/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// newValidator 錯誤訊息使用 json 欄位名稱
func newValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	service.SetSigningKey(cfg.JWTSecret)

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    rdb,
		Limiter:  service.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginLockout),
		Workers:  wp,
		Market:   market.NewClient(cfg.CoinGeckoBaseURL, cfg.CoinGeckoAPIKey, rdb, cfg.MarketCacheTTL),
		TokenTTL: cfg.TokenTTL,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	slog.Info("server starting", "addr", cfg.Addr(), "workers", cfg.WorkerCount)
	return startServer(e, cfg.Addr())
}

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		exitFunc(1)
	}
}
