package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/controlhs/datacore/internal/adapter/handler"
	"github.com/controlhs/datacore/internal/adapter/render"
	"github.com/controlhs/datacore/internal/adapter/storage"
	"github.com/controlhs/datacore/internal/config"
	"github.com/controlhs/datacore/internal/core/service"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.WithError(err).Fatal("failed to connect mysql")
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.WithError(err).Fatal("failed to ping mysql")
	}
	log.Info("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect redis")
	}
	log.Info("connected to redis")

	// Initialize adapters
	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)
	renderer := render.NewExcelRenderer()

	// Initialize services
	authService := service.NewAuthService(mysqlAdapter, redisAdapter, cfg.APISecret, cfg.TokenLifespan)
	selectionService := service.NewSelectionService()
	reportService := service.NewReportService(mysqlAdapter, renderer)
	accessService := service.NewAccessService()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(authService, selectionService, reportService, accessService, mysqlAdapter, log)
	mux := http.NewServeMux()
	httpHandler.Register(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Error("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Info("HTTP server stopped")

	rdb.Close()
	db.Close()
	log.Info("connections closed")
}
