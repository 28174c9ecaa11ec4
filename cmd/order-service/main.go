package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecomlabs/order-intake/internal/httpx"
	"github.com/ecomlabs/order-intake/internal/order/adapters/redisnotify"
	"github.com/ecomlabs/order-intake/internal/order/adapters/redisstore"
	"github.com/ecomlabs/order-intake/internal/order/app"
	"github.com/ecomlabs/order-intake/internal/order/eventlog"
	evsqlite "github.com/ecomlabs/order-intake/internal/order/eventlog/sqlite"
	"github.com/ecomlabs/order-intake/internal/order/notify"
	"github.com/ecomlabs/order-intake/internal/order/repository"
	"github.com/ecomlabs/order-intake/internal/pkg/config"
	"github.com/ecomlabs/order-intake/internal/pkg/telemetry"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	shutdown, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	var events eventlog.Repository
	if cfg.EventLogPath != "" {
		elog, err := evsqlite.Open(cfg.EventLogPath)
		if err != nil {
			slog.Error("failed to open event log", "path", cfg.EventLogPath, "error", err)
			os.Exit(1)
		}
		defer elog.Close()
		events = elog
	}

	repo := repository.New(redisstore.New(rdb), cfg.OrdersTable, cfg.HistoryTable)
	publisher := notify.New(redisnotify.New(rdb), cfg.NotifyTopic)

	orders := app.NewOrderHandler(repo, publisher, events)
	refunds := app.NewRefundProcessor(repo, publisher, events)

	router := httpx.NewRouter(httpx.NewHandler(orders, refunds))
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("http server shutdown error", "error", err)
		}
	}()

	slog.Info("order service running", "addr", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("http server failed", "error", err)
		os.Exit(1)
	}
}
