package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotelagent/internal/bootstrap"
	"hotelagent/internal/command"
	"hotelagent/internal/config"
	"hotelagent/internal/logger"
	"hotelagent/internal/otel"
	"hotelagent/internal/scheduler"
)

func main() {
	cfg := config.Load()
	loc := cfg.Location()
	appLog := logger.New(os.Stdout, loc, "worker")
	slog.SetDefault(appLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, appLog, "hotelagent-worker")
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	app, err := bootstrap.New(ctx, cfg, appLog, bootstrap.Options{Registerer: reg})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer app.Close()
	if app.Redis == nil {
		appLog.Warn("REDIS_ADDR is empty, jobs are not locked across replicas", "event", "job_lock_disabled")
	}

	runner := command.NewRunner(app.Agents, app.Bills, appLog, app.Metrics, loc, os.Stdout)
	sched, err := scheduler.New(runner, app.Locker(), cfg.Scheduler, loc, appLog)
	if err != nil {
		log.Fatalf("failed to schedule jobs: %v", err)
	}
	sched.Start()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		appLog.Info("metrics listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("metrics server stopped", "error", err.Error())
		}
	}()

	<-ctx.Done()
	appLog.Info("shutting down", "event", "worker_stopping")

	sctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sched.Stop(sctx); err != nil {
		appLog.Warn("scheduler stop", "error", err.Error())
	}
	_ = srv.Shutdown(sctx)
	if err := shutdownTracing(sctx); err != nil {
		appLog.Warn("tracing shutdown", "error", err.Error())
	}
}
