package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotelagent/docs"
	"hotelagent/internal/bootstrap"
	"hotelagent/internal/config"
	handlers "hotelagent/internal/http/handler"
	"hotelagent/internal/http/middleware"
	"hotelagent/internal/logger"
	"hotelagent/internal/otel"
)

// @title Hotel Agent Billing API
// @version 1.0
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	appLog := logger.New(os.Stdout, loc, "api")
	log.SetFlags(0)
	log.SetOutput(os.Stdout)
	slog.SetDefault(appLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, appLog, "hotelagent-api")
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// PostgreSQL (migrated on start), optional Redis and MinIO, services
	app, err := bootstrap.New(ctx, cfg, appLog, bootstrap.Options{Registerer: reg, WithStorage: true})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer app.Close()

	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}

	server := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	server.Use(recover.New())
	server.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	server.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	server.Use(middleware.Logger(loc))
	server.Use(promMW.Handler())
	server.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.RequestIDHeader,
	}))
	server.Use(limiter.New(limiter.Config{
		Max:        cfg.HTTP.RateLimitMax,
		Expiration: cfg.HTTP.RateLimitEvery,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.ErrTooManyRequests
		},
	}))

	server.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterRoutes(server, app.DB, handlers.Services{
		Agents:   app.Agents,
		Orders:   app.Orders,
		Bills:    app.Bills,
		Payments: app.Payments,
		Reports:  app.Reports,
	}, middleware.Auth(cfg.Auth))

	// Swagger UI with dynamic host and scheme
	server.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	go func() {
		appLog.Info("http server listening", "event", "server_started", "addr", addr)
		if err := server.Listen(addr); err != nil {
			appLog.Error("server stopped", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	appLog.Info("shutting down", "event", "server_stopping")

	if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLog.Error("http shutdown", "error", err.Error())
	}
	tctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(tctx); err != nil {
		appLog.Warn("tracing shutdown", "error", err.Error())
	}
}
