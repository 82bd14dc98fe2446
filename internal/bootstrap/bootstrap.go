// Package bootstrap wires configuration, infrastructure clients and services for the api, console and worker binaries.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"hotelagent/internal/cache"
	"hotelagent/internal/config"
	"hotelagent/internal/database"
	"hotelagent/internal/database/migration"
	"hotelagent/internal/metrics"
	"hotelagent/internal/model"
	"hotelagent/internal/repository/postgres"
	"hotelagent/internal/service"
	"hotelagent/internal/storage"
)

// App holds the shared dependencies of a running binary.
type App struct {
	Config  *config.AppConfig
	Log     *slog.Logger
	DB      *sql.DB
	Redis   *redis.Client // nil when REDIS_ADDR is empty
	Store   storage.Storage
	Metrics *metrics.Metrics

	Agents   service.AgentService
	Orders   service.OrderService
	Bills    service.AgentBillService
	Payments service.PaymentService
	Reports  service.ReportService

	closers []func() error
}

// Options selects the optional pieces a binary needs.
type Options struct {
	// Registerer receives the business metrics. Nil disables them.
	Registerer prometheus.Registerer
	// WithStorage connects to object storage when it is configured.
	WithStorage bool
}

// New connects to PostgreSQL (migrating it when enabled), Redis and object storage, then builds the services.
// The caller must Close the returned App.
func New(ctx context.Context, cfg *config.AppConfig, log *slog.Logger, opts Options) (*App, error) {
	a := &App{Config: cfg, Log: log}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a.DB = db
	a.closers = append(a.closers, db.Close)

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			a.Close()
			return nil, err
		}
	}

	if cfg.Redis.Enabled() {
		rdb, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Redis = rdb
		a.closers = append(a.closers, rdb.Close)
		log.Info("redis connected", "event", "redis_connected", "addr", cfg.Redis.Addr)
	}

	if opts.WithStorage {
		store, err := storage.NewMinIO(ctx, cfg.MinIO)
		switch {
		case errors.Is(err, storage.ErrNotConfigured):
			log.Info("object storage disabled, exports are download only", "event", "storage_disabled")
		case err != nil:
			a.Close()
			return nil, fmt.Errorf("initialize object storage: %w", err)
		default:
			a.Store = store
		}
	}

	if opts.Registerer != nil {
		m, err := metrics.New(opts.Registerer)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		a.Metrics = m
		if err := database.RegisterStats(opts.Registerer, db); err != nil {
			a.Close()
			return nil, fmt.Errorf("register pool metrics: %w", err)
		}
	}

	if err := a.wire(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// reportCache returns the Redis backed report cache; without Redis it stores nothing.
func (a *App) reportCache() *cache.Cache {
	var client cache.Client
	if a.Redis != nil {
		client = a.Redis
	}
	return cache.New(client, "hotelagent:", a.Config.Redis.ReportTTL)
}

// Locker returns the job lock shared by worker replicas.
func (a *App) Locker() *cache.Locker {
	var client cache.Client
	if a.Redis != nil {
		client = a.Redis
	}
	return cache.NewLocker(client, "hotelagent:lock:")
}

func (a *App) wire() error {
	loc := a.Config.Location()
	tx := postgres.NewTxManager(a.DB)
	agents := postgres.NewAgentPostgres(a.DB)
	orders := postgres.NewOrderPostgres(a.DB)
	bills := postgres.NewBillPostgres(a.DB)
	payments := postgres.NewPaymentPostgres(a.DB)
	audits := postgres.NewAuditLogPostgres(a.DB)
	rc := a.reportCache()

	billSvc, err := service.NewAgentBillService(tx, service.BillRepos{
		Agents: agents,
		Orders: orders,
		Bills:  bills,
		Audits: audits,
	}, rc, a.Metrics, model.CommissionBasis(a.Config.Billing.CommissionBasis))
	if err != nil {
		return err
	}

	a.Agents = service.NewAgentService(agents, a.Metrics, loc)
	a.Orders = service.NewOrderService(tx, orders, agents)
	a.Bills = billSvc
	a.Payments = service.NewPaymentService(tx, bills, payments, audits, rc, a.Metrics)
	a.Reports = service.NewReportService(bills, agents, audits, a.Store, rc, service.ReportOptions{
		Location:      loc,
		PresignExpiry: a.Config.MinIO.PresignExpiry,
	})
	return nil
}

// Close releases clients in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Log.Warn("close failed", "error", err.Error())
		}
	}
	a.closers = nil
}
