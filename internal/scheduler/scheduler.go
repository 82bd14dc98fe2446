// Package scheduler runs the console jobs on cron schedules for the worker binary.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"hotelagent/internal/cache"
	"hotelagent/internal/command"
	"hotelagent/internal/config"
	"hotelagent/internal/model"
	"hotelagent/internal/service"
)

// Jobs is the work the scheduler triggers. *command.Runner implements it.
type Jobs interface {
	CheckExpired(ctx context.Context, warnDays int, dryRun bool) (*service.CheckExpiredResult, error)
	GenerateMonthlyBills(ctx context.Context, m model.Month, force bool) (*service.GenerateSummary, error)
}

// Locker guards a job so only one worker replica runs it at a time.
type Locker interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (*cache.Lock, error)
}

// cronLogger routes the cron library's own messages through slog.
// Info messages are written at level; errors always at ERROR.
type cronLogger struct {
	log   *slog.Logger
	level slog.Level
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Log(context.Background(), l.level, msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append([]any{"error", err}, keysAndValues...)...)
}

// Scheduler owns the cron instance and its registered jobs.
type Scheduler struct {
	cron   *cron.Cron
	jobs   Jobs
	locker Locker
	cfg    config.SchedulerConfig
	loc    *time.Location
	log    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	now    func() time.Time
}

// New registers the expiry check and the monthly bill run. Schedules are evaluated in loc.
func New(jobs Jobs, locker Locker, cfg config.SchedulerConfig, loc *time.Location, log *slog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 30 * time.Minute
	}
	s := &Scheduler{
		jobs:   jobs,
		locker: locker,
		cfg:    cfg,
		loc:    loc,
		log:    log.With("component", "scheduler"),
		now:    time.Now,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	// Wake-ups and runs are debug noise; skips and panics are not.
	jobLog := cronLogger{log: s.log, level: slog.LevelInfo}
	s.cron = cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger{log: s.log, level: slog.LevelDebug}),
		cron.WithChain(cron.Recover(jobLog), cron.SkipIfStillRunning(jobLog)),
	)

	entries := []struct {
		name string
		spec string
		run  func(ctx context.Context) error
	}{
		{command.CheckExpiredName, cfg.CheckExpiredSpec, s.checkExpired},
		{command.MonthlyBillsName, cfg.MonthlyBillsSpec, s.monthlyBills},
	}
	for _, e := range entries {
		if _, err := s.cron.AddFunc(e.spec, func() { _ = s.Run(s.ctx, e.name, e.run) }); err != nil {
			return nil, fmt.Errorf("schedule %s %q: %w", e.name, e.spec, err)
		}
		s.log.Info("job scheduled", "job", e.name, "spec", e.spec)
	}
	return s, nil
}

// Start runs the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", "event", "scheduler_started", "timezone", s.loc.String())
}

// Stop stops scheduling and waits for running jobs until ctx is done, then cancels them.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	defer s.cancel()
	select {
	case <-done.Done():
		s.log.Info("scheduler stopped", "event", "scheduler_stopped")
		return nil
	case <-ctx.Done():
		s.log.Warn("jobs still running at shutdown, cancelling", "event", "scheduler_stop_timeout")
		return ctx.Err()
	}
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Run executes fn under the named lock with a deadline of the lock TTL.
// A lock held elsewhere skips the run without error.
func (s *Scheduler) Run(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	log := s.log.With("job", name)
	ctx, cancel := context.WithTimeout(ctx, s.cfg.LockTTL)
	defer cancel()

	lock, err := s.locker.Acquire(ctx, name, s.cfg.LockTTL)
	if errors.Is(err, cache.ErrLockHeld) {
		log.Info("job already running elsewhere, skipping", "event", "job_skipped")
		return nil
	}
	if err != nil {
		log.Error("could not take job lock", "event", "job_lock_failed", "error", err.Error())
		return err
	}
	defer func() {
		// The job context may already be done; release on a fresh one.
		rctx, rcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer rcancel()
		if err := lock.Release(rctx); err != nil {
			log.Warn("release job lock", "error", err.Error())
		}
	}()

	log.Info("job started", "event", "job_started")
	if err := fn(ctx); err != nil {
		log.Error("job failed", "event", "job_failed", "error", err.Error())
		return err
	}
	return nil
}

func (s *Scheduler) checkExpired(ctx context.Context) error {
	_, err := s.jobs.CheckExpired(ctx, s.cfg.ExpiryWarningDays, false)
	return err
}

func (s *Scheduler) monthlyBills(ctx context.Context) error {
	_, err := s.jobs.GenerateMonthlyBills(ctx, model.PreviousMonth(s.now().In(s.loc)), false)
	return err
}
