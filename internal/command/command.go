// Package command implements the console commands agent:check-expired and app:generate-monthly-bills.
// The worker runs the same jobs on a schedule.
package command

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"hotelagent/internal/metrics"
	"hotelagent/internal/model"
	"hotelagent/internal/service"
)

const (
	CheckExpiredName = "agent:check-expired"
	MonthlyBillsName = "app:generate-monthly-bills"
)

// ErrPartialFailure is returned when a job finished but some agents could not be processed.
var ErrPartialFailure = errors.New("job finished with failures")

// Runner executes console commands against the services.
type Runner struct {
	Agents   service.AgentService
	Bills    service.AgentBillService
	Log      *slog.Logger
	Metrics  *metrics.Metrics
	Location *time.Location
	Out      io.Writer

	now func() time.Time
}

// NewRunner creates a Runner printing human readable summaries to out.
func NewRunner(agents service.AgentService, bills service.AgentBillService, log *slog.Logger, m *metrics.Metrics, loc *time.Location, out io.Writer) *Runner {
	if loc == nil {
		loc = time.UTC
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{Agents: agents, Bills: bills, Log: log, Metrics: m, Location: loc, Out: out, now: time.Now}
}

type command struct {
	name  string
	usage string
	run   func(r *Runner, ctx context.Context, args []string) error
}

var commands = []command{
	{CheckExpiredName, "Expire agents past their expiry date and list those expiring soon", (*Runner).checkExpiredCmd},
	{MonthlyBillsName, "Generate the agent bills of a month (default: previous month)", (*Runner).monthlyBillsCmd},
}

// Usage prints the available commands.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: console <command> [flags]")
	fmt.Fprintln(w, "\ncommands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-28s %s\n", c.name, c.usage)
	}
}

// Run dispatches name and returns the process exit code: 0 on success, 1 on failure, 2 on usage errors.
func (r *Runner) Run(ctx context.Context, name string, args []string) int {
	for _, c := range commands {
		if c.name != name {
			continue
		}
		err := c.run(r, ctx, args)
		switch {
		case err == nil:
			return 0
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errUsage):
			return 2
		default:
			r.Log.Error("command failed", "command", name, "error", err.Error())
			return 1
		}
	}
	fmt.Fprintf(r.Out, "unknown command %q\n\n", name)
	Usage(r.Out)
	return 2
}

var errUsage = errors.New("usage error")

func (r *Runner) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.Out)
	return fs
}

func (r *Runner) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(r.Out, "unexpected arguments: %v\n", fs.Args())
		return errUsage
	}
	return nil
}

func (r *Runner) checkExpiredCmd(ctx context.Context, args []string) error {
	fs := r.flagSet(CheckExpiredName)
	dryRun := fs.Bool("dry-run", false, "report without changing any agent")
	warnDays := fs.Int("warn-days", 7, "also list agents expiring within this many days")
	if err := r.parse(fs, args); err != nil {
		return err
	}
	if *warnDays < 0 {
		fmt.Fprintln(r.Out, "--warn-days must not be negative")
		return errUsage
	}
	_, err := r.CheckExpired(ctx, *warnDays, *dryRun)
	return err
}

func (r *Runner) monthlyBillsCmd(ctx context.Context, args []string) error {
	fs := r.flagSet(MonthlyBillsName)
	monthFlag := fs.String("month", "", "billing month YYYY-MM (default: previous month)")
	force := fs.Bool("force", false, "recompute pending bills that already exist")
	if err := r.parse(fs, args); err != nil {
		return err
	}

	m := model.PreviousMonth(r.now().In(r.Location))
	if *monthFlag != "" {
		parsed, err := model.ParseMonth(*monthFlag)
		if err != nil {
			fmt.Fprintln(r.Out, err.Error())
			return errUsage
		}
		m = parsed
	}
	_, err := r.GenerateMonthlyBills(ctx, m, *force)
	return err
}

// CheckExpired runs the expiry check and logs every agent it touched.
func (r *Runner) CheckExpired(ctx context.Context, warnDays int, dryRun bool) (*service.CheckExpiredResult, error) {
	start := time.Now()
	log := r.Log.With("job", CheckExpiredName, "dry_run", dryRun)

	// A partial failure comes back with both a result and an error.
	res, err := r.Agents.CheckExpired(ctx, warnDays, dryRun)
	if res == nil {
		if err == nil {
			err = errors.New("no result from expiry check")
		}
		r.Metrics.ObserveJob(CheckExpiredName, start, err)
		return nil, err
	}

	for _, a := range res.Expired {
		log.Info("agent expired", "agent_code", a.Code, "expiry_date", a.ExpiryDate.Format("2006-01-02"))
	}
	for _, a := range res.Expiring {
		log.Warn("agent expiring soon", "agent_code", a.Code, "expiry_date", a.ExpiryDate.Format("2006-01-02"))
	}
	fmt.Fprintf(r.Out, "%s: %d expired, %d expiring within %d days, %d failed (dry run: %t)\n",
		res.Today.Format("2006-01-02"), len(res.Expired), len(res.Expiring), warnDays, len(res.Failed), dryRun)

	switch {
	case len(res.Failed) > 0 && err != nil:
		err = fmt.Errorf("%w: could not expire %v: %w", ErrPartialFailure, res.Failed, err)
	case len(res.Failed) > 0:
		err = fmt.Errorf("%w: could not expire %v", ErrPartialFailure, res.Failed)
	}
	r.Metrics.ObserveJob(CheckExpiredName, start, err)
	log.Info("job finished",
		"expired", len(res.Expired),
		"expiring", len(res.Expiring),
		"failed", len(res.Failed),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, err
}

// GenerateMonthlyBills generates the bills of m as the system operator.
func (r *Runner) GenerateMonthlyBills(ctx context.Context, m model.Month, force bool) (*service.GenerateSummary, error) {
	start := time.Now()
	log := r.Log.With("job", MonthlyBillsName, "month", m.String(), "force", force)

	// An interrupted run returns the summary of the agents done so far with the error.
	sum, err := r.Bills.GenerateMonthlyBills(ctx, m, force, service.SystemOperator)
	if sum == nil {
		if err == nil {
			err = errors.New("no summary from bill generation")
		}
		r.Metrics.ObserveJob(MonthlyBillsName, start, err)
		return nil, err
	}

	fmt.Fprintf(r.Out, "%s: %d created, %d regenerated, %d skipped, %d failed\n",
		sum.Month, sum.Created, sum.Regenerated, sum.Skipped, sum.Failed)

	codes := make([]string, 0, len(sum.Errors))
	for code := range sum.Errors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		log.Error("bill generation failed", "agent_code", code, "error", sum.Errors[code])
		fmt.Fprintf(r.Out, "  %s: %s\n", code, sum.Errors[code])
	}

	if sum.Failed > 0 && err == nil {
		err = fmt.Errorf("%w: %d of %d agents", ErrPartialFailure, sum.Failed, sum.Failed+len(sum.Results))
	}
	r.Metrics.ObserveJob(MonthlyBillsName, start, err)
	log.Info("job finished",
		"created", sum.Created,
		"regenerated", sum.Regenerated,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return sum, err
}
