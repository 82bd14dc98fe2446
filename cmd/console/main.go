package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"hotelagent/internal/bootstrap"
	"hotelagent/internal/command"
	"hotelagent/internal/config"
	"hotelagent/internal/logger"
)

// console agent:check-expired [--dry-run] [--warn-days N]
// console app:generate-monthly-bills [--month YYYY-MM] [--force]
func main() {
	if len(os.Args) < 2 {
		command.Usage(os.Stderr)
		os.Exit(2)
	}
	os.Exit(run(os.Args[1], os.Args[2:]))
}

func run(name string, args []string) int {
	cfg := config.Load()
	loc := cfg.Location()
	// Logs go to stderr so stdout carries only the command summary.
	appLog := logger.New(os.Stderr, loc, "console")
	slog.SetDefault(appLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, appLog, bootstrap.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		return 1
	}
	defer app.Close()

	runner := command.NewRunner(app.Agents, app.Bills, appLog, app.Metrics, loc, os.Stdout)
	return runner.Run(ctx, name, args)
}
