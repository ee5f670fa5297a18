package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"columbus/config"
	logs "columbus/internal/infra/log"
	"columbus/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:     Apply every pending migration
// - down:   Roll back the latest migration
// - status: Print the applied state of each migration

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := migrations.Command(os.Args[1])
	migrateCmd := flag.NewFlagSet(string(command), flag.ExitOnError)
	timeout := migrateCmd.Duration("timeout", 5*time.Minute, "Abort the migration after this duration")

	if err := migrateCmd.Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, command); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command migrations.Command) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	logger.Info("Running migrations", slog.String("command", string(command)))

	if err := migrations.Run(ctx, sqlDB, command); err != nil {
		return err
	}

	logger.Info("Migrations finished", slog.String("command", string(command)))

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  up        Apply every pending migration")
	fmt.Println("  down      Roll back the latest migration")
	fmt.Println("  status    Print the state of each migration")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -timeout  Abort the migration after this duration (default 5m)")
}
