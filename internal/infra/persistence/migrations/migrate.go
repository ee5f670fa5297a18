package migrations

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// Command is a goose command supported by the migrate binary.
type Command string

const (
	CommandUp     Command = "up"
	CommandDown   Command = "down"
	CommandStatus Command = "status"
)

// gooseRun is a seam for testing goose.RunContext.
var gooseRun = func(ctx context.Context, command string, db *sql.DB, dir string, args ...string) error {
	return goose.RunContext(ctx, command, db, dir, args...)
}

// Run applies command to db using the embedded migrations.
func Run(ctx context.Context, db *sql.DB, command Command) error {
	switch command {
	case CommandUp, CommandDown, CommandStatus:
	default:
		return errors.Errorf("unsupported migration command %q", command)
	}

	goose.SetBaseFS(Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := gooseRun(ctx, string(command), db, "."); err != nil {
		return errors.Wrapf(err, "migration %s failed", command)
	}

	return nil
}
