package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbedsOrderedFiles(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "00001_initial_schema.sql", files[0])
	assert.Equal(t, "00002_seed_destinations.sql", files[1])
}

func TestRun_RejectsUnknownCommand(t *testing.T) {
	err := Run(context.Background(), nil, Command("redo-all"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported migration command")
}

func TestRun_DelegatesToGoose(t *testing.T) {
	original := gooseRun
	t.Cleanup(func() { gooseRun = original })

	var gotCommand, gotDir string
	gooseRun = func(_ context.Context, command string, _ *sql.DB, dir string, _ ...string) error {
		gotCommand, gotDir = command, dir

		return nil
	}

	require.NoError(t, Run(context.Background(), nil, CommandStatus))
	assert.Equal(t, "status", gotCommand)
	assert.Equal(t, ".", gotDir)
}
