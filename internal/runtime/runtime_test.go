package runtime

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grow-cli/grow/internal/model"
	"github.com/grow-cli/grow/internal/output"
)

func memoryOptions() Options {
	opts := DefaultOptions()
	opts.InMemory = true
	return opts
}

func TestNewInMemory(t *testing.T) {
	ctx, err := New(memoryOptions())
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.Tasks)
	assert.NotNil(t, ctx.Fitness)
	assert.NotNil(t, ctx.Coding)
	assert.NotNil(t, ctx.Journal)

	// Collections are loaded at their defaults.
	assert.Empty(t, ctx.Tasks.Records())
	assert.Empty(t, ctx.Journal.Records())
}

func TestNewOnDisk(t *testing.T) {
	dir := t.TempDir()

	opts := DefaultOptions()
	opts.DBPath = filepath.Join(dir, "db")

	ctx, err := New(opts)
	require.NoError(t, err)

	require.NoError(t, ctx.Tasks.Add(model.NewTask("water plants", "", "")))
	require.NoError(t, ctx.Close())

	// Reopen and see the persisted task.
	ctx, err = New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	require.Len(t, ctx.Tasks.Records(), 1)
	assert.Equal(t, "water plants", ctx.Tasks.Records()[0].Title)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GROW_DATABASE", ":memory:")

	opts := DefaultOptions()
	opts.DBPath = filepath.Join(t.TempDir(), "ignored")

	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	// Nothing should have been written to the configured path.
	assert.NoFileExists(t, filepath.Join(opts.DBPath, "MANIFEST"))
}

func TestEnvOverridePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GROW_DATABASE", filepath.Join(dir, "env-db"))

	opts := DefaultOptions()
	opts.DBPath = filepath.Join(dir, "configured-db")

	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	assert.DirExists(t, filepath.Join(dir, "env-db"))
	assert.NoDirExists(t, filepath.Join(dir, "configured-db"))
}

func TestFormatters(t *testing.T) {
	opts := memoryOptions()
	opts.Format = output.FormatJSON

	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	assert.True(t, ctx.IsJSON())
	assert.NotNil(t, ctx.CLIFormatter())
	assert.NotNil(t, ctx.JSONFormatter())
}
