// Package runtime provides the application runtime context for Grow.
package runtime

import (
	"os"

	"github.com/grow-cli/grow/internal/output"
	"github.com/grow-cli/grow/internal/storage"
)

// Context holds the application runtime context: the open store, one
// binding per domain collection, and the output formatter.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	// Domain stores
	Tasks   *storage.TaskStore
	Fitness *storage.FitnessStore
	Coding  *storage.CodingStore
	Journal *storage.JournalStore

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context and loads every domain collection.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("GROW_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	ctx := &Context{
		DB:        db,
		Formatter: formatter,
		Tasks:     storage.NewTaskStore(db),
		Fitness:   storage.NewFitnessStore(db),
		Coding:    storage.NewCodingStore(db),
		Journal:   storage.NewJournalStore(db),
		Debug:     opts.Debug,
	}

	// A failed load leaves the affected collection at its default; only
	// store read failures abort.
	for _, load := range []func() error{
		ctx.Tasks.Load,
		ctx.Fitness.Load,
		ctx.Coding.Load,
		ctx.Journal.Load,
	} {
		if err := load(); err != nil {
			db.Close()
			return nil, err
		}
	}

	return ctx, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
