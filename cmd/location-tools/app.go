package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"location-strategy-workers/internal/common/config"
	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/toolset"
)

// errToolFailed makes the process exit non-zero after an error result was printed.
var errToolFailed = errors.New("tool returned an error result")

// App runs single tool invocations from the command line and prints the JSON result.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	logLevel string

	loadConfig func() (*config.Config, error)
	// connect builds the toolset with a live warehouse connection.
	connect func(ctx context.Context, cfg *config.Config, log logger.Logger) (*toolset.Toolset, error)
}

func NewApp() *App {
	app := &App{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		loadConfig: config.Load,
		connect:    toolset.Build,
	}

	app.root = &cobra.Command{
		Use:   "location-tools",
		Short: "Run retail location strategy tools",
		Long: `location-tools invokes the location strategy tools directly, outside the
workflow engine. Each command prints the tool's status-tagged JSON result.

Configuration is read from configs/config.yaml, .env and the environment, the same
way the tool manager reads it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	app.root.PersistentFlags().StringVar(&app.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	app.root.AddCommand(
		app.newPlaceDetailsCmd(),
		app.newMarketGapsCmd(),
		app.newPriceSegmentationCmd(),
		app.newCompetitorWeaknessesCmd(),
		app.newSchemasCmd(),
	)
	return app
}

func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) logger() logger.Logger {
	return logger.NewStructured(a.logLevel, "console", "stderr")
}

// withToolset loads config and hands a connected toolset to fn.
func (a *App) withToolset(ctx context.Context, fn func(*toolset.Toolset) error) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ts, err := a.connect(ctx, cfg, a.logger())
	if err != nil {
		return err
	}
	defer ts.Close()
	return fn(ts)
}

type outcome interface {
	OK() bool
}

func (a *App) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printResult(result outcome) error {
	if err := a.printJSON(result); err != nil {
		return err
	}
	if !result.OK() {
		return errToolFailed
	}
	return nil
}
