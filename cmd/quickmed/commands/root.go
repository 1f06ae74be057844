package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/okian/quickmed/internal/app"
	"github.com/okian/quickmed/internal/config"
	"github.com/okian/quickmed/pkg/logger"
)

// cli holds the flag values and the service shared by subcommands.
type cli struct {
	storeDriver string
	storeDSN    string
	logLevel    string

	svc *app.Service
}

// Execute runs the quickmed CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "quickmed",
		Short:        "Clinical calculators with a patient notes log",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.svc != nil {
				c.svc.Stop()
			}
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&c.storeDriver, "store", "", "record store: sqlite, postgres or memory (default from config)")
	root.PersistentFlags().StringVar(&c.storeDSN, "dsn", "", "sqlite file or postgres connection string (default from config)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")

	root.AddCommand(c.calcCmd(), c.noteCmd(), c.calculatorsCmd())
	return root
}

// setup layers the flags over the loaded config and builds the service.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.StoreDriver = c.storeDriver
	}
	if flags.Changed("dsn") {
		cfg.StoreDSN = c.storeDSN
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []logger.Option{logger.WithOutputPaths("stderr")}
	if cfg.LogFormat == config.LogFormatJSON {
		opts = append(opts, logger.WithJSON())
	}
	if err := logger.Init(opts...); err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}

	c.svc = app.New(
		app.WithLogger(logger.Get()),
		app.WithStoreDriver(cfg.StoreDriver, cfg.StoreDSN),
	)
	return nil
}

// started returns the service with its record store open.
func (c *cli) started(ctx context.Context) (*app.Service, error) {
	if c.svc == nil {
		return nil, fmt.Errorf("%w: cli not initialized", app.ErrNotStarted)
	}
	if err := c.svc.Start(ctx); err != nil {
		return nil, err
	}
	return c.svc, nil
}
