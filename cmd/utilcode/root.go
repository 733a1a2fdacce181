package main

import (
	"github.com/aleister1102/utilcode/internal/appenv"
	"github.com/aleister1102/utilcode/internal/config"
	"github.com/aleister1102/utilcode/internal/logger"
	"github.com/aleister1102/utilcode/internal/timeutil"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

// app holds the state shared by every subcommand. It is populated by
// setup before any RunE runs.
type app struct {
	cfgFile  string
	logLevel string

	// Overridable for tests. Nil means the real host and wall clock.
	prober appenv.Prober
	clock  timeutil.Clock

	cfg  *config.GlobalConfig
	log  *logger.Logger
	env  *appenv.Env
	conv *timeutil.Converter
}

func newRootCmd() *cobra.Command {
	return (&app{}).command()
}

func (a *app) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "utilcode",
		Short: "Convert, format and describe timestamps",
		Long: `utilcode converts between epoch milliseconds, time values and
pattern-formatted strings, and prints friendly relative times.

Patterns use date-format letters (yyyy-MM-dd HH:mm:ss) or strftime
directives (%Y-%m-%d).`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: $"+config.ConfigPathEnv+", ./config.yaml or ./config.json)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"override log_config.log_level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		a.nowCmd(),
		a.formatCmd(),
		a.parseCmd(),
		a.friendlyCmd(),
		a.envCmd(),
		a.configCmd(),
	)
	return rootCmd
}

// setup loads the configuration and builds the logger, environment and
// converter in that order.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadGlobalConfig(a.cfgFile, zerolog.Nop())
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogConfig.LogLevel = a.logLevel
	}
	a.cfg = cfg

	a.log, err = logger.NewLoggerBuilder().
		WithConfig(cfg.LogConfig).
		WithConsole(cmd.ErrOrStderr()).
		Build()
	if err != nil {
		return err
	}
	zl := *a.log.GetZerolog()

	envOpts := cfg.AppConfig.EnvOptions(zl)
	envOpts.Prober = a.prober
	a.env, err = appenv.New(cmd.Context(), envOpts)
	if err != nil {
		return err
	}

	opts, err := cfg.TimeConfig.ConverterOptions(zl)
	if err != nil {
		return err
	}
	if a.clock != nil {
		opts = append(opts, timeutil.WithClock(a.clock))
	}
	a.conv, err = timeutil.New(opts...)
	if err != nil {
		return err
	}

	zl.Debug().
		Str("pattern", a.conv.DefaultFormatter().Pattern()).
		Str("location", a.conv.Location().String()).
		Str("locale", a.conv.Locale().String()).
		Msg("Converter initialized")
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) {
	if a.log != nil {
		_ = a.log.Close()
	}
}
