package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aleister1102/utilcode/internal/common"
	"github.com/aleister1102/utilcode/internal/config"
	"github.com/aleister1102/utilcode/internal/logger"
	"github.com/aleister1102/utilcode/internal/timeutil"
	"github.com/spf13/cobra"
)

func (a *app) nowCmd() *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pattern == "" {
				fmt.Fprintln(cmd.OutOrStdout(), a.conv.NowString())
				return nil
			}
			s, err := a.conv.NowStringPattern(pattern)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "date pattern (default: time_config.default_pattern)")
	return cmd
}

func (a *app) formatCmd() *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "format <millis>",
		Short: "Format epoch milliseconds",
		Example: `  utilcode format 1678611907000
  utilcode format 0 --pattern "yyyy-MM-dd'T'HH:mm:ss.SSSXXX"

  # negative values follow -- so they are not read as flags
  utilcode format -- -1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			millis, err := parseMillis(args[0])
			if err != nil {
				return err
			}
			if pattern == "" {
				fmt.Fprintln(cmd.OutOrStdout(), a.conv.MillisToString(millis))
				return nil
			}
			s, err := a.conv.MillisToStringPattern(millis, pattern)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "date pattern (default: time_config.default_pattern)")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	var pattern string
	var asDate bool
	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse a formatted time into epoch milliseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				pattern = a.conv.DefaultFormatter().Pattern()
			}
			t, err := a.conv.StringToTimePattern(args[0], pattern)
			if err != nil {
				return err
			}
			if asDate {
				fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339Nano))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.conv.TimeToMillis(t))
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "date pattern (default: time_config.default_pattern)")
	cmd.Flags().BoolVar(&asDate, "date", false, "print an RFC 3339 date instead of milliseconds")
	return cmd
}

func (a *app) friendlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "friendly <millis>",
		Short:   "Describe epoch milliseconds relative to now",
		Example: "  utilcode friendly 1678611907000\n  utilcode friendly -- -1000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			millis, err := parseMillis(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.conv.FriendlyTimeSpan(millis))
			return nil
		},
	}
}

func (a *app) envCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the runtime environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "os_version: %s\n", a.env.OSVersion())
			if err := a.env.HostErr(); err != nil {
				fmt.Fprintf(out, "host_error: %v\n", err)
			}
			fmt.Fprintf(out, "api_level: %d\n", a.env.SDKVersion())
			fmt.Fprintf(out, "device_id: %s\n", a.env.DeviceID())
			fmt.Fprintf(out, "network_time: %t\n", timeutil.IsUsingNetworkProvidedTime(a.env))
			fmt.Fprintf(out, "timezone: %s\n", a.conv.Location())
			fmt.Fprintf(out, "locale: %s\n", a.conv.Locale())
			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// config subcommands must work without a loadable config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: `Write the default configuration to path (config.yaml when omitted).
The format follows the extension: .yaml/.yml for YAML, anything else for JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			log, err := logger.NewLoggerBuilder().WithConsole(cmd.ErrOrStderr()).Build()
			if err != nil {
				return err
			}
			return config.SaveGlobalConfig(config.NewDefaultGlobalConfig(), path, *log.GetZerolog())
		},
	})
	return cmd
}

func parseMillis(s string) (int64, error) {
	millis, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, common.NewValidationError("millis", s, "must be an integer number of milliseconds")
	}
	return millis, nil
}
