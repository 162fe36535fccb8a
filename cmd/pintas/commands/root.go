// Package commands implements the CLI commands for pintas.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/errors"
	"github.com/pintas-sh/pintas/internal/logging"
	"github.com/pintas-sh/pintas/internal/settings"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// appSettings and settingsLoadErr hold the result of settings loading.
var (
	appSettings     *settings.Settings
	settingsLoadErr error
)

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("pintas version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initSettings() {
	settings.Init()
	// Capture load errors for later reporting
	appSettings, settingsLoadErr = settings.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "pintas",
	Short: "A lightning-fast command alias manager",
	Long: `pintas persists short aliases for shell commands in a pintas.toml
file and runs them with forwarded arguments. Aliases can reference
positional parameters ($1, $2, ...) which receive the arguments you
pass at invocation time.

With shell integration (pintas init bash) or generated shims
(pintas sync), aliases become directly invocable from your shell
without the pintas prefix.`,
	Example: `  # Store an alias and run it
  pintas add gs "git status"
  pintas run gs

  # Aliases can take arguments
  pintas add co "git checkout $1"
  pintas run co main

  # Make aliases invocable directly
  pintas sync
  eval "$(pintas init bash)"`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("PINTAS_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// getSettings returns the loaded application settings, surfacing any load
// failure captured during initialization.
func getSettings() (*settings.Settings, error) {
	if settingsLoadErr != nil {
		return nil, errors.NewUserError(settingsLoadErr, "Check your settings.yaml")
	}
	return appSettings, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
