package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"prettybytes/internal/apperrors"
	"prettybytes/internal/config"
	"prettybytes/internal/logger"
	"prettybytes/internal/prettybytes"
)

const (
	ExitOK            = 0
	ExitCLIError      = 1
	ExitInvalidConfig = 2
	ExitInvalidInput  = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitErr picks the exit code matching err's kind.
func exitErr(err error) *ExitError {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee
	}
	switch {
	case apperrors.IsInvalidConfig(err):
		return &ExitError{Code: ExitInvalidConfig, Err: err}
	case apperrors.IsInvalidInput(err), apperrors.IsInvalidSerialized(err):
		return &ExitError{Code: ExitInvalidInput, Err: err}
	default:
		return &ExitError{Code: ExitCLIError, Err: err}
	}
}

type ctxKey string

const configKey ctxKey = "config"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prettybytes [sizes...]",
		Short: "Turn byte counts into human-readable sizes",
		Long: "prettybytes converts byte counts (up to 2^64-1) into a value and unit such as 1.5 kB or 3.05 MiB. " +
			"JSON output keeps the exact byte count as a string so it survives consumers limited to float64. " +
			"Sizes are plain integers or humanized values like 1.5GB; prefix with - after -- for deltas.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: loadConfig,
		RunE:              runConvert,
	}

	bindConversionFlags(root.PersistentFlags())
	root.PersistentFlags().String("config", "", "Config file (default: <config dir>/config.{yaml,json,toml})")
	root.PersistentFlags().StringP("output", "o", config.OutputAuto, "Output: auto, text, json, table")
	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolP("verbose", "v", false, "Shorthand for --log-level debug")

	// Subcommands
	root.AddCommand(newConvertCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newUnitsCmd())
	root.AddCommand(newTuiCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

func bindConversionFlags(fs *pflag.FlagSet) {
	fs.String("system", "decimal", "Unit system: decimal (kB, MB) or binary (KiB, MiB)")
	fs.BoolP("binary", "b", false, "Shorthand for --system binary")
	fs.IntP("precision", "p", 2, "Digits kept after the decimal point (0-15)")
	fs.String("min-unit", "", "Smallest unit to use (symbol or ladder index)")
	fs.String("max-unit", "", "Largest unit to use (symbol or ladder index)")
	fs.Bool("signed", false, "Prefix non-negative values with a sign column")
}

// loadConfig resolves flags, env and the config file into a config.Config
// and stores it on the command context.
func loadConfig(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	file, _ := cmd.Flags().GetString("config")
	if err := config.Init(v, cmd.Flags(), file); err != nil {
		return exitErr(err)
	}
	if binary, _ := cmd.Flags().GetBool("binary"); binary {
		config.UseBinary(v)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		v.Set("log_level", "debug")
	}

	cfg, err := config.Load(v)
	if err != nil {
		return exitErr(err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return exitErr(err)
	}
	logger.Log.Debug("configuration loaded",
		zap.String("file", cfg.File),
		zap.String("system", cfg.System),
		zap.Int("precision", cfg.Precision),
		zap.String("min_unit", cfg.MinUnit),
		zap.String("max_unit", cfg.MaxUnit),
		zap.Bool("signed", cfg.Signed),
		zap.String("output", cfg.Output),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, configKey, cfg))
	return nil
}

func loadedConfig(cmd *cobra.Command) *config.Config {
	if cmd.Context() != nil {
		if cfg, ok := cmd.Context().Value(configKey).(*config.Config); ok {
			return cfg
		}
	}
	// Only reachable when PersistentPreRunE was skipped.
	return &config.Config{
		Settings:   prettybytes.DefaultSettings(),
		Output:     config.OutputAuto,
		LogLevel:   "warn",
		Conversion: prettybytes.DefaultConfig(),
	}
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	defer logger.Sync()
	if err := root.ExecuteContext(ctx); err != nil {
		return exitErr(err)
	}
	return nil
}
