package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"prettybytes/internal/apperrors"
	"prettybytes/internal/dirs"
	"prettybytes/internal/prettybytes"
	"prettybytes/internal/units"
	"prettybytes/internal/validator"
)

// EnvPrefix namespaces environment overrides: PRETTYBYTES_PRECISION, PRETTYBYTES_SYSTEM, ...
const EnvPrefix = "PRETTYBYTES"

// Output modes.
const (
	OutputAuto  = "auto"
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// Config holds the effective CLI configuration.
type Config struct {
	prettybytes.Settings `mapstructure:",squash"`

	Output   string `mapstructure:"output" validate:"required,oneof=auto text json table"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// Conversion is Settings built into a validated converter configuration.
	Conversion prettybytes.Config `mapstructure:"-"`
	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// flagKeys maps viper keys to the flag names that override them.
var flagKeys = map[string]string{
	"system":    "system",
	"precision": "precision",
	"min_unit":  "min-unit",
	"max_unit":  "max-unit",
	"signed":    "signed",
	"output":    "output",
	"log_level": "log-level",
}

// Init wires v with defaults, the config file, env and flag bindings.
// Precedence is flag > env > config file > default. An explicit file that
// cannot be read is an error; a missing default config file is not.
func Init(v *viper.Viper, fs *pflag.FlagSet, file string) error {
	def := prettybytes.DefaultSettings()
	v.SetDefault("system", def.System)
	v.SetDefault("precision", def.Precision)
	v.SetDefault("min_unit", def.MinUnit)
	v.SetDefault("max_unit", def.MaxUnit)
	v.SetDefault("signed", def.Signed)
	v.SetDefault("output", OutputAuto)
	v.SetDefault("log_level", "warn")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		if cfgDir, err := dirs.ConfigDir(); err == nil {
			v.AddConfigPath(cfgDir)
		}
		v.SetConfigName("config") // supports config.{yaml|yml|json|toml}
	}

	// Environment variables: PRETTYBYTES_*
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return apperrors.Wrap(apperrors.ErrInvalidConfig, err, "reading config file")
		}
	}
	return nil
}

// Load decodes v into a Config and builds its conversion settings. Every
// failure wraps apperrors.ErrInvalidConfig.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, err, "unable to decode config")
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := validator.Validate(cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, err, "cli settings")
	}

	conv, err := cfg.Settings.Build()
	if err != nil {
		return nil, err
	}
	cfg.Conversion = conv
	cfg.Settings = conv.Settings()
	cfg.File = v.ConfigFileUsed()
	return &cfg, nil
}

// UseBinary forces the binary ladder; it backs the --binary shorthand flag.
func UseBinary(v *viper.Viper) {
	v.Set("system", units.Binary.String())
}
