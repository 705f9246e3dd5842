package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prettybytes/internal/apperrors"
	"prettybytes/internal/dirs"
	"prettybytes/internal/units"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("system", "decimal", "")
	fs.Int("precision", 2, "")
	fs.String("min-unit", "", "")
	fs.String("max-unit", "", "")
	fs.Bool("signed", false, "")
	fs.String("output", "auto", "")
	fs.String("log-level", "warn", "")
	return fs
}

// isolate points the config dir at an empty temp dir so a developer's own
// config file cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(dirs.ConfigDirEnv, dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	v := viper.New()
	require.NoError(t, Init(v, newFlags(), ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "decimal", cfg.System)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, OutputAuto, cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.File)
	assert.Equal(t, units.Decimal, cfg.Conversion.System())
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("system: binary\nprecision: 4\nmin_unit: KiB\noutput: json\n"), 0o644))
	t.Setenv("PRETTYBYTES_PRECISION", "1")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--output", "text"}))

	v := viper.New()
	require.NoError(t, Init(v, fs, ""))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)
	assert.Equal(t, units.Binary, cfg.Conversion.System()) // file
	assert.Equal(t, 1, cfg.Conversion.Precision())         // env beats file
	assert.Equal(t, OutputText, cfg.Output)                // flag beats file
	lo, _ := cfg.Conversion.UnitRange()
	assert.Equal(t, units.Kibibyte, lo)
	assert.Equal(t, "KiB", cfg.MinUnit)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"signed": true, "max_unit": "GB"}`), 0o644))

	v := viper.New()
	require.NoError(t, Init(v, nil, file))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Conversion.Signed())
	_, hi := cfg.Conversion.UnitRange()
	assert.Equal(t, units.Gigabyte, hi)
}

func TestInitMissingExplicitFile(t *testing.T) {
	isolate(t)
	err := Init(viper.New(), nil, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidConfig(err))
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "precision", args: []string{"--precision", "-1"}, want: "precision"},
		{name: "output", args: []string{"--output", "xml"}, want: "field 'output' failed validation"},
		{name: "band", args: []string{"--min-unit", "TB", "--max-unit", "kB"}, want: "min_unit TB is above max_unit kB"},
		{name: "log level", args: []string{"--log-level", "loud"}, want: "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			fs := newFlags()
			require.NoError(t, fs.Parse(tt.args))
			v := viper.New()
			require.NoError(t, Init(v, fs, ""))

			_, err := Load(v)
			require.Error(t, err)
			assert.True(t, apperrors.IsInvalidConfig(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUseBinary(t *testing.T) {
	isolate(t)
	v := viper.New()
	require.NoError(t, Init(v, newFlags(), ""))
	UseBinary(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, units.Binary, cfg.Conversion.System())
}
