package prettybytes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prettybytes/internal/apperrors"
	"prettybytes/internal/units"
)

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, units.Decimal, c.System())
	assert.Equal(t, DefaultPrecision, c.Precision())
	assert.False(t, c.Signed())

	lo, hi := c.UnitRange()
	assert.Equal(t, units.Byte, lo)
	assert.Equal(t, units.Exabyte, hi)
}

func TestNewConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "negative precision", opts: []Option{WithPrecision(-1)}},
		{name: "precision too large", opts: []Option{WithPrecision(MaxPrecision + 1)}},
		{name: "unknown system", opts: []Option{WithSystem(units.System(5))}},
		{name: "min above max", opts: []Option{WithMinUnit(units.Gigabyte), WithMaxUnit(units.Megabyte)}},
		{name: "binary unit on decimal ladder", opts: []Option{WithMinUnit(units.Kibibyte)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opts...)
			require.Error(t, err)
			assert.True(t, apperrors.IsInvalidConfig(err), "got %v", err)
		})
	}
}

func TestSettingsBuild(t *testing.T) {
	tests := []struct {
		name    string
		in      Settings
		lo, hi  units.Unit
		system  units.System
		wantErr string
	}{
		{name: "symbols", in: Settings{System: "binary", Precision: 1, MinUnit: "KiB", MaxUnit: "GiB"}, lo: units.Kibibyte, hi: units.Gibibyte, system: units.Binary},
		{name: "indexes", in: Settings{System: "Decimal", MinUnit: "1", MaxUnit: "3"}, lo: units.Kilobyte, hi: units.Gigabyte, system: units.Decimal},
		{name: "aliases", in: Settings{System: "iec"}, lo: units.Byte, hi: units.Exbibyte, system: units.Binary},
		{name: "KB alias", in: Settings{System: "si", MinUnit: "KB"}, lo: units.Kilobyte, hi: units.Exabyte, system: units.Decimal},
		{name: "missing system", in: Settings{}, wantErr: "field 'system' failed validation: is required"},
		{name: "bad system", in: Settings{System: "octal"}, wantErr: "must be one of"},
		{name: "precision", in: Settings{System: "decimal", Precision: 99}, wantErr: "field 'precision' failed validation: must be less than or equal to 15"},
		{name: "index out of ladder", in: Settings{System: "decimal", MaxUnit: "7"}, wantErr: "max_unit: index 7 outside ladder"},
		{name: "negative index", in: Settings{System: "decimal", MinUnit: "-1"}, wantErr: "min_unit: index -1 outside ladder"},
		{name: "wrong ladder", in: Settings{System: "decimal", MaxUnit: "MiB"}, wantErr: `unit "MiB" is not on the decimal ladder`},
		{name: "inverted band", in: Settings{System: "binary", MinUnit: "GiB", MaxUnit: "KiB"}, wantErr: "min_unit GiB is above max_unit KiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.in.Build()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsInvalidConfig(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.system, c.System())
			lo, hi := c.UnitRange()
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	configs := []Config{
		DefaultConfig(),
		mustConfig(t, WithSystem(units.Binary), WithPrecision(0), WithSigned(true)),
		mustConfig(t, WithMinUnit(units.Megabyte)),
		mustConfig(t, WithSystem(units.Binary), WithMaxUnit(units.Tebibyte)),
	}
	for _, c := range configs {
		back, err := c.Settings().Build()
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

func TestZeroConfigIsUsable(t *testing.T) {
	var c Config
	assert.Equal(t, PrettyBytes{Raw: 1536, Value: 2, Unit: units.Kilobyte}, Convert(1536, c))
}
