package prettybytes

import (
	"fmt"
	"strconv"
	"strings"

	"prettybytes/internal/apperrors"
	"prettybytes/internal/units"
	"prettybytes/internal/validator"
)

const (
	// DefaultPrecision is the number of fraction digits kept by DefaultConfig.
	// Every Config rounds; there is no unrounded mode.
	DefaultPrecision = 2
	// MaxPrecision bounds Precision; a float64 carries no more significant digits.
	MaxPrecision = 15
)

// Settings is the loosely-typed, user-facing form of a Config. It is what
// config files, environment variables and flags unmarshal into; Build turns
// it into a validated Config.
type Settings struct {
	System    string `mapstructure:"system" json:"system" validate:"required,oneof=decimal binary si iec 1000 1024"`
	Precision int    `mapstructure:"precision" json:"precision" validate:"gte=0,lte=15"`
	// MinUnit and MaxUnit are a ladder index ("0".."6") or a unit symbol of
	// System ("kB", "MiB"). Empty means unbounded.
	MinUnit string `mapstructure:"min_unit" json:"min_unit,omitempty"`
	MaxUnit string `mapstructure:"max_unit" json:"max_unit,omitempty"`
	Signed  bool   `mapstructure:"signed" json:"signed"`
}

// DefaultSettings mirrors DefaultConfig.
func DefaultSettings() Settings {
	return Settings{
		System:    units.Decimal.String(),
		Precision: DefaultPrecision,
	}
}

// Config is an immutable conversion policy. Every Config value is usable:
// the only way to set its fields is through Build/NewConfig, which validate.
// The zero Config is decimal with no fraction digits and no unit band.
type Config struct {
	system    units.System
	precision int
	band      struct {
		set    bool
		lo, hi int
	}
	signed bool
}

// DefaultConfig is decimal units, two fraction digits, auto-selected unit, unsigned.
func DefaultConfig() Config {
	return Config{system: units.Decimal, precision: DefaultPrecision}
}

// Option adjusts Settings before they are built into a Config.
type Option func(*Settings)

// WithSystem selects the decimal or binary ladder.
func WithSystem(s units.System) Option {
	return func(st *Settings) { st.System = s.String() }
}

// WithPrecision sets the number of fraction digits kept after rounding.
func WithPrecision(p int) Option {
	return func(st *Settings) { st.Precision = p }
}

// WithMinUnit keeps results at or above u.
func WithMinUnit(u units.Unit) Option {
	return func(st *Settings) { st.MinUnit = u.Symbol() }
}

// WithMaxUnit keeps results at or below u.
func WithMaxUnit(u units.Unit) Option {
	return func(st *Settings) { st.MaxUnit = u.Symbol() }
}

// WithSigned prefixes formatted non-negative values with a sign column.
func WithSigned(signed bool) Option {
	return func(st *Settings) { st.Signed = signed }
}

// NewConfig applies opts on top of DefaultSettings and builds the result.
func NewConfig(opts ...Option) (Config, error) {
	st := DefaultSettings()
	for _, opt := range opts {
		opt(&st)
	}
	return st.Build()
}

// Build validates s and returns the equivalent Config. Every failure wraps
// apperrors.ErrInvalidConfig.
func (s Settings) Build() (Config, error) {
	s.System = strings.ToLower(strings.TrimSpace(s.System))
	if err := validator.Validate(s); err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrInvalidConfig, err, "settings")
	}
	system, err := units.ParseSystem(s.System)
	if err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrInvalidConfig, err, "system")
	}

	c := Config{system: system, precision: s.Precision, signed: s.Signed}
	lo, err := resolveUnit(system, s.MinUnit, 0)
	if err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrInvalidConfig, err, "min_unit")
	}
	hi, err := resolveUnit(system, s.MaxUnit, units.MaxIndex)
	if err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrInvalidConfig, err, "max_unit")
	}
	if lo > hi {
		return Config{}, apperrors.Wrap(apperrors.ErrInvalidConfig, nil,
			"min_unit %s is above max_unit %s", ladderSymbol(system, lo), ladderSymbol(system, hi))
	}
	if lo != 0 || hi != units.MaxIndex {
		c.band.set = true
		c.band.lo, c.band.hi = lo, hi
	}
	return c, nil
}

// resolveUnit maps a ladder index or unit symbol to an index on system's ladder.
func resolveUnit(system units.System, ref string, def int) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return def, nil
	}
	if i, err := strconv.Atoi(ref); err == nil {
		if i < 0 || i > units.MaxIndex {
			return 0, fmt.Errorf("index %d outside ladder [0,%d]", i, units.MaxIndex)
		}
		return i, nil
	}
	u, ok := units.ParseUnit(ref)
	if !ok || !u.In(system) {
		return 0, fmt.Errorf("unit %q is not on the %s ladder", ref, system)
	}
	return u.Index(), nil
}

func ladderSymbol(system units.System, i int) string {
	u, err := system.Unit(i)
	if err != nil {
		return strconv.Itoa(i)
	}
	return u.Symbol()
}

// System returns the unit system in effect.
func (c Config) System() units.System { return c.system }

// Precision returns the number of fraction digits kept.
func (c Config) Precision() int { return c.precision }

// Signed reports whether Format emits a sign column for non-negative values.
func (c Config) Signed() bool { return c.signed }

// UnitRange returns the lowest and highest unit a conversion may select.
func (c Config) UnitRange() (min, max units.Unit) {
	lo, hi := c.bounds()
	min, _ = c.system.Unit(lo)
	max, _ = c.system.Unit(hi)
	return min, max
}

func (c Config) bounds() (lo, hi int) {
	if !c.band.set {
		return 0, units.MaxIndex
	}
	return c.band.lo, c.band.hi
}

// Settings returns the user-facing form of c; Build on the result yields c.
func (c Config) Settings() Settings {
	st := Settings{System: c.system.String(), Precision: c.precision, Signed: c.signed}
	if c.band.set {
		st.MinUnit = ladderSymbol(c.system, c.band.lo)
		st.MaxUnit = ladderSymbol(c.system, c.band.hi)
	}
	return st
}

func pick(cfgs []Config) Config {
	if len(cfgs) == 0 {
		return DefaultConfig()
	}
	return cfgs[0]
}
