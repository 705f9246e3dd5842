package units

import (
	"errors"
	"fmt"
	"strings"
)

// System selects the base used to step between adjacent units.
type System int

const (
	Decimal System = iota // 1000-based: B, kB, MB, ...
	Binary                // 1024-based: B, KiB, MiB, ...
)

// MaxIndex is the highest ladder index (EB / EiB). Larger exponents clamp to it.
const MaxIndex = 6

// ErrUnknownSystem is returned when a unit system name or value is not recognized.
var ErrUnknownSystem = errors.New("unknown unit system")

// Base returns the numeric factor between adjacent units (1000 or 1024).
// It returns 0 for an unknown system.
func (s System) Base() uint64 {
	switch s {
	case Decimal:
		return 1000
	case Binary:
		return 1024
	default:
		return 0
	}
}

// Valid reports whether s is one of the supported systems.
func (s System) Valid() bool {
	return s == Decimal || s == Binary
}

func (s System) String() string {
	switch s {
	case Decimal:
		return "decimal"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSystem, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *System) UnmarshalText(b []byte) error {
	v, err := ParseSystem(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSystem accepts "decimal"/"si"/"1000" and "binary"/"iec"/"1024", case-insensitively.
func ParseSystem(v string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "decimal", "si", "1000":
		return Decimal, nil
	case "binary", "iec", "1024":
		return Binary, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: decimal|binary)", ErrUnknownSystem, v)
	}
}

// Unit is a single rung of a ladder. Byte is shared by both systems.
type Unit uint8

const (
	Byte Unit = iota
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
	Exabyte
	Kibibyte
	Mebibyte
	Gibibyte
	Tebibyte
	Pebibyte
	Exbibyte
	numUnits
)

type unitInfo struct {
	symbol string
	name   string
	index  int
	scale  uint64
}

var unitTable = [numUnits]unitInfo{
	Byte:     {"B", "byte", 0, 1},
	Kilobyte: {"kB", "kilobyte", 1, 1e3},
	Megabyte: {"MB", "megabyte", 2, 1e6},
	Gigabyte: {"GB", "gigabyte", 3, 1e9},
	Terabyte: {"TB", "terabyte", 4, 1e12},
	Petabyte: {"PB", "petabyte", 5, 1e15},
	Exabyte:  {"EB", "exabyte", 6, 1e18},
	Kibibyte: {"KiB", "kibibyte", 1, 1 << 10},
	Mebibyte: {"MiB", "mebibyte", 2, 1 << 20},
	Gibibyte: {"GiB", "gibibyte", 3, 1 << 30},
	Tebibyte: {"TiB", "tebibyte", 4, 1 << 40},
	Pebibyte: {"PiB", "pebibyte", 5, 1 << 50},
	Exbibyte: {"EiB", "exbibyte", 6, 1 << 60},
}

var ladders = [2][MaxIndex + 1]Unit{
	Decimal: {Byte, Kilobyte, Megabyte, Gigabyte, Terabyte, Petabyte, Exabyte},
	Binary:  {Byte, Kibibyte, Mebibyte, Gibibyte, Tebibyte, Pebibyte, Exbibyte},
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool { return u < numUnits }

// Symbol returns the short symbol, e.g. "kB" or "MiB".
func (u Unit) Symbol() string {
	if !u.Valid() {
		return ""
	}
	return unitTable[u].symbol
}

// Name returns the long singular name, e.g. "kilobyte".
func (u Unit) Name() string {
	if !u.Valid() {
		return ""
	}
	return unitTable[u].name
}

// Index is the position of u on its ladder; Byte is 0.
func (u Unit) Index() int {
	if !u.Valid() {
		return -1
	}
	return unitTable[u].index
}

// Scale is the number of bytes in one u.
func (u Unit) Scale() uint64 {
	if !u.Valid() {
		return 0
	}
	return unitTable[u].scale
}

// In reports whether u is on the ladder of s.
func (u Unit) In(s System) bool {
	if !s.Valid() || !u.Valid() {
		return false
	}
	return ladders[s][u.Index()] == u
}

func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return u.Symbol()
}

// MarshalText encodes the unit as its symbol.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("unknown unit %d", uint8(u))
	}
	return []byte(u.Symbol()), nil
}

// UnmarshalText decodes a unit symbol from either ladder.
func (u *Unit) UnmarshalText(b []byte) error {
	v, ok := Lookup(string(b))
	if !ok {
		return fmt.Errorf("unknown unit symbol %q", string(b))
	}
	*u = v
	return nil
}

// Ladder returns the ordered units of s. The returned slice is a copy.
func Ladder(s System) []Unit {
	if !s.Valid() {
		return nil
	}
	out := make([]Unit, len(ladders[s]))
	copy(out, ladders[s][:])
	return out
}

// Unit returns the unit at ladder index i.
func (s System) Unit(i int) (Unit, error) {
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSystem, int(s))
	}
	if i < 0 || i > MaxIndex {
		return 0, fmt.Errorf("unit index %d out of range [0,%d]", i, MaxIndex)
	}
	return ladders[s][i], nil
}

// ScaleFactor returns base(s)^i, or 0 when s or i is out of range.
func ScaleFactor(s System, i int) uint64 {
	u, err := s.Unit(i)
	if err != nil {
		return 0
	}
	return u.Scale()
}

// Lookup finds a unit by its exact symbol across both ladders.
func Lookup(symbol string) (Unit, bool) {
	for u := Unit(0); u < numUnits; u++ {
		if unitTable[u].symbol == symbol {
			return u, true
		}
	}
	return 0, false
}

// ParseUnit is Lookup for hand-typed input: it also accepts "KB" for
// kilobyte. Serialized records go through Lookup.
func ParseUnit(symbol string) (Unit, bool) {
	if symbol == "KB" {
		return Kilobyte, true
	}
	return Lookup(symbol)
}

// LookupIn is Lookup restricted to the ladder of s.
func LookupIn(s System, symbol string) (Unit, bool) {
	u, ok := Lookup(symbol)
	if !ok || !u.In(s) {
		return 0, false
	}
	return u, true
}
