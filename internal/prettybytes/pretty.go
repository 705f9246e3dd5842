package prettybytes

import (
	"strconv"

	"prettybytes/internal/units"
)

// PrettyBytes is the result of a conversion. Raw is the untouched input;
// Value is Raw divided by Unit.Scale(), rounded to the configured precision.
type PrettyBytes struct {
	Raw   uint64
	Value float64
	Unit  units.Unit
}

// String renders the value in its shortest form, e.g. "1.5 kB" or "1 MiB".
func (p PrettyBytes) String() string {
	return strconv.FormatFloat(p.Value, 'f', -1, 64) + " " + p.Unit.Symbol()
}

// Delta is the signed counterpart of PrettyBytes for byte differences.
// Value carries the sign of Raw.
type Delta struct {
	Raw   int64
	Value float64
	Unit  units.Unit
}

// ConvertDelta converts the magnitude of d exactly as Convert would and
// reapplies the sign.
func ConvertDelta(d int64, cfg ...Config) Delta {
	m := pick(cfg).scale(magnitudeOf(d))
	v := m.value.Float64()
	if d < 0 {
		v = -v
	}
	return Delta{Raw: d, Value: v, Unit: m.unit}
}

func (d Delta) String() string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + " " + d.Unit.Symbol()
}

// magnitudeOf returns |d|, including for math.MinInt64.
func magnitudeOf(d int64) uint64 {
	if d < 0 {
		return uint64(-(d + 1)) + 1
	}
	return uint64(d)
}

// Format renders raw with exactly Precision fraction digits, e.g. "1.50 kB".
// Whole bytes are printed without a fraction. With Signed set, positive
// values get a '+' and zero gets a space so columns of deltas line up.
func (c Config) Format(raw uint64) string {
	sign := ""
	if c.signed {
		sign = "+"
		if raw == 0 {
			sign = " "
		}
	}
	return sign + c.text(raw)
}

// FormatDelta is Format for signed differences; negatives always get '-'.
func (c Config) FormatDelta(d int64) string {
	if d < 0 {
		return "-" + c.text(magnitudeOf(d))
	}
	return c.Format(uint64(d))
}

func (c Config) text(raw uint64) string {
	m := c.scale(raw)
	v := m.value
	if m.unit == units.Byte {
		v.Digits, v.Frac = 0, 0
	}
	return v.String() + " " + m.unit.Symbol()
}
