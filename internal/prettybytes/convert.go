// Package prettybytes converts byte counts into a unit-scaled value while
// keeping the exact count for precision-safe serialization.
//
// Rounding is round-half-to-even at Config.Precision fraction digits,
// computed on the exact quotient raw/scale. A value that rounds up to the
// ladder base is promoted to the next unit, so 999995 bytes at two digits is
// "1.00 MB", never "1000.00 kB".
package prettybytes

import (
	"prettybytes/internal/units"
	"prettybytes/internal/util/numeric"
)

// Convert scales raw into the unit chosen by cfg (DefaultConfig when
// omitted). Only the first cfg is used. Convert never fails: every uint64 is
// valid input and every Config is valid by construction.
func Convert(raw uint64, cfg ...Config) PrettyBytes {
	m := pick(cfg).scale(raw)
	return PrettyBytes{Raw: raw, Value: m.value.Float64(), Unit: m.unit}
}

type magnitude struct {
	value numeric.Fixed
	unit  units.Unit
}

// scale is the unit selection algorithm shared by Convert, ConvertDelta and Format.
func (c Config) scale(raw uint64) magnitude {
	if raw == 0 {
		return magnitude{value: numeric.Fixed{Digits: c.precision}, unit: units.Byte}
	}

	base := c.system.Base()
	lo, hi := c.bounds()
	e := numeric.Clamp(naturalExponent(c.system, raw), lo, hi)
	for {
		v := numeric.RoundQuo(raw, units.ScaleFactor(c.system, e), c.precision)
		if v.AtLeast(base) && e < hi {
			e++
			continue
		}
		u, _ := c.system.Unit(e)
		return magnitude{value: v, unit: u}
	}
}

// naturalExponent is floor(log_base(raw)) capped at units.MaxIndex, found by
// comparing against exact scale factors rather than with a float logarithm.
func naturalExponent(s units.System, raw uint64) int {
	e := 0
	for e < units.MaxIndex && raw >= units.ScaleFactor(s, e+1) {
		e++
	}
	return e
}
