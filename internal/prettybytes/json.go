package prettybytes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"prettybytes/internal/apperrors"
	"prettybytes/internal/units"
	"prettybytes/internal/util/intstr"
)

// record is the wire shape shared by PrettyBytes and Delta. Raw goes through
// intstr so it is always a JSON string and survives float64-only consumers.
type record[T any] struct {
	Raw   T       `json:"raw"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// wireRecord is used for decoding; pointers detect missing fields.
type wireRecord[T any] struct {
	Raw   *T       `json:"raw"`
	Value *float64 `json:"value"`
	Unit  *string  `json:"unit"`
}

// MarshalJSON encodes p as {"raw":"<digits>","value":<number>,"unit":"<symbol>"}.
func (p PrettyBytes) MarshalJSON() ([]byte, error) {
	if err := checkOutgoing(p.Value, p.Unit); err != nil {
		return nil, err
	}
	return json.Marshal(record[intstr.Uint64]{Raw: intstr.Uint64(p.Raw), Value: p.Value, Unit: p.Unit.Symbol()})
}

// UnmarshalJSON decodes the record written by MarshalJSON. Errors wrap
// apperrors.ErrInvalidSerialized.
func (p *PrettyBytes) UnmarshalJSON(b []byte) error {
	raw, value, unit, err := decodeRecord[intstr.Uint64](b)
	if err != nil {
		return err
	}
	*p = PrettyBytes{Raw: uint64(raw), Value: value, Unit: unit}
	return nil
}

// MarshalJSON encodes d like PrettyBytes, with a possibly negative raw string.
func (d Delta) MarshalJSON() ([]byte, error) {
	if err := checkOutgoing(d.Value, d.Unit); err != nil {
		return nil, err
	}
	return json.Marshal(record[intstr.Int64]{Raw: intstr.Int64(d.Raw), Value: d.Value, Unit: d.Unit.Symbol()})
}

// UnmarshalJSON decodes the record written by Delta.MarshalJSON.
func (d *Delta) UnmarshalJSON(b []byte) error {
	raw, value, unit, err := decodeRecord[intstr.Int64](b)
	if err != nil {
		return err
	}
	*d = Delta{Raw: int64(raw), Value: value, Unit: unit}
	return nil
}

// Decode unmarshals a PrettyBytes record and additionally requires its unit
// to be on c's ladder.
func (c Config) Decode(data []byte) (PrettyBytes, error) {
	var p PrettyBytes
	if err := json.Unmarshal(data, &p); err != nil {
		return PrettyBytes{}, err
	}
	if !p.Unit.In(c.system) {
		return PrettyBytes{}, apperrors.Wrap(apperrors.ErrInvalidSerialized, nil,
			"unit %q is not on the %s ladder", p.Unit.Symbol(), c.system)
	}
	return p, nil
}

func checkOutgoing(v float64, u units.Unit) error {
	if !u.Valid() {
		return fmt.Errorf("prettybytes: cannot encode unknown unit %d", uint8(u))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("prettybytes: cannot encode value %v", v)
	}
	return nil
}

func decodeRecord[T any](b []byte) (raw T, value float64, unit units.Unit, err error) {
	var w wireRecord[T]
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&w); err != nil {
		err = apperrors.Wrap(apperrors.ErrInvalidSerialized, err, "record")
		return
	}
	switch {
	case w.Raw == nil:
		err = apperrors.Wrap(apperrors.ErrInvalidSerialized, nil, "missing field \"raw\"")
	case w.Value == nil:
		err = apperrors.Wrap(apperrors.ErrInvalidSerialized, nil, "missing field \"value\"")
	case w.Unit == nil:
		err = apperrors.Wrap(apperrors.ErrInvalidSerialized, nil, "missing field \"unit\"")
	}
	if err != nil {
		return
	}
	u, ok := units.Lookup(*w.Unit)
	if !ok {
		err = apperrors.Wrap(apperrors.ErrInvalidSerialized, nil, "unknown unit %q", *w.Unit)
		return
	}
	return *w.Raw, *w.Value, u, nil
}
