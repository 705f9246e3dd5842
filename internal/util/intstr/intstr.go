// Package intstr carries 64-bit integers through encodings whose number type
// cannot hold them exactly (JSON consumers limited to float64, for example).
// Values are written as base-10 text via encoding.TextMarshaler, so every
// encoder that honors that interface emits a string rather than a number.
package intstr

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// ErrSyntax is returned when the text is not a plain base-10 integer.
var ErrSyntax = errors.New("not a base-10 integer")

// ErrRange is returned when the value does not fit in 64 bits.
var ErrRange = errors.New("integer out of 64-bit range")

// Uint64 is a uint64 encoded as decimal text.
type Uint64 uint64

// Int64 is an int64 encoded as decimal text.
type Int64 int64

// ParseUint64 accepts only ASCII digits: no sign, no spaces, no underscores.
func ParseUint64(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return v, classify(s, err)
}

// ParseInt64 accepts an optional leading '-' followed by ASCII digits.
func ParseInt64(s string) (int64, error) {
	if len(s) > 0 && s[0] == '+' {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	return v, classify(s, err)
}

func classify(s string, err error) error {
	if err == nil {
		return nil
	}
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q", ErrRange, s)
	}
	return fmt.Errorf("%w: %q", ErrSyntax, s)
}

func (v Uint64) String() string { return strconv.FormatUint(uint64(v), 10) }

// MarshalText implements encoding.TextMarshaler.
func (v Uint64) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(v), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Uint64) UnmarshalText(b []byte) error {
	n, err := ParseUint64(string(b))
	if err != nil {
		return err
	}
	*v = Uint64(n)
	return nil
}

// UnmarshalJSON rejects bare JSON numbers so a value that already passed
// through a float64 cannot be silently accepted.
func (v *Uint64) UnmarshalJSON(b []byte) error {
	s, err := unquote(b)
	if err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

func (v Int64) String() string { return strconv.FormatInt(int64(v), 10) }

// MarshalText implements encoding.TextMarshaler.
func (v Int64) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(v), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Int64) UnmarshalText(b []byte) error {
	n, err := ParseInt64(string(b))
	if err != nil {
		return err
	}
	*v = Int64(n)
	return nil
}

// UnmarshalJSON rejects bare JSON numbers, see Uint64.UnmarshalJSON.
func (v *Int64) UnmarshalJSON(b []byte) error {
	s, err := unquote(b)
	if err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

func unquote(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return "", fmt.Errorf("%w: expected a JSON string, got %s", ErrSyntax, b)
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSyntax, b)
	}
	return s, nil
}
