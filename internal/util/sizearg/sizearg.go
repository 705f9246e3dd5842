// Package sizearg parses byte counts typed by users: plain integers (exact
// over the whole uint64 range) or humanized sizes such as "1.5GB" or "10 MiB".
package sizearg

import (
	"math"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"

	"prettybytes/internal/apperrors"
	"prettybytes/internal/util/intstr"
)

const expectedForms = "want a byte count (1536) or a number with a unit (1.5GB, 10 MiB, 4KiB)"

// Size is a parsed argument. Negative sizes are deltas and always fit in an
// int64.
type Size struct {
	Bytes    uint64 // magnitude
	Negative bool
}

// Delta returns the signed value of a negative size.
func (s Size) Delta() int64 {
	if s.Bytes == 1<<63 {
		return math.MinInt64
	}
	return -int64(s.Bytes)
}

// Parse reads one size argument. Plain digit strings are parsed exactly;
// anything carrying a unit goes through go-humanize, which computes in
// float64 and so is exact only up to 2^53 bytes.
func Parse(arg string) (Size, error) {
	s := strings.TrimSpace(arg)
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimSpace(strings.TrimPrefix(s, "-"))
	if body == "" {
		return Size{}, apperrors.Wrap(apperrors.ErrInvalidInput, nil, "empty size %q", arg)
	}

	var n uint64
	if strings.IndexFunc(body, unicode.IsLetter) < 0 {
		v, err := intstr.ParseUint64(body)
		if err != nil {
			return Size{}, apperrors.Wrap(apperrors.ErrInvalidInput, err, "size %q", arg)
		}
		n = v
	} else {
		v, err := humanize.ParseBytes(body)
		if err != nil {
			return Size{}, apperrors.Wrap(apperrors.ErrInvalidInput, nil,
				"size %q: %s", arg, expectedForms)
		}
		n = v
	}

	if neg && n > 1<<63 {
		return Size{}, apperrors.Wrap(apperrors.ErrInvalidInput, nil, "delta %q does not fit in 64 bits", arg)
	}
	return Size{Bytes: n, Negative: neg && n != 0}, nil
}
