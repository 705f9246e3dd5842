package apperrors

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	_, cause := strconv.ParseUint("abc", 10, 64)
	err := Wrap(ErrInvalidSerialized, cause, "raw %q", "abc")

	assert.True(t, IsInvalidSerialized(err))
	assert.False(t, IsInvalidConfig(err))
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), `raw "abc"`)
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrInvalidConfig, nil, "precision %d out of range", -1)

	assert.True(t, IsInvalidConfig(err))
	assert.Equal(t, "invalid configuration: precision -1 out of range", err.Error())
}

func TestIsInvalidInput(t *testing.T) {
	assert.True(t, IsInvalidInput(Wrap(ErrInvalidInput, nil, "size %q", "x")))
	assert.False(t, IsInvalidInput(errors.New("other")))
	assert.False(t, IsInvalidInput(nil))
}
