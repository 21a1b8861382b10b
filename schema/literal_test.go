package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goverrors "github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/schema"
)

func TestLiteralMatchesExactValue(t *testing.T) {
	v := schema.MustCompile("hello")
	out, err := v.Validate("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestLiteralWrongTypeError(t *testing.T) {
	v := schema.MustCompile(1)
	_, err := v.Validate("1")
	require.Error(t, err)
	inv, ok := err.(*goverrors.Invalid)
	require.True(t, ok)
	assert.Equal(t, "Wrong value type", inv.Message)
}

func TestLiteralWrongValueError(t *testing.T) {
	v := schema.MustCompile(1)
	_, err := v.Validate(2)
	require.Error(t, err)
	inv := err.(*goverrors.Invalid)
	assert.Equal(t, "Invalid value", inv.Message)
}

func TestLiteralWrongValueErrorReportsPlainStrings(t *testing.T) {
	// Mirrors scenario 1: a literal-string mismatch reports Expected/
	// Provided as plain text ("f"/"m"), never quoted ("f"/"m" with
	// quote marks), since these fields use str() semantics, not repr().
	v := schema.MustCompile("f")
	_, err := v.Validate("m")
	require.Error(t, err)
	inv := err.(*goverrors.Invalid)
	assert.Equal(t, "Invalid value", inv.Message)
	assert.Equal(t, "f", inv.Expected)
	assert.Equal(t, "m", inv.Provided)
}

func TestLiteralNil(t *testing.T) {
	v := schema.MustCompile(nil)
	out, err := v.Validate(nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	_, err = v.Validate("x")
	require.Error(t, err)
}
