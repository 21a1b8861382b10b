package schema_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goverrors "github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/schema"
)

func upper(s string) (string, error) {
	return strings.ToUpper(s), nil
}

func positive(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("must be positive")
	}
	return n, nil
}

func TestCallableTransformsValue(t *testing.T) {
	v := schema.MustCompile(upper)
	out, err := v.Validate("abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)
}

func TestCallableErrorEnriched(t *testing.T) {
	v := schema.MustCompile(positive)
	_, err := v.Validate(-1)
	require.Error(t, err)
	inv := err.(*goverrors.Invalid)
	assert.Equal(t, "must be positive", inv.Message)
	assert.Equal(t, "positive()", inv.Expected)
	assert.Equal(t, "-1", inv.Provided)
}

func TestNamedCallableOverridesDisplayName(t *testing.T) {
	v := schema.MustCompile(schema.WithName("Trimmed", func(s string) (string, error) {
		return strings.TrimSpace(s), nil
	}))
	assert.Equal(t, "Trimmed", v.Name())
	out, err := v.Validate("  x  ")
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}

func TestCallablePanicPropagates(t *testing.T) {
	v := schema.MustCompile(func(s string) (string, error) {
		panic("boom")
	})
	assert.Panics(t, func() {
		_, _ = v.Validate("x")
	})
}

func TestCallableWrongArgType(t *testing.T) {
	v := schema.MustCompile(upper)
	_, err := v.Validate(42)
	require.Error(t, err)
	inv := err.(*goverrors.Invalid)
	assert.Equal(t, "Wrong type", inv.Message)
}
