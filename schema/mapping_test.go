package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goverrors "github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/markers"
	"github.com/fsvxavier/govalid/schema"
	"github.com/fsvxavier/govalid/types"
)

func TestMappingRequiredKeyMissing(t *testing.T) {
	v := schema.MustCompile(schema.Map{
		{Key: markers.Required("name"), Value: schema.T[string]()},
	})
	_, err := v.Validate(map[interface{}]interface{}{})
	require.Error(t, err)
	inv := err.(*goverrors.Invalid)
	assert.Equal(t, "Required key not provided", inv.Message)
	assert.Equal(t, goverrors.Path{"name"}, inv.Path)
}

func TestMappingRequiredKeyMissingReportsPlainKeyAndSentinel(t *testing.T) {
	// Mirrors scenario 1: a missing required literal key reports Expected
	// as the plain key name (never quoted) and Provided as the "-none-"
	// sentinel, since nothing was actually supplied.
	v := schema.MustCompile(schema.Map{
		{Key: markers.Required("sex"), Value: schema.T[string]()},
	})
	_, err := v.Validate(map[interface{}]interface{}{})
	require.Error(t, err)
	inv := err.(*goverrors.Invalid)
	assert.Equal(t, "Required key not provided", inv.Message)
	assert.Equal(t, "sex", inv.Expected)
	assert.Equal(t, types.SentinelNone, inv.Provided)
}

func TestMappingOptionalKeyAbsentIsFine(t *testing.T) {
	v := schema.MustCompile(schema.Map{
		{Key: markers.Optional("name"), Value: schema.T[string]()},
	})
	out, err := v.Validate(map[interface{}]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, map[interface{}]interface{}{}, out)
}

func TestMappingRemoveKeyDropsEntrySilently(t *testing.T) {
	v := schema.MustCompile(schema.Map{
		{Key: markers.Remove("secret"), Value: schema.T[int]()},
	})
	out, err := v.Validate(map[interface{}]interface{}{"secret": "not even an int"})
	require.NoError(t, err)
	assert.Equal(t, map[interface{}]interface{}{}, out)
}

func TestMappingRejectKeySide(t *testing.T) {
	v := schema.MustCompile(schema.Map{
		{Key: markers.Reject("banned"), Value: schema.T[string]()},
	})
	_, err := v.Validate(map[interface{}]interface{}{"banned": "x"})
	require.Error(t, err)
	inv := err.(*goverrors.Invalid)
	assert.Equal(t, "Value rejected", inv.Message)
	assert.Equal(t, types.SentinelNone, inv.Expected)
	assert.Equal(t, "banned", inv.Provided)
}

func TestMappingRejectValueSide(t *testing.T) {
	v := schema.MustCompile(schema.Map{
		{Key: markers.Optional("legacy"), Value: markers.Reject("x")},
	})
	_, err := v.Validate(map[interface{}]interface{}{"legacy": "anything"})
	require.Error(t, err)
	inv := err.(*goverrors.Invalid)
	assert.Equal(t, "Value rejected", inv.Message)
	assert.Equal(t, types.SentinelNone, inv.Expected)
	assert.Equal(t, "anything", inv.Provided)
}

func TestMappingExtraCatchAll(t *testing.T) {
	v := schema.MustCompile(schema.Map{
		{Key: markers.Required("id"), Value: schema.T[int]()},
		{Key: markers.Extra, Value: schema.T[string]()},
	})
	out, err := v.Validate(map[interface{}]interface{}{"id": 1, "other": "x"})
	require.NoError(t, err)
	m := out.(map[interface{}]interface{})
	assert.Equal(t, 1, m["id"])
	assert.Equal(t, "x", m["other"])
}

func TestMappingDefaultExtraKeysRejected(t *testing.T) {
	v := schema.MustCompile(schema.Map{
		{Key: markers.Required("id"), Value: schema.T[int]()},
	})
	_, err := v.Validate(map[interface{}]interface{}{"id": 1, "other": "x"})
	require.Error(t, err)
	inv := err.(*goverrors.Invalid)
	assert.Equal(t, "Extra keys not allowed", inv.Message)
	assert.Equal(t, types.SentinelNone, inv.Expected)
	assert.Equal(t, "other", inv.Provided)
}

func TestMappingEntirePostValidatorRuns(t *testing.T) {
	max2keys := func(m map[interface{}]interface{}) (map[interface{}]interface{}, error) {
		if len(m) > 2 {
			return nil, assertErr("too many keys")
		}
		return m, nil
	}
	v := schema.MustCompile(schema.Map{
		{Key: markers.Extra, Value: schema.T[int]()},
		{Key: markers.Entire(max2keys), Value: nil},
	})
	_, err := v.Validate(map[interface{}]interface{}{"a": 1, "b": 2, "c": 3})
	require.Error(t, err)
}

func TestMappingPriorityLiteralBeforeType(t *testing.T) {
	// A literal key entry must claim its exact key before the type-keyed
	// entry gets a chance at it.
	v := schema.MustCompile(schema.Map{
		{Key: markers.Optional("id"), Value: schema.T[int]()},
		{Key: markers.Optional(schema.T[string]()), Value: schema.T[string]()},
	})
	out, err := v.Validate(map[interface{}]interface{}{"id": 5, "name": "x"})
	require.NoError(t, err)
	m := out.(map[interface{}]interface{})
	assert.Equal(t, 5, m["id"])
	assert.Equal(t, "x", m["name"])
}

func TestMappingWrongValueType(t *testing.T) {
	v := schema.MustCompile(schema.Map{
		{Key: markers.Required("x"), Value: schema.T[int]()},
	})
	_, err := v.Validate("not a map")
	require.Error(t, err)
}

type assertErrType string

func (e assertErrType) Error() string { return string(e) }

func assertErr(msg string) error { return assertErrType(msg) }
