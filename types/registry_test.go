package types_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsvxavier/govalid/types"
)

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, types.NameBoolean, types.NameOf(reflect.TypeOf(true)))
	assert.Equal(t, types.NameInt, types.NameOf(reflect.TypeOf(1)))
	assert.Equal(t, types.NameFloat, types.NameOf(reflect.TypeOf(1.5)))
	assert.Equal(t, types.NameString, types.NameOf(reflect.TypeOf("s")))
	assert.Equal(t, types.NameBinaryString, types.NameOf(reflect.TypeOf([]byte("s"))))
}

func TestBoolAndIntAreDisjoint(t *testing.T) {
	// Go's static type system keeps these apart without any extra check:
	// bool is never AssignableTo an int type and vice versa.
	boolType := reflect.TypeOf(true)
	intType := reflect.TypeOf(1)
	assert.False(t, boolType.AssignableTo(intType))
	assert.False(t, intType.AssignableTo(boolType))
}

func TestInferenceForUnregisteredTypes(t *testing.T) {
	type MyInt int
	assert.Equal(t, types.NameInt, types.NameOf(reflect.TypeOf(MyInt(0))))

	assert.Equal(t, types.NameList, types.NameOf(reflect.TypeOf([]int{})))
	assert.Equal(t, types.NameDictionary, types.NameOf(reflect.TypeOf(map[string]int{})))
}

func TestRegisterOverridesInference(t *testing.T) {
	type Widget struct{ N int }
	types.Register(reflect.TypeOf(Widget{}), "Widget")
	assert.Equal(t, "Widget", types.NameOf(reflect.TypeOf(Widget{})))
}

func TestRepr(t *testing.T) {
	assert.Equal(t, "None", types.Repr(nil))
	assert.Equal(t, "True", types.Repr(true))
	assert.Equal(t, "False", types.Repr(false))
	assert.Equal(t, "42", types.Repr(42))
	assert.Equal(t, `"hi"`, types.Repr("hi"))
}

func TestNameOfValueNil(t *testing.T) {
	assert.Equal(t, types.NameNone, types.NameOfValue(nil))
}

func TestStr(t *testing.T) {
	assert.Equal(t, "None", types.Str(nil))
	assert.Equal(t, "True", types.Str(true))
	assert.Equal(t, "False", types.Str(false))
	assert.Equal(t, "42", types.Str(42))
	assert.Equal(t, "hi", types.Str("hi"))
}
