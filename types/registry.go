// Package types provides the stable, never-localized names and
// representations govalid's error messages use for Go types and values
// (e.g. reflect.TypeOf(0) renders as "Integer number", not "int").
package types

import (
	"fmt"
	"reflect"
	"sync"
)

// Canonical type names used verbatim in error messages.
const (
	NameNone         = "None"
	NameBoolean      = "Boolean"
	NameInt          = "Integer number"
	NameFloat        = "Fractional number"
	NameBinaryString = "Binary String"
	NameString       = "String"
	NameList         = "List"
	NameDictionary   = "Dictionary"

	// SentinelNone is the Expected/Provided placeholder used where py-good
	// has nothing meaningful to report - a required key that was never
	// supplied, a value rejected outright regardless of what it was.
	SentinelNone = "-none-"
)

var (
	mu    sync.RWMutex
	names = map[reflect.Type]string{}
)

func init() {
	Register(reflect.TypeOf(true), NameBoolean)
	Register(reflect.TypeOf(int(0)), NameInt)
	Register(reflect.TypeOf(int64(0)), NameInt)
	Register(reflect.TypeOf(int32(0)), NameInt)
	Register(reflect.TypeOf(float64(0)), NameFloat)
	Register(reflect.TypeOf(float32(0)), NameFloat)
	Register(reflect.TypeOf(""), NameString)
	Register(reflect.TypeOf([]byte(nil)), NameBinaryString)
}

// Register associates t with a stable display name, overriding whatever
// NameOf would otherwise infer for it. Callers compiling a schema.T[X]()
// for a domain type (e.g. a decimal.Decimal) should call this once at
// package init so error messages read naturally.
func Register(t reflect.Type, name string) {
	mu.Lock()
	defer mu.Unlock()
	names[t] = name
}

// NameOf returns t's registered name, or a Kind-based inference if none
// was registered.
func NameOf(t reflect.Type) string {
	if t == nil {
		return NameNone
	}
	mu.RLock()
	if n, ok := names[t]; ok {
		mu.RUnlock()
		return n
	}
	mu.RUnlock()

	switch t.Kind() {
	case reflect.Bool:
		return NameBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NameInt
	case reflect.Float32, reflect.Float64:
		return NameFloat
	case reflect.String:
		return NameString
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return NameBinaryString
		}
		return NameList
	case reflect.Map:
		return NameDictionary
	default:
		return t.String()
	}
}

// NameOfValue is NameOf applied to a value's dynamic type; nil maps to
// NameNone regardless of static type.
func NameOfValue(v interface{}) string {
	if v == nil {
		return NameNone
	}
	return NameOf(reflect.TypeOf(v))
}

// Repr renders v the way Python's repr() would: nil as "None", booleans
// capitalized, strings double-quoted as by %q, everything else via fmt. Use this
// for compiled display names (a literal schema's Name(), In(1,2,3)'s
// sorted argument list, Default=.../Fallback=...'s own name) - anywhere
// a value is being quoted back as source-like syntax rather than
// reported as the Expected/Provided field of an Invalid error.
func Repr(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Str renders v the way Python's str() would: nil as "None", booleans
// capitalized, strings verbatim with no quoting, everything else via
// fmt. Use this for an Invalid error's Expected/Provided fields, which
// report a value's plain textual form, not its quoted representation.
func Str(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
