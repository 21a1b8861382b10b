package predicates

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/schema"
	"github.com/fsvxavier/govalid/types"
)

// In accepts any value deeply equal to one of allowed, in any order.
func In(allowed ...interface{}) schema.NamedCallable {
	reprs := make([]string, len(allowed))
	for i, a := range allowed {
		reprs[i] = types.Repr(a)
	}
	sort.Strings(reprs)
	name := "In(" + strings.Join(reprs, ",") + ")"

	return schema.WithName(name, func(value interface{}) (interface{}, error) {
		for _, a := range allowed {
			if reflect.DeepEqual(a, value) {
				return value, nil
			}
		}
		return nil, errors.New("Unsupported value", name, types.Str(value), nil, nil)
	})
}

// Coerce converts value to the type fn returns, via fn (a one-argument
// function) or via reflect.Type's own convertibility when fn is a
// reflect.Type. A "*" prefixes the display name, matching py-good's
// Coerce() convention.
func Coerce(fn interface{}) schema.NamedCallable {
	if t, ok := fn.(reflect.Type); ok {
		name := "*" + types.NameOf(t)
		return schema.WithName(name, func(value interface{}) (interface{}, error) {
			if value == nil {
				return nil, errors.New("Wrong value", name, types.NameOfValue(value), nil, nil)
			}
			if out, ok := parseStringToNumeric(value, t); ok {
				return out, nil
			}
			rv := reflect.ValueOf(value)
			if !rv.Type().ConvertibleTo(t) {
				return nil, errors.New("Wrong value", name, types.NameOfValue(value), nil, nil)
			}
			return rv.Convert(t).Interface(), nil
		})
	}

	inner := schema.MustCompile(fn)
	name := "*" + inner.Name()
	return schema.WithName(name, func(value interface{}) (interface{}, error) {
		out, err := inner.Apply(nil, value)
		if err != nil {
			switch e := err.(type) {
			case *errors.Invalid:
				return nil, e.Enrich(errors.WithExpected(name))
			default:
				return nil, errors.New(err.Error(), name, types.Str(value), nil, nil)
			}
		}
		return out, nil
	})
}

// parseStringToNumeric handles the one case Go's own ConvertibleTo
// refuses that py-good's Coerce(int)/Coerce(float) still accepts: a
// string holding a numeric literal, parsed the way Python's int()/
// float() built-ins would rather than truncated to a rune.
func parseStringToNumeric(value interface{}, t reflect.Type) (interface{}, bool) {
	s, ok := value.(string)
	if !ok {
		return nil, false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, false
		}
		return reflect.ValueOf(n).Convert(t).Interface(), true
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, false
		}
		return reflect.ValueOf(n).Convert(t).Interface(), true
	default:
		return nil, false
	}
}

