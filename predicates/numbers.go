package predicates

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"

	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/schema"
	"github.com/fsvxavier/govalid/types"
)

// toDecimal converts any signed integer or float kind (and a
// decimal.Decimal) to a decimal.Decimal for exact, type-agnostic bounds
// comparisons, avoiding float rounding at the edges of a Range/Clamp
// check. Unsigned integer kinds are not converted.
func toDecimal(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case float32:
		return decimal.NewFromFloat(float64(v)), true
	case float64:
		return decimal.NewFromFloat(v), true
	case decimal.Decimal:
		return v, true
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return decimal.NewFromInt(rv.Int()), true
		case reflect.Float32, reflect.Float64:
			return decimal.NewFromFloat(rv.Float()), true
		}
		return decimal.Decimal{}, false
	}
}

// Range accepts a numeric value within [min, max]; either bound may be
// nil for an open end.
func Range(min, max interface{}) schema.NamedCallable {
	name := rangeName("Range", min, max)
	return schema.WithName(name, func(value interface{}) (interface{}, error) {
		d, ok := toDecimal(value)
		if !ok {
			return nil, errors.New("Wrong type", "Number", types.NameOfValue(value), nil, nil)
		}
		if min != nil {
			if lo, ok := toDecimal(min); ok && d.LessThan(lo) {
				return nil, errors.New(fmt.Sprintf("Value must be >= %s", lo.String()), name, types.Str(value), nil, nil)
			}
		}
		if max != nil {
			if hi, ok := toDecimal(max); ok && d.GreaterThan(hi) {
				return nil, errors.New(fmt.Sprintf("Value must be <= %s", hi.String()), name, types.Str(value), nil, nil)
			}
		}
		return value, nil
	})
}

// Clamp is Range, but clamps out-of-bounds values to the nearest bound
// instead of rejecting them.
func Clamp(min, max interface{}) schema.NamedCallable {
	name := rangeName("Clamp", min, max)
	return schema.WithName(name, func(value interface{}) (interface{}, error) {
		d, ok := toDecimal(value)
		if !ok {
			return nil, errors.New("Wrong type", "Number", types.NameOfValue(value), nil, nil)
		}
		if min != nil {
			if lo, ok := toDecimal(min); ok && d.LessThan(lo) {
				return clampedValue(value, min), nil
			}
		}
		if max != nil {
			if hi, ok := toDecimal(max); ok && d.GreaterThan(hi) {
				return clampedValue(value, max), nil
			}
		}
		return value, nil
	})
}

func clampedValue(original, bound interface{}) interface{} {
	rv := reflect.ValueOf(bound)
	if rv.Type().ConvertibleTo(reflect.TypeOf(original)) {
		return rv.Convert(reflect.TypeOf(original)).Interface()
	}
	return bound
}

func rangeName(kind string, min, max interface{}) string {
	lo, hi := "-inf", "+inf"
	if min != nil {
		lo = types.Repr(min)
	}
	if max != nil {
		hi = types.Repr(max)
	}
	return fmt.Sprintf("%s(%s..%s)", kind, lo, hi)
}
