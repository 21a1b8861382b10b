package schema

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/fsvxavier/govalid/config"
	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/govalidlog"
	"github.com/fsvxavier/govalid/types"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// compileCallable builds a Validator around fn, a one-argument function
// returning either (T) or (T, error). name overrides the derived display
// name when non-empty (schema.WithName / NamedCallable).
func compileCallable(fn reflect.Value, name string, cfg *config.Config) (*Validator, error) {
	ft := fn.Type()
	if ft.NumIn() != 1 {
		return nil, &invalidSchemaError{"callable schema must take exactly one argument"}
	}
	switch ft.NumOut() {
	case 1:
	case 2:
		if !ft.Out(1).Implements(errorType) {
			return nil, &invalidSchemaError{"callable schema's second return value must be error"}
		}
	default:
		return nil, &invalidSchemaError{"callable schema must return (T) or (T, error)"}
	}

	if name == "" {
		name = callableName(fn)
	}
	paramType := ft.In(0)

	return &Validator{
		kind:     KindCallable,
		name:     name,
		priority: PriorityCallable,
		apply: func(path errors.Path, value interface{}) (result interface{}, err error) {
			defer func() {
				if r := recover(); r != nil {
					cfg.Logger.Warn("callable schema panicked",
						govalidlog.F("validator", name),
						govalidlog.F("recovered", r),
					)
					panic(r)
				}
			}()

			arg, convErr := convertArg(value, paramType)
			if convErr != nil {
				return nil, errors.New("Wrong type", name, types.NameOfValue(value), path.Copy(), fn.Interface())
			}

			out := fn.Call([]reflect.Value{arg})

			var callErr error
			if len(out) == 2 && !out[1].IsNil() {
				callErr = out[1].Interface().(error)
			}
			if callErr != nil {
				return nil, enrichCallableError(callErr, name, value, path, fn.Interface())
			}
			return out[0].Interface(), nil
		},
	}, nil
}

// invalidSchemaError reports a malformed schema expression discovered at
// compile time, as distinct from a validation failure discovered at
// Apply time.
type invalidSchemaError struct{ msg string }

func (e *invalidSchemaError) Error() string { return e.msg }

func enrichCallableError(err error, name string, value interface{}, path errors.Path, validator interface{}) error {
	opts := []errors.EnrichOption{
		errors.WithPrefix(path),
		errors.WithExpected(name),
		errors.WithProvided(types.Str(value)),
		errors.WithValidator(validator),
	}
	switch e := err.(type) {
	case *errors.Multiple:
		return e.Enrich(opts...)
	case *errors.Invalid:
		return e.Enrich(opts...)
	default:
		return errors.New(err.Error(), name, types.Str(value), path.Copy(), validator)
	}
}

// convertArg adapts value to paramType where Go's own assignability or
// convertibility rules allow it; anything else is a compile-time-unknown
// mismatch the caller turns into a "Wrong type" error.
func convertArg(value interface{}, paramType reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch paramType.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(paramType), nil
		default:
			return reflect.Value{}, &invalidSchemaError{"nil not assignable to " + paramType.String()}
		}
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(paramType) {
		return rv, nil
	}
	if rv.Type().ConvertibleTo(paramType) && sameKindFamily(rv.Type(), paramType) {
		return rv.Convert(paramType), nil
	}
	return reflect.Value{}, &invalidSchemaError{"not assignable"}
}

// sameKindFamily restricts ConvertibleTo fallback to conversions within a
// kind family (numeric-to-numeric, string-to-string-based) so a callable
// parameter of, say, string doesn't silently accept an int (ConvertibleTo
// would otherwise allow it, turning the int into a one-rune string).
func sameKindFamily(from, to reflect.Type) bool {
	isNumeric := func(k reflect.Kind) bool {
		switch k {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return true
		default:
			return false
		}
	}
	if isNumeric(from.Kind()) && isNumeric(to.Kind()) {
		return true
	}
	return from.Kind() == to.Kind()
}

// callableName derives a short, stable display name for fn: the
// implemented Named interface takes priority, then the function's own
// runtime name, trimmed of its package qualifier and any "-fm" method
// value suffix.
func callableName(fn reflect.Value) string {
	if n, ok := fn.Interface().(Named); ok {
		return n.Name()
	}
	full := runtime.FuncForPC(fn.Pointer()).Name()
	if idx := strings.LastIndex(full, "."); idx >= 0 {
		full = full[idx+1:]
	}
	full = strings.TrimSuffix(full, "-fm")
	return full + "()"
}
