package schema

import (
	"reflect"
	"time"

	"github.com/fsvxavier/govalid/config"
	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/markers"
)

// Compile builds a *Validator out of a schema expression. Compilation
// never inspects input data - it only walks the shape of expr - so a
// compiled Validator can be reused (and shared across goroutines) for
// any number of Apply/Validate calls. When cfg.Metrics is set, the
// returned Validator's Apply is wrapped to report one observation per
// call to the root validator; validators compiled for nested schema
// positions (mapping values, sequence elements, ...) go through the
// unexported compile and are never individually instrumented.
func Compile(expr interface{}, opts ...config.Option) (*Validator, error) {
	cfg := config.New(opts...)
	v, err := compile(expr, cfg)
	if err != nil || cfg.Metrics == nil {
		return v, err
	}
	return instrument(v, cfg.Metrics), nil
}

// instrument wraps v.apply so every call reports to rec, labeled by v's
// own Name().
func instrument(v *Validator, rec config.MetricsRecorder) *Validator {
	inner := v.apply
	name := v.name
	wrapped := *v
	wrapped.apply = func(path errors.Path, value interface{}) (interface{}, error) {
		start := time.Now()
		out, err := inner(path, value)
		rec.Observe(name, time.Since(start), err)
		return out, err
	}
	return &wrapped
}

// MustCompile is Compile but panics on error, for schema expressions
// known at init time to be well-formed.
func MustCompile(expr interface{}, opts ...config.Option) *Validator {
	v, err := Compile(expr, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// compile classifies expr in the fixed order documented in
// SPEC_FULL.md §4.C: an already-compiled Validator passes through
// untouched (compilation is idempotent), a bare marker unwraps to its
// inner schema, reflect.Type becomes a type check, Map/map becomes a
// mapping, List/Set/Tuple (or, under LaxSequences, a bare slice/array)
// becomes a sequence, a callable (bare func or NamedCallable) becomes a
// predicate, a struct under Structs becomes a derived mapping, and
// anything else is a literal.
func compile(expr interface{}, cfg *config.Config) (*Validator, error) {
	if v, ok := expr.(*Validator); ok {
		return v, nil
	}

	if mk, ok := expr.(markers.Marker); ok {
		return compile(mk.Inner(), cfg)
	}

	if t, ok := expr.(reflect.Type); ok {
		return compileType(t), nil
	}

	if m, ok := expr.(Map); ok {
		return compileMapping(m, cfg)
	}
	if gm, ok := expr.(map[interface{}]interface{}); ok {
		return compileMapping(FromGoMap(gm), cfg)
	}

	if lst, ok := expr.(List); ok {
		return compileSequence(SeqList, []interface{}(lst), cfg)
	}
	if set, ok := expr.(Set); ok {
		return compileSequence(SeqSet, []interface{}(set), cfg)
	}
	if tup, ok := expr.(Tuple); ok {
		return compileSequence(SeqTuple, []interface{}(tup), cfg)
	}

	if nc, ok := expr.(NamedCallable); ok {
		return compileCallable(reflect.ValueOf(nc.Fn), nc.Name(), cfg)
	}

	if expr != nil {
		rv := reflect.ValueOf(expr)
		if rv.Kind() == reflect.Func {
			return compileCallable(rv, "", cfg)
		}
		if cfg.LaxSequences && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			elems := make([]interface{}, rv.Len())
			for i := range elems {
				elems[i] = rv.Index(i).Interface()
			}
			return compileSequence(SeqList, elems, cfg)
		}
		if cfg.Structs && rv.Kind() == reflect.Struct {
			return compileStruct(rv.Type(), cfg)
		}
	}

	return compileLiteral(expr), nil
}
