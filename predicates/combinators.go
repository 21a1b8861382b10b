// Package predicates provides the reusable validator/sanitizer building
// blocks govalid schemas compose - Coerce, In, Length, Default/Fallback,
// Any/All/Neither, Msg, Range/Clamp, string and date/file checks -
// grounded on py-good's good.validators.* module this engine's schema
// semantics were distilled from.
package predicates

import (
	"fmt"
	"strings"

	"github.com/fsvxavier/govalid/config"
	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/schema"
	"github.com/fsvxavier/govalid/types"
)

// Any compiles each alternative with opts and returns a validator
// accepting the first one that matches, trying them in order.
func Any(opts []config.Option, alts ...interface{}) schema.NamedCallable {
	compiled := compileAll(alts, opts)
	names := make([]string, len(compiled))
	for i, c := range compiled {
		names[i] = c.Name()
	}
	name := "Any(" + strings.Join(names, "|") + ")"

	return schema.WithName(name, func(value interface{}) (interface{}, error) {
		var errs []error
		for _, c := range compiled {
			out, err := c.Apply(nil, value)
			if err == nil {
				return out, nil
			}
			errs = append(errs, err)
		}
		return nil, errors.New("Invalid value", name, types.Str(value), nil, nil)
	})
}

// All compiles each step with opts and threads a value through every one
// of them in order, feeding each step's cleaned output to the next.
func All(opts []config.Option, steps ...interface{}) schema.NamedCallable {
	compiled := compileAll(steps, opts)
	names := make([]string, len(compiled))
	for i, c := range compiled {
		names[i] = c.Name()
	}
	name := "All(" + strings.Join(names, ",") + ")"

	return schema.WithName(name, func(value interface{}) (interface{}, error) {
		cur := value
		for _, c := range compiled {
			out, err := c.Apply(nil, cur)
			if err != nil {
				return nil, err
			}
			cur = out
		}
		return cur, nil
	})
}

// Neither compiles each alternative with opts and rejects value if any
// one of them matches - the inverse of Any.
func Neither(opts []config.Option, alts ...interface{}) schema.NamedCallable {
	compiled := compileAll(alts, opts)
	return schema.WithName("Neither(...)", func(value interface{}) (interface{}, error) {
		for _, c := range compiled {
			if _, err := c.Apply(nil, value); err == nil {
				return nil, errors.New("Value not allowed", "", types.Str(value), nil, nil)
			}
		}
		return value, nil
	})
}

// Msg overrides the error message of a single *errors.Invalid a wrapped
// schema produces, leaving its Expected/Provided/Path untouched. An
// *errors.Multiple from the wrapped schema is returned unchanged.
func Msg(inner interface{}, msg string, opts ...config.Option) schema.NamedCallable {
	c := compileOne(inner, opts)
	return schema.WithName(c.Name(), func(value interface{}) (interface{}, error) {
		out, err := c.Apply(nil, value)
		if err == nil {
			return out, nil
		}
		switch e := err.(type) {
		case *errors.Invalid:
			cp := *e
			cp.Message = msg
			return nil, &cp
		case *errors.Multiple:
			return nil, e
		default:
			return nil, errors.New(msg, c.Name(), types.Str(value), nil, nil)
		}
	})
}

// Maybe accepts value if it is nil, or if it matches inner.
func Maybe(inner interface{}, opts ...config.Option) schema.NamedCallable {
	c := compileOne(inner, opts)
	return schema.WithName("Maybe("+c.Name()+")", func(value interface{}) (interface{}, error) {
		if value == nil {
			return nil, nil
		}
		return c.Apply(nil, value)
	})
}

// Default produces value when the input is nil (commonly reached via a
// surrounding Any), and otherwise rejects everything - matching
// py-good's Default(), which only ever participates as one Any()
// alternative.
func Default(value interface{}) schema.NamedCallable {
	return schema.WithName(fmt.Sprintf("Default=%s", types.Repr(value)), func(in interface{}) (interface{}, error) {
		if in == nil {
			return value, nil
		}
		return nil, errors.New("Wrong value type", types.NameNone, types.NameOfValue(in), nil, nil)
	})
}

// Fallback is Default, but silently accepts (and discards) any input
// instead of only nil - matching py-good's Fallback().
func Fallback(value interface{}) schema.NamedCallable {
	return schema.WithName(fmt.Sprintf("Fallback=%s", types.Repr(value)), func(in interface{}) (interface{}, error) {
		return value, nil
	})
}

func compileAll(exprs []interface{}, opts []config.Option) []*schema.Validator {
	out := make([]*schema.Validator, len(exprs))
	for i, e := range exprs {
		out[i] = compileOne(e, opts)
	}
	return out
}

func compileOne(expr interface{}, opts []config.Option) *schema.Validator {
	return schema.MustCompile(expr, opts...)
}
