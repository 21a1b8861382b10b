// Package govalid is a declarative data validation and sanitization
// engine: compile a schema expression once, then apply it to any number
// of input values to get back a cleaned value or a structured error.
//
// A schema expression is plain Go data - a literal, a reflect.Type tag
// from schema.T[X](), a schema.List/Set/Tuple, a schema.Map, or a
// one-argument function - optionally wrapped in a markers.Marker
// (Required, Optional, Remove, Reject, Allow, Extra, Entire) at mapping
// key or sequence element position. See the schema and markers packages
// for the full vocabulary.
package govalid

import (
	"github.com/fsvxavier/govalid/config"
	"github.com/fsvxavier/govalid/schema"
)

// Compile builds a reusable validator out of a schema expression.
func Compile(expr interface{}, opts ...config.Option) (*schema.Validator, error) {
	return schema.Compile(expr, opts...)
}

// MustCompile is Compile but panics on a malformed schema expression.
func MustCompile(expr interface{}, opts ...config.Option) *schema.Validator {
	return schema.MustCompile(expr, opts...)
}

// Validate compiles expr and immediately applies it to value, for
// one-shot validation where the schema isn't reused.
func Validate(expr interface{}, value interface{}, opts ...config.Option) (interface{}, error) {
	v, err := Compile(expr, opts...)
	if err != nil {
		return nil, err
	}
	return v.Validate(value)
}
