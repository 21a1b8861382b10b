// Package errors implements the structured error model returned by the
// govalid schema compiler and validation runtime: a single Invalid value
// describing one failed path, and a Multiple aggregate that never nests.
package errors

import (
	"fmt"
	"strings"
)

// Path is a sequence of map keys and/or slice indices describing where in
// a validated document an error occurred. Elements are rendered with
// fmt.Sprint when the path needs to become a string.
type Path []interface{}

// Copy returns an independent copy of p so callers can prepend to it
// without mutating the original backing array.
func (p Path) Copy() Path {
	if len(p) == 0 {
		return nil
	}
	cp := make(Path, len(p))
	copy(cp, p)
	return cp
}

// String renders the path the way govalid's tests expect it: every
// element, map key or index alike, joined by dots, e.g. "a.b.2.c".
func (p Path) String() string {
	var b strings.Builder
	for i, elem := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		fmt.Fprint(&b, elem)
	}
	return b.String()
}

// Invalid describes a single validation failure at a specific Path.
// Expected and Provided are short, stable descriptions of what the
// validator wanted versus what it was given; they are never localized.
type Invalid struct {
	Message   string
	Expected  string
	Provided  string
	Path      Path
	Validator interface{}
	Info      map[string]interface{}
}

// New builds an Invalid. path is retained as-is (callers that need to
// keep mutating their own slice should pass path.Copy()).
func New(message, expected, provided string, path Path, validator interface{}) *Invalid {
	return &Invalid{
		Message:   message,
		Expected:  expected,
		Provided:  provided,
		Path:      path,
		Validator: validator,
	}
}

// NewWithInfo is New plus an attached Info map for validators that want to
// carry extra machine-readable context (e.g. a Range validator attaching
// its bounds).
func NewWithInfo(message, expected, provided string, path Path, validator interface{}, info map[string]interface{}) *Invalid {
	e := New(message, expected, provided, path, validator)
	e.Info = info
	return e
}

// Error implements the error interface.
func (e *Invalid) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s @ data[%s]", e.Message, e.Path.String())
}

// clone returns a shallow copy of e with an independent Path slice.
func (e *Invalid) clone() *Invalid {
	cp := *e
	cp.Path = e.Path.Copy()
	return &cp
}

// EnrichOption mutates an Invalid being enriched by an enclosing
// validator. Options only ever fill in zero-value fields except
// WithPrefix, which always prepends to Path.
type EnrichOption func(*Invalid)

// WithPrefix prepends prefix to the error's Path. Unlike the other
// options it always applies, since a path segment is positional
// information the inner validator could never have known.
func WithPrefix(prefix Path) EnrichOption {
	return func(e *Invalid) {
		if len(prefix) == 0 {
			return
		}
		e.Path = append(prefix.Copy(), e.Path...)
	}
}

// WithExpected fills Expected if it is still empty.
func WithExpected(expected string) EnrichOption {
	return func(e *Invalid) {
		if e.Expected == "" {
			e.Expected = expected
		}
	}
}

// WithProvided fills Provided if it is still empty.
func WithProvided(provided string) EnrichOption {
	return func(e *Invalid) {
		if e.Provided == "" {
			e.Provided = provided
		}
	}
}

// WithValidator fills Validator if it is still nil.
func WithValidator(v interface{}) EnrichOption {
	return func(e *Invalid) {
		if e.Validator == nil {
			e.Validator = v
		}
	}
}

// WithMessage fills Message if it is still empty.
func WithMessage(message string) EnrichOption {
	return func(e *Invalid) {
		if e.Message == "" {
			e.Message = message
		}
	}
}

// Enrich returns a new Invalid with opts applied in order; e itself is
// left untouched.
func (e *Invalid) Enrich(opts ...EnrichOption) *Invalid {
	cp := e.clone()
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

// Multiple aggregates more than one Invalid produced while validating a
// single value (e.g. every rejected key in a mapping). It never contains
// another Multiple; Append keeps that invariant.
type Multiple struct {
	errs []*Invalid
}

// NewMultiple builds a Multiple out of errs, flattening any Multiple
// found among them and dropping nils. It may return fewer than
// len(errs) entries.
func NewMultiple(errs ...error) *Multiple {
	m := &Multiple{}
	for _, err := range errs {
		m.absorb(err)
	}
	return m
}

func (m *Multiple) absorb(err error) {
	if err == nil {
		return
	}
	switch e := err.(type) {
	case *Multiple:
		m.errs = append(m.errs, e.errs...)
	case *Invalid:
		m.errs = append(m.errs, e)
	default:
		m.errs = append(m.errs, New(err.Error(), "", "", nil, nil))
	}
}

// Errors returns a defensive copy of the aggregated Invalid values.
func (m *Multiple) Errors() []*Invalid {
	out := make([]*Invalid, len(m.errs))
	copy(out, m.errs)
	return out
}

// Error implements the error interface by joining every member's Error().
func (m *Multiple) Error() string {
	parts := make([]string, len(m.errs))
	for i, e := range m.errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Enrich re-broadcasts opts to every member and returns a new Multiple.
func (m *Multiple) Enrich(opts ...EnrichOption) *Multiple {
	out := &Multiple{errs: make([]*Invalid, len(m.errs))}
	for i, e := range m.errs {
		out.errs[i] = e.Enrich(opts...)
	}
	return out
}

// Append is the single accumulation point used throughout govalid: it
// flattens any Multiple among errs, drops nils, collapses to a bare
// *Invalid if exactly one error remains, and otherwise wraps the rest in
// a *Multiple. It never returns a one-element Multiple and never nests
// one Multiple inside another.
func Append(errs ...error) error {
	m := NewMultiple(errs...)
	switch len(m.errs) {
	case 0:
		return nil
	case 1:
		return m.errs[0]
	default:
		return m
	}
}

// Equal reports whether two errors describe the same failure. Validator
// is compared via fmt.Sprint since it may hold a non-comparable func
// value; Path elements are compared the same way.
func (e *Invalid) Equal(other error) bool {
	o, ok := other.(*Invalid)
	if !ok {
		return false
	}
	if e.Message != o.Message || e.Expected != o.Expected || e.Provided != o.Provided {
		return false
	}
	if len(e.Path) != len(o.Path) {
		return false
	}
	for i := range e.Path {
		if fmt.Sprint(e.Path[i]) != fmt.Sprint(o.Path[i]) {
			return false
		}
	}
	return fmt.Sprint(e.Validator) == fmt.Sprint(o.Validator)
}

// Equal reports whether two Multiple values contain the same set of
// Invalid errors, in the same order.
func (m *Multiple) Equal(other error) bool {
	o, ok := other.(*Multiple)
	if !ok {
		return false
	}
	if len(m.errs) != len(o.errs) {
		return false
	}
	for i := range m.errs {
		if !m.errs[i].Equal(o.errs[i]) {
			return false
		}
	}
	return true
}
