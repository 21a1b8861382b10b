// Package schema compiles schema expressions - literals, reflect.Type
// tags, callables, sequences and mappings - into a closed-enum
// *Validator tree, and applies that tree to arbitrary input values.
package schema

import (
	"reflect"

	"github.com/fsvxavier/govalid/errors"
)

// Kind is the closed set of schema expression shapes govalid compiles.
// Every *Validator, however deeply nested, reports one of these.
type Kind int

const (
	KindLiteral Kind = iota
	KindType
	KindCallable
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindType:
		return "type"
	case KindCallable:
		return "callable"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Priority values used for compiled validators. Required/Optional
// mapping-key markers add these to their band base (see markers.Priority)
// so that, within the Required/Optional priority band, literal keys are
// tried before type keys before callable keys - matching the matching
// order py-good uses.
const (
	PriorityLiteral  = 0
	PriorityType     = 10
	PriorityCallable = 20
	PrioritySequence = 30
	PriorityMapping  = 40
)

// Schema documents what compile.go accepts: any value reachable through
// the classification rules in Compile. There is no interface to
// implement; it exists purely as documentation for callers building
// schema expressions.
type Schema = interface{}

// Named lets a callable schema (usually wrapped in NamedCallable) report
// a display name used in place of its derived func name, mirroring
// py-good's optional name()/message() decorators.
type Named interface {
	Name() string
}

// Validator is a compiled schema node. It is immutable once returned
// from Compile and safe for concurrent use by multiple goroutines.
type Validator struct {
	kind     Kind
	name     string
	priority int
	apply    func(path errors.Path, value interface{}) (interface{}, error)
}

// Kind reports which schema shape this validator was compiled from.
func (v *Validator) Kind() Kind { return v.kind }

// Name is a short, stable description used in error messages and in
// composite validator names (e.g. a sequence's "List[1|2|String]" built
// from its alternatives' Names).
func (v *Validator) Name() string { return v.name }

// Priority orders this validator relative to others - used, via
// markers.Marker.Priority, to sort mapping entries. Sequence alternatives
// are tried in declaration order and do not consult it.
func (v *Validator) Priority() int { return v.priority }

// Apply validates value at path, returning the cleaned value (which may
// differ from value, e.g. a coerced type or a trimmed string) or an
// error - either *errors.Invalid or *errors.Multiple.
func (v *Validator) Apply(path errors.Path, value interface{}) (interface{}, error) {
	return v.apply(path, value)
}

// Validate is Apply with an empty starting path, the entry point callers
// reach for when validating a top-level document.
func (v *Validator) Validate(value interface{}) (interface{}, error) {
	return v.apply(nil, value)
}

// SeqKind distinguishes the three sequence container shapes: List allows
// any length and preserves order and duplicates; Set de-duplicates its
// cleaned output; Tuple requires one schema entry per input position.
type SeqKind int

const (
	SeqList SeqKind = iota
	SeqSet
	SeqTuple
)

// List, Set and Tuple are schema expressions for validating Go
// slices/arrays. Each element of the literal is itself a schema
// expression; for List and Set every element of the input is tried
// against every alternative in order (first match wins), while Tuple
// pairs input position i with alternative i.
type List []interface{}
type Set []interface{}
type Tuple []interface{}

// MapEntry is one key/value pair of a Map schema. Key is usually wrapped
// in a markers.Marker (Required/Optional/Remove/Reject/Extra/Entire); an
// unwrapped key is treated per config.Config.DefaultKeyMarkerKind.
type MapEntry struct {
	Key   interface{}
	Value interface{}
}

// Map is an ordered mapping schema. Unlike a Go map literal, Map
// preserves declaration order, which matters because entries are
// resolved by priority with declaration order as the stable tiebreak.
type Map []MapEntry

// M builds a Map from alternating key, value arguments - a terser
// alternative to a Map{{Key: ..., Value: ...}, ...} literal.
func M(pairs ...interface{}) Map {
	if len(pairs)%2 != 0 {
		panic("schema.M: odd number of arguments")
	}
	m := make(Map, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m = append(m, MapEntry{Key: pairs[i], Value: pairs[i+1]})
	}
	return m
}

// FromGoMap converts a plain Go map into a Map. Since Go map iteration
// order is randomized, entries are sorted by fmt.Sprint(key) so that
// compiling the same map[interface{}]interface{} twice always produces
// the same entry order (and hence, for equal-priority entries, the same
// tie-break behavior).
func FromGoMap(m map[interface{}]interface{}) Map {
	keys := make([]interface{}, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortByRepr(keys)

	out := make(Map, 0, len(m))
	for _, k := range keys {
		out = append(out, MapEntry{Key: k, Value: m[k]})
	}
	return out
}

// T returns the reflect.Type tag for X, used as a schema expression that
// matches any value assignable to X - e.g. schema.T[string]() accepts
// any string.
func T[X any]() reflect.Type {
	var zero X
	return reflect.TypeOf(zero)
}

// NamedCallable wraps a callable schema with an explicit display name,
// since a bare Go func value carries no attachable metadata the way a
// Python function can carry a .name attribute.
type NamedCallable struct {
	Fn     interface{}
	FnName string
}

// Name implements Named.
func (n NamedCallable) Name() string { return n.FnName }

// WithName builds a NamedCallable, the schema-expression equivalent of
// py-good's message()/name() decorators.
func WithName(name string, fn interface{}) NamedCallable {
	return NamedCallable{Fn: fn, FnName: name}
}
