// Package markers implements the mapping-key marker algebra: Required,
// Optional, Remove, Reject, Allow, Extra and Entire, along with the
// strict priority ordering mapping compilation sorts entries by.
package markers

import "github.com/fsvxavier/govalid/errors"

// Kind identifies which marker behavior a Marker carries.
type Kind int

const (
	KindRequired Kind = iota
	KindOptional
	KindRemove
	KindReject
	KindAllow
	KindExtra
	KindEntire
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "Required"
	case KindOptional:
		return "Optional"
	case KindRemove:
		return "Remove"
	case KindReject:
		return "Reject"
	case KindAllow:
		return "Allow"
	case KindExtra:
		return "Extra"
	case KindEntire:
		return "Entire"
	default:
		return "Unknown"
	}
}

// Priority bands. Entries within the Required/Optional band are further
// ordered by the wrapped key schema's own priority (literal < type <
// callable), added on top of the band base by Priority.
const (
	bandRemove   = 0
	bandReqOpt   = 100
	bandReject   = 400
	bandExtra    = 500
	bandEntire   = 600
	bandAllow    = bandExtra
)

// Marker wraps a key (or, for Entire, a post-validator function) with a
// behavior applied during mapping compilation.
type Marker struct {
	kind  Kind
	inner interface{}
	err   *errors.Invalid
}

// Kind reports which behavior this marker carries.
func (m Marker) Kind() Kind { return m.kind }

// Inner returns the wrapped key schema (or, for Entire, the wrapped
// post-validator function).
func (m Marker) Inner() interface{} { return m.inner }

// Error returns a caller-supplied override for the error this marker
// produces, or nil if none was set via WithError.
func (m Marker) Error() *errors.Invalid { return m.err }

// WithError attaches a custom error template, mirroring py-good's
// Required(x, msg=...) keyword.
func (m Marker) WithError(e *errors.Invalid) Marker {
	m.err = e
	return m
}

// Required marks a mapping key as mandatory: validation fails with
// "Required key not provided" if no input key matches.
func Required(key interface{}) Marker {
	return Marker{kind: KindRequired, inner: key}
}

// Optional marks a mapping key as non-mandatory: absence produces no
// error.
func Optional(key interface{}) Marker {
	return Marker{kind: KindOptional, inner: key}
}

// Remove marks a key (at mapping-key position) or a value (at
// mapping-value or sequence-element position) for silent removal: a
// match never reaches the cleaned output and is never validated beyond
// the key/element schema itself.
func Remove(x interface{}) Marker {
	return Marker{kind: KindRemove, inner: x}
}

// Reject marks a key or value that, if matched, produces a "Value
// rejected" error instead of being accepted.
func Reject(x interface{}) Marker {
	return Marker{kind: KindReject, inner: x}
}

// Allow is a sentinel mapping-value usable with Extra to let unclaimed
// keys through unchanged, and as an ExtraKeysPolicy choice.
var Allow = Marker{kind: KindAllow}

// Extra is the catch-all mapping key matching any key no other entry
// claimed.
var Extra = Marker{kind: KindExtra}

// Entire wraps a whole-mapping post-validator: fn receives the fully
// assembled, already-cleaned map and may replace it or return an error.
func Entire(fn interface{}) Marker {
	return Marker{kind: KindEntire, inner: fn}
}

// Priority computes this marker's position in mapping entry sort order.
// innerPriority is the priority of the marker's own wrapped key schema
// (schema.PriorityLiteral/Type/Callable), used to sub-order entries
// within the Required/Optional band.
func (m Marker) Priority(innerPriority int) int {
	switch m.kind {
	case KindRemove:
		return bandRemove
	case KindRequired, KindOptional:
		return bandReqOpt + innerPriority
	case KindReject:
		return bandReject
	case KindAllow:
		return bandAllow
	case KindExtra:
		return bandExtra
	case KindEntire:
		return bandEntire
	default:
		return bandReqOpt + innerPriority
	}
}
