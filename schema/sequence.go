package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fsvxavier/govalid/config"
	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/markers"
	"github.com/fsvxavier/govalid/types"
)

type seqAlt struct {
	v      *Validator
	remove bool
}

// compileSequence builds a Validator over List/Set/Tuple element
// schemas. Go has no native tuple or set type, so all three are
// validated against a slice/array input; Tuple additionally requires the
// input to have exactly len(elems) elements, matched positionally
// instead of by first-alternative-match.
func compileSequence(kind SeqKind, elems []interface{}, cfg *config.Config) (*Validator, error) {
	alts := make([]seqAlt, 0, len(elems))
	names := make([]string, 0, len(elems))

	for _, e := range elems {
		remove := false
		inner := e
		if mk, ok := e.(markers.Marker); ok && mk.Kind() == markers.KindRemove {
			remove = true
			inner = mk.Inner()
		} else if ok {
			// Any other marker at element position is meaningless; only
			// its wrapped schema matters here.
			inner = mk.Inner()
		}

		v, err := compile(inner, cfg)
		if err != nil {
			return nil, err
		}
		alts = append(alts, seqAlt{v: v, remove: remove})
		names = append(names, v.Name())
	}

	containerName := containerLabel(kind)
	name := containerName
	if len(names) > 0 {
		name = containerName + "[" + strings.Join(names, "|") + "]"
	}

	return &Validator{
		kind:     KindSequence,
		name:     name,
		priority: PrioritySequence,
		apply: func(path errors.Path, value interface{}) (interface{}, error) {
			if value == nil {
				return nil, errors.New("Wrong value type", containerName, types.NameNone, path.Copy(), elems)
			}
			rv := reflect.ValueOf(value)
			if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
				return nil, errors.New("Wrong value type", containerName, types.NameOfValue(value), path.Copy(), elems)
			}

			if kind == SeqTuple {
				return applyTuple(alts, name, path, rv)
			}
			return applyListOrSet(kind, alts, name, path, rv)
		},
	}, nil
}

func containerLabel(kind SeqKind) string {
	switch kind {
	case SeqSet:
		return "Set"
	case SeqTuple:
		return "Tuple"
	default:
		return types.NameList
	}
}

func applyTuple(alts []seqAlt, name string, path errors.Path, rv reflect.Value) (interface{}, error) {
	if rv.Len() != len(alts) {
		return nil, errors.New(
			fmt.Sprintf("Tuple requires exactly %d elements", len(alts)),
			name, fmt.Sprintf("%d elements", rv.Len()), path.Copy(), alts,
		)
	}

	out := make([]interface{}, 0, len(alts))
	var errs []error
	for i, alt := range alts {
		elemPath := append(path.Copy(), i)
		elem := rv.Index(i).Interface()
		if alt.remove {
			continue
		}
		cleaned, err := alt.v.Apply(elemPath, elem)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, cleaned)
	}
	if err := errors.Append(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

func applyListOrSet(kind SeqKind, alts []seqAlt, name string, path errors.Path, rv reflect.Value) (interface{}, error) {
	out := make([]interface{}, 0, rv.Len())
	var errs []error
	seen := map[string]bool{}

	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		elemPath := append(path.Copy(), i)

		matched := false
		for _, alt := range alts {
			cleaned, err := alt.v.Apply(elemPath, elem)
			if err != nil {
				continue
			}
			matched = true
			if alt.remove {
				break
			}
			if kind == SeqSet {
				key := fmt.Sprint(cleaned)
				if seen[key] {
					break
				}
				seen[key] = true
			}
			out = append(out, cleaned)
			break
		}
		if !matched {
			errs = append(errs, errors.New("Invalid value", name, types.Str(elem), elemPath, alts))
		}
	}

	if err := errors.Append(errs...); err != nil {
		return nil, err
	}
	return out, nil
}
