package schema

import (
	"reflect"

	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/types"
)

// compileType builds a Validator that accepts any value whose dynamic
// type equals t or is assignable to t. Go's static type system already
// keeps, say, bool and int disjoint (bool is never AssignableTo int), so
// no special-casing is needed to preserve that invariant the way
// py-good's runtime check has to.
func compileType(t reflect.Type) *Validator {
	name := types.NameOf(t)

	return &Validator{
		kind:     KindType,
		name:     name,
		priority: PriorityType,
		apply: func(path errors.Path, value interface{}) (interface{}, error) {
			if value == nil {
				return nil, errors.New("Wrong type", name, types.NameNone, path.Copy(), t)
			}
			vt := reflect.TypeOf(value)
			if vt == t || vt.AssignableTo(t) {
				return value, nil
			}
			return nil, errors.New("Wrong type", name, types.NameOf(vt), path.Copy(), t)
		},
	}
}
