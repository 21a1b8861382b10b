package schema

import (
	"reflect"

	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/types"
)

// compileLiteral builds a Validator that accepts exactly one value: v
// itself (nil included). It first rejects a mismatched dynamic type with
// "Wrong value type", then a same-type but unequal value with "Invalid
// value" - mirroring py-good's Literal schema two-stage error.
func compileLiteral(v interface{}) *Validator {
	name := types.Repr(v)

	return &Validator{
		kind:     KindLiteral,
		name:     name,
		priority: PriorityLiteral,
		apply: func(path errors.Path, value interface{}) (interface{}, error) {
			if v == nil {
				if value == nil {
					return value, nil
				}
				return nil, errors.New("Wrong value type", types.NameNone, types.NameOfValue(value), path.Copy(), v)
			}

			wantType := reflect.TypeOf(v)
			gotType := reflect.TypeOf(value)
			if gotType != wantType {
				return nil, errors.New("Wrong value type", types.NameOf(wantType), types.NameOfValue(value), path.Copy(), v)
			}
			if !reflect.DeepEqual(value, v) {
				return nil, errors.New("Invalid value", types.Str(v), types.Str(value), path.Copy(), v)
			}
			return value, nil
		},
	}
}
