package schema

import (
	"reflect"
	"strings"

	"github.com/fsvxavier/govalid/config"
	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/types"
)

// structFieldEntry binds one exported Go struct field to a mapping key.
type structFieldEntry struct {
	fieldIndex int
	key        string
	optional   bool
	valV       *Validator
}

// compileStruct derives a mapping-shaped Validator from a Go struct
// type's exported fields, driven by an optional `govalid:"name,optional"`
// struct tag. A field tagged `govalid:"-"` is skipped entirely.
//
// Resolved open question: Apply always allocates a fresh
// reflect.New(t).Elem() and fills it field by field - it never accepts
// and mutates a caller-owned struct via reflect.Value.Set, so a struct
// schema is safe to reuse concurrently and never aliases caller memory.
func compileStruct(t reflect.Type, cfg *config.Config) (*Validator, error) {
	var fields []structFieldEntry

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("govalid")
		if tag == "-" {
			continue
		}

		key := f.Name
		optional := false
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				key = parts[0]
			}
			for _, p := range parts[1:] {
				if strings.TrimSpace(p) == "optional" {
					optional = true
				}
			}
		}

		fieldV := compileType(f.Type)

		fields = append(fields, structFieldEntry{
			fieldIndex: i,
			key:        key,
			optional:   optional,
			valV:       fieldV,
		})
	}

	name := "struct " + t.Name()

	return &Validator{
		kind:     KindMapping,
		name:     name,
		priority: PriorityMapping,
		apply: func(path errors.Path, value interface{}) (interface{}, error) {
			return applyStruct(t, fields, name, path, value)
		},
	}, nil
}

func applyStruct(t reflect.Type, fields []structFieldEntry, name string, path errors.Path, value interface{}) (interface{}, error) {
	m, ok := asStringKeyedMap(value)
	if !ok {
		return nil, errors.New("Wrong value type", name, types.NameOfValue(value), path.Copy(), t)
	}

	out := reflect.New(t).Elem()
	var errs []error

	for _, fe := range fields {
		raw, present := m[fe.key]
		if !present {
			if !fe.optional {
				errs = append(errs, errors.New(
					"Required key not provided", fe.valV.Name(), types.SentinelNone,
					append(path.Copy(), fe.key), name,
				))
			}
			continue
		}
		cleaned, err := fe.valV.Apply(append(path.Copy(), fe.key), raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out.Field(fe.fieldIndex).Set(reflect.ValueOf(cleaned))
	}

	if err := errors.Append(errs...); err != nil {
		return nil, err
	}
	return out.Interface(), nil
}

// asStringKeyedMap accepts either a map[string]interface{} or a
// map[interface{}]interface{} whose keys are all strings, since both are
// common shapes for decoded JSON/YAML documents.
func asStringKeyedMap(value interface{}) (map[string]interface{}, bool) {
	switch m := value.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = v
		}
		return out, true
	default:
		return nil, false
	}
}
