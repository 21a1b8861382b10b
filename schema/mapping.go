package schema

import (
	"reflect"
	"sort"

	"github.com/fsvxavier/govalid/config"
	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/markers"
	"github.com/fsvxavier/govalid/types"
)

type compiledEntry struct {
	marker     markers.Marker
	keyV       *Validator
	valV       *Validator
	removeVal  bool
	rejectVal  bool
	declIndex  int
	priority   int
	keyExprRaw interface{}
}

// compileMapping builds a Validator over a Map schema, implementing the
// full marker algebra: Remove/Required/Optional/Reject/Extra/Entire
// entries are sorted into strict priority order, then applied against
// every unclaimed input key in turn.
func compileMapping(m Map, cfg *config.Config) (*Validator, error) {
	var entries []*compiledEntry
	var extra *compiledEntry
	var entireFns []*Validator

	for i, pair := range m {
		if mk, ok := pair.Key.(markers.Marker); ok && mk.Kind() == markers.KindEntire {
			fnV, err := compileCallableFromSchema(mk.Inner(), cfg)
			if err != nil {
				return nil, err
			}
			entireFns = append(entireFns, fnV)
			continue
		}

		if mk, ok := pair.Key.(markers.Marker); ok && mk.Kind() == markers.KindExtra {
			if vmk, ok := pair.Value.(markers.Marker); ok && vmk.Kind() == markers.KindAllow {
				// Extra: Allow passes every unclaimed value through unchanged.
				allowV := &Validator{
					kind:     KindCallable,
					name:     markers.KindAllow.String(),
					priority: PriorityCallable,
					apply:    func(_ errors.Path, v interface{}) (interface{}, error) { return v, nil },
				}
				extra = &compiledEntry{marker: mk, valV: allowV, declIndex: i}
				continue
			}
			valV, err := compileMappingValue(pair.Value, cfg)
			if err != nil {
				return nil, err
			}
			extra = &compiledEntry{marker: mk, valV: valV, declIndex: i}
			continue
		}

		marker, keyExprRaw := unwrapKeyMarker(pair.Key, cfg)

		keyV, err := compile(keyExprRaw, cfg)
		if err != nil {
			return nil, err
		}

		entry := &compiledEntry{
			marker:     marker,
			keyV:       keyV,
			declIndex:  i,
			keyExprRaw: keyExprRaw,
		}

		if vmk, ok := pair.Value.(markers.Marker); ok && vmk.Kind() == markers.KindRemove {
			entry.removeVal = true
		} else if ok && vmk.Kind() == markers.KindReject {
			entry.rejectVal = true
		} else {
			valV, err := compile(pair.Value, cfg)
			if err != nil {
				return nil, err
			}
			entry.valV = valV
		}

		entry.priority = marker.Priority(keyV.Priority())
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].priority < entries[j].priority
	})

	name := types.NameDictionary

	return &Validator{
		kind:     KindMapping,
		name:     name,
		priority: PriorityMapping,
		apply: func(path errors.Path, value interface{}) (interface{}, error) {
			return applyMapping(entries, extra, entireFns, cfg, path, value)
		},
	}, nil
}

// unwrapKeyMarker normalizes a mapping key expression to (marker,
// rawKeyExpr): an explicit Required/Optional/Remove/Reject marker is
// used as-is, while a bare key gets cfg.DefaultKeyMarkerKind.
func unwrapKeyMarker(key interface{}, cfg *config.Config) (markers.Marker, interface{}) {
	if mk, ok := key.(markers.Marker); ok {
		switch mk.Kind() {
		case markers.KindRequired, markers.KindOptional, markers.KindRemove, markers.KindReject:
			return mk, mk.Inner()
		}
	}
	switch cfg.DefaultKeyMarkerKind {
	case markers.KindOptional:
		return markers.Optional(key), key
	case markers.KindRemove:
		return markers.Remove(key), key
	case markers.KindReject:
		return markers.Reject(key), key
	default:
		return markers.Required(key), key
	}
}

// compileMappingValue compiles a mapping value, used for Extra's catch-all
// and any position where Remove/Reject markers are not meaningful.
func compileMappingValue(value interface{}, cfg *config.Config) (*Validator, error) {
	return compile(value, cfg)
}

// compileCallableFromSchema compiles an Entire post-validator: either a
// bare func or a NamedCallable, same as a callable schema elsewhere.
func compileCallableFromSchema(fn interface{}, cfg *config.Config) (*Validator, error) {
	return compile(fn, cfg)
}

func applyMapping(
	entries []*compiledEntry,
	extra *compiledEntry,
	entireFns []*Validator,
	cfg *config.Config,
	path errors.Path,
	value interface{},
) (interface{}, error) {
	if value == nil {
		return nil, errors.New("Wrong value type", types.NameDictionary, types.NameNone, path.Copy(), nil)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return nil, errors.New("Wrong value type", types.NameDictionary, types.NameOfValue(value), path.Copy(), nil)
	}

	allKeys := rv.MapKeys()
	claimed := make([]bool, len(allKeys))
	out := map[interface{}]interface{}{}
	var errs []error

	for _, entry := range entries {
		matchedAny := false
		for i, k := range allKeys {
			if claimed[i] {
				continue
			}
			kv := k.Interface()

			cleanedKey, keyErr := entry.keyV.Apply(path, kv)
			if keyErr != nil {
				continue
			}
			claimed[i] = true
			matchedAny = true

			switch {
			case entry.marker.Kind() == markers.KindRemove:
				// silently dropped, no value validation

			case entry.removeVal:
				// silently dropped, no value validation

			case entry.marker.Kind() == markers.KindReject:
				errs = append(errs, errors.New(
					"Value rejected", types.SentinelNone, types.Str(kv), append(path.Copy(), kv),
					markers.Reject(entry.keyExprRaw),
				))

			case entry.rejectVal:
				fieldVal := rv.MapIndex(k).Interface()
				errs = append(errs, errors.New(
					"Value rejected", types.SentinelNone, types.Str(fieldVal), append(path.Copy(), kv),
					markers.Reject(nil),
				))

			default:
				fieldVal := rv.MapIndex(k).Interface()
				cleaned, err := entry.valV.Apply(append(path.Copy(), kv), fieldVal)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				out[cleanedKey] = cleaned
			}

			if entry.keyV.Kind() == KindLiteral {
				break
			}
		}

		if entry.marker.Kind() == markers.KindRequired && !matchedAny {
			errPath := path.Copy()
			if entry.keyV.Kind() == KindLiteral {
				errPath = append(errPath, entry.keyExprRaw)
			}
			if override := entry.marker.Error(); override != nil {
				errs = append(errs, override.Enrich(errors.WithPrefix(errPath)))
			} else {
				expected := entry.keyV.Name()
				if entry.keyV.Kind() == KindLiteral {
					expected = types.Str(entry.keyExprRaw)
				}
				errs = append(errs, errors.New(
					"Required key not provided", expected, types.SentinelNone,
					errPath, markers.Required(entry.keyExprRaw),
				))
			}
		}
	}

	for i, k := range allKeys {
		if claimed[i] {
			continue
		}
		kv := k.Interface()
		fieldVal := rv.MapIndex(k).Interface()

		if extra != nil {
			cleaned, err := extra.valV.Apply(append(path.Copy(), kv), fieldVal)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			out[kv] = cleaned
			continue
		}

		switch cfg.ExtraKeysPolicy {
		case markers.KindRemove:
			// drop silently
		case markers.KindAllow:
			out[kv] = fieldVal
		default:
			errs = append(errs, errors.New(
				"Extra keys not allowed", types.SentinelNone, types.Str(kv), append(path.Copy(), kv), markers.Extra,
			))
		}
	}

	if err := errors.Append(errs...); err != nil {
		return nil, err
	}

	result := interface{}(out)
	for _, fnV := range entireFns {
		cleaned, err := fnV.Apply(path, result)
		if err != nil {
			return nil, err
		}
		result = cleaned
	}
	return result, nil
}
