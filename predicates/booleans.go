package predicates

import (
	"strings"

	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/schema"
	"github.com/fsvxavier/govalid/types"
)

var truthyStrings = map[string]bool{
	"1": true, "true": true, "yes": true, "on": true, "y": true,
}
var falsyStrings = map[string]bool{
	"0": true, "false": true, "no": true, "off": true, "n": true,
}

// Boolean coerces common truthy/falsy string and numeric spellings
// ("yes"/"no", "1"/"0", "on"/"off") to a Go bool.
func Boolean() schema.NamedCallable {
	return schema.WithName("Boolean()", func(value interface{}) (interface{}, error) {
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			lower := strings.ToLower(strings.TrimSpace(v))
			if truthyStrings[lower] {
				return true, nil
			}
			if falsyStrings[lower] {
				return false, nil
			}
		case int:
			if v == 0 || v == 1 {
				return v == 1, nil
			}
		}
		return nil, errors.New("Not a boolean", "Boolean()", types.Str(value), nil, nil)
	})
}
