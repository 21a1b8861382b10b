package predicates

import (
	"time"

	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/schema"
	"github.com/fsvxavier/govalid/types"
)

// DateTime accepts a string parseable by any of layouts (tried in
// order) and returns the parsed time.Time, mirroring py-good's
// DateTime() which wraps Python's strptime/strftime pair.
func DateTime(layouts ...string) schema.NamedCallable {
	if len(layouts) == 0 {
		layouts = []string{time.RFC3339}
	}
	return schema.WithName("DateTime()", func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, errors.New("Invalid date/time", "DateTime()", types.Str(s), nil, nil)
	})
}

// Date is DateTime restricted to the date-only layout "2006-01-02".
func Date() schema.NamedCallable {
	dt := DateTime("2006-01-02")
	return schema.WithName("Date()", dt.Fn)
}
