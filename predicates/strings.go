package predicates

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/schema"
	"github.com/fsvxavier/govalid/types"
)

// Length accepts any Go collection (string, slice, array, map) whose
// length falls within [min, max]; a nil bound leaves that side open.
func Length(min, max *int) schema.NamedCallable {
	name := "Length"
	return schema.WithName(name, func(value interface{}) (interface{}, error) {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		default:
			return nil, errors.New("Input is not a collection", "Collection", types.NameOfValue(value), nil, nil)
		}
		n := rv.Len()
		if min != nil && n < *min {
			return nil, errors.New(
				fmt.Sprintf("Too short (%d is the least)", *min),
				fmt.Sprint(*min), fmt.Sprint(n), nil, nil,
			)
		}
		if max != nil && n > *max {
			return nil, errors.New(
				fmt.Sprintf("Too long (%d is the most)", *max),
				fmt.Sprint(*max), fmt.Sprint(n), nil, nil,
			)
		}
		return value, nil
	})
}

// Match accepts a string matching the regular expression re.
func Match(re string) schema.NamedCallable {
	r := regexp.MustCompile(re)
	name := "Match(" + re + ")"
	return schema.WithName(name, func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		if !r.MatchString(s) {
			return nil, errors.New("Does not match the pattern", name, types.Str(s), nil, nil)
		}
		return value, nil
	})
}

// Replace applies re.ReplaceAllString(s, repl) to a string value,
// unconditionally sanitizing rather than rejecting.
func Replace(re, repl string) schema.NamedCallable {
	r := regexp.MustCompile(re)
	name := "Replace(" + re + ")"
	return schema.WithName(name, func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		return r.ReplaceAllString(s, repl), nil
	})
}

// Upper, Lower, Capitalize and Title sanitize string case. Title uses
// golang.org/x/text/cases for locale-aware Unicode casing rather than
// strings.Title, which is deprecated and ASCII-biased; Capitalize
// lower-cases the string and upper-cases its first rune.
var caser = cases.Title(language.Und)

func Upper() schema.NamedCallable {
	return schema.WithName("Upper()", func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		return strings.ToUpper(s), nil
	})
}

func Lower() schema.NamedCallable {
	return schema.WithName("Lower()", func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		return strings.ToLower(s), nil
	})
}

func Capitalize() schema.NamedCallable {
	return schema.WithName("Capitalize()", func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok || s == "" {
			return value, nil
		}
		lower := []rune(strings.ToLower(s))
		lower[0] = unicode.ToUpper(lower[0])
		return string(lower), nil
	})
}

func Title() schema.NamedCallable {
	return schema.WithName("Title()", func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		return caser.String(s), nil
	})
}

// Email accepts a syntactically valid email address per net/mail.
func Email() schema.NamedCallable {
	return schema.WithName("Email()", func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		if _, err := mail.ParseAddress(s); err != nil {
			return nil, errors.New("Invalid email", "Email()", types.Str(s), nil, nil)
		}
		return value, nil
	})
}

// URL accepts an absolute URL.
func URL() schema.NamedCallable {
	return schema.WithName("Url()", func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		u, err := url.Parse(s)
		if err != nil || !u.IsAbs() {
			return nil, errors.New("Invalid URL", "Url()", types.Str(s), nil, nil)
		}
		return value, nil
	})
}

// UUID accepts a string in any standard UUID representation and
// normalizes it to its canonical hyphenated form.
func UUID() schema.NamedCallable {
	return schema.WithName("UUID()", func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Wrong type", types.NameString, types.NameOfValue(value), nil, nil)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errors.New("Invalid UUID", "UUID()", types.Str(s), nil, nil)
		}
		return id.String(), nil
	})
}
