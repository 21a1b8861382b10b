// Command govalidate compiles a schema expressed as a small Go plugin-free
// DSL is out of scope; instead it loads a YAML document and checks it
// against one of a handful of demo schemas, printing either the cleaned
// document or each validation failure with its path - a thin,
// dependency-light way to exercise the govalid engine from a shell.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	goverrors "github.com/fsvxavier/govalid/errors"
	"github.com/fsvxavier/govalid/markers"
	"github.com/fsvxavier/govalid/schema"
)

var demoSchemas = map[string]interface{}{
	"person": schema.Map{
		{Key: markers.Required("name"), Value: schema.T[string]()},
		{Key: markers.Optional("age"), Value: schema.T[int]()},
		{Key: markers.Extra, Value: markers.Allow},
	},
}

func main() {
	var schemaName, docPath string
	flag.StringVar(&schemaName, "schema", "person", "name of the built-in demo schema to validate against")
	flag.StringVar(&docPath, "doc", "", "path to a YAML document to validate (defaults to stdin)")
	flag.Parse()

	expr, ok := demoSchemas[schemaName]
	if !ok {
		fmt.Fprintf(os.Stderr, "govalidate: unknown schema %q\n", schemaName)
		os.Exit(2)
	}

	doc, err := loadDocument(docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "govalidate: %v\n", err)
		os.Exit(1)
	}

	v, err := schema.Compile(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "govalidate: invalid schema: %v\n", err)
		os.Exit(1)
	}

	cleaned, err := v.Validate(doc)
	if err != nil {
		printValidationError(err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cleaned)
	if err != nil {
		fmt.Fprintf(os.Stderr, "govalidate: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

func loadDocument(path string) (interface{}, error) {
	var r *os.File
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var doc interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return normalizeYAMLMap(doc), nil
}

// normalizeYAMLMap converts yaml.v3's map[string]interface{} decode
// result into the map[interface{}]interface{} shape govalid's mapping
// validator expects, recursively.
func normalizeYAMLMap(v interface{}) interface{} {
	switch m := v.(type) {
	case map[string]interface{}:
		out := map[interface{}]interface{}{}
		for k, val := range m {
			out[k] = normalizeYAMLMap(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(m))
		for i, val := range m {
			out[i] = normalizeYAMLMap(val)
		}
		return out
	default:
		return v
	}
}

func printValidationError(err error) {
	switch e := err.(type) {
	case *goverrors.Multiple:
		for _, inv := range e.Errors() {
			fmt.Fprintln(os.Stderr, formatInvalid(inv))
		}
	case *goverrors.Invalid:
		fmt.Fprintln(os.Stderr, formatInvalid(e))
	default:
		fmt.Fprintln(os.Stderr, err.Error())
	}
}

func formatInvalid(e *goverrors.Invalid) string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s @ data[%s]", e.Message, e.Path.String())
}
