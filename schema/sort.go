package schema

import (
	"fmt"
	"sort"
)

// sortByRepr orders vs deterministically by their fmt.Sprint
// representation, used when a source of schema entries (a Go map) has no
// natural order of its own.
func sortByRepr(vs []interface{}) {
	sort.Slice(vs, func(i, j int) bool {
		return fmt.Sprint(vs[i]) < fmt.Sprint(vs[j])
	})
}
