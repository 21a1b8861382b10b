package markers_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsvxavier/govalid/markers"
)

func TestPriorityOrdering(t *testing.T) {
	remove := markers.Remove("k")
	required := markers.Required("k")
	optional := markers.Optional("k")
	reject := markers.Reject("k")
	extra := markers.Extra
	entire := markers.Entire(func(m map[string]interface{}) (map[string]interface{}, error) { return m, nil })

	priorities := []int{
		remove.Priority(0),
		required.Priority(0),
		optional.Priority(10),
		reject.Priority(0),
		extra.Priority(0),
		entire.Priority(0),
	}

	assert.True(t, sort.IntsAreSorted(priorities), "expected ascending priorities, got %v", priorities)
}

func TestRequiredOptionalSubOrderedByInnerPriority(t *testing.T) {
	literalKey := markers.Required("k").Priority(0)  // schema.PriorityLiteral
	typeKey := markers.Required("k").Priority(10)    // schema.PriorityType
	callableKey := markers.Required("k").Priority(20) // schema.PriorityCallable

	assert.Less(t, literalKey, typeKey)
	assert.Less(t, typeKey, callableKey)
}

func TestMarkerInnerAndKind(t *testing.T) {
	m := markers.Optional("name")
	assert.Equal(t, markers.KindOptional, m.Kind())
	assert.Equal(t, "name", m.Inner())
}

func TestEntireWrapsFunction(t *testing.T) {
	fn := func(m map[string]interface{}) (map[string]interface{}, error) { return m, nil }
	m := markers.Entire(fn)
	assert.Equal(t, markers.KindEntire, m.Kind())
	assert.NotNil(t, m.Inner())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Required", markers.KindRequired.String())
	assert.Equal(t, "Entire", markers.KindEntire.String())
}
