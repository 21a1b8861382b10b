package govalidmetrics_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/fsvxavier/govalid/govalidmetrics"
)

func TestPrometheusObserveRecordsTotalsAndFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := govalidmetrics.NewPrometheus(reg, "govalid_test")

	p.Observe("person", 5*time.Millisecond, nil)
	p.Observe("person", 5*time.Millisecond, errors.New("boom"))
	p.Observe("other", time.Millisecond, nil)

	const expected = `
# HELP govalid_test_validations_total Total number of top-level schema validations performed.
# TYPE govalid_test_validations_total counter
govalid_test_validations_total{schema="other"} 1
govalid_test_validations_total{schema="person"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "govalid_test_validations_total"))

	const expectedFailures = `
# HELP govalid_test_validation_failures_total Total number of top-level schema validations that returned an error.
# TYPE govalid_test_validation_failures_total counter
govalid_test_validation_failures_total{schema="person"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expectedFailures), "govalid_test_validation_failures_total"))
}
