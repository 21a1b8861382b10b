package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fsvxavier/govalid/config"
	"github.com/fsvxavier/govalid/govalidlog"
	"github.com/fsvxavier/govalid/markers"
)

type stubRecorder struct{ calls int }

func (s *stubRecorder) Observe(string, time.Duration, error) { s.calls++ }

func TestDefaults(t *testing.T) {
	c := config.New()
	assert.Equal(t, markers.KindRequired, c.DefaultKeyMarkerKind)
	assert.Equal(t, markers.KindReject, c.ExtraKeysPolicy)
	assert.False(t, c.LaxSequences)
	assert.False(t, c.Structs)
	assert.NotNil(t, c.Logger)
}

func TestOptionsApply(t *testing.T) {
	c := config.New(
		config.WithDefaultKeys(markers.KindOptional),
		config.WithExtraKeys(markers.KindAllow),
		config.WithLaxSequences(),
		config.WithStructs(),
	)
	assert.Equal(t, markers.KindOptional, c.DefaultKeyMarkerKind)
	assert.Equal(t, markers.KindAllow, c.ExtraKeysPolicy)
	assert.True(t, c.LaxSequences)
	assert.True(t, c.Structs)
}

func TestWithLoggerNilFallsBackToNop(t *testing.T) {
	c := config.New(config.WithLogger(nil))
	assert.Equal(t, govalidlog.Nop(), c.Logger)
}

func TestWithMetricsAttachesRecorder(t *testing.T) {
	rec := &stubRecorder{}
	c := config.New(config.WithMetrics(rec))
	assert.Same(t, rec, c.Metrics)

	none := config.New()
	assert.Nil(t, none.Metrics)
}
