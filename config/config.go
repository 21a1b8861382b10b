// Package config holds the functional-option configuration consumed by
// schema.Compile, following the same Option-slice convention used
// elsewhere in this codebase for building clients and loggers.
package config

import (
	"time"

	"github.com/fsvxavier/govalid/govalidlog"
	"github.com/fsvxavier/govalid/markers"
)

// MetricsRecorder receives one observation per top-level Validate call.
// It is declared here rather than imported from govalidmetrics so that
// config, a low-level package compiled into every schema, never depends
// on the prometheus client library directly - only callers that want
// metrics import govalidmetrics and pass its *Prometheus in.
type MetricsRecorder interface {
	Observe(schemaName string, duration time.Duration, err error)
}

// Config is the resolved set of compile-time options for a schema.
type Config struct {
	// DefaultKeyMarkerKind is applied to a mapping key written without an
	// explicit Required/Optional marker. Defaults to markers.KindRequired.
	DefaultKeyMarkerKind markers.Kind

	// ExtraKeysPolicy controls keys no entry claims when the mapping has
	// no explicit Extra entry. Defaults to markers.KindReject.
	ExtraKeysPolicy markers.Kind

	// LaxSequences lets a plain Go slice/array literal stand in for
	// schema.List{...} during compilation, instead of requiring the
	// schema.List/Set/Tuple wrapper types.
	LaxSequences bool

	// Structs enables compiling a Go struct value as a mapping schema
	// derived from its exported fields.
	Structs bool

	// Logger receives diagnostic events. The one event emitted is a
	// callable schema's panic, logged at Warn right before it is
	// re-raised. Defaults to a no-op.
	Logger govalidlog.Logger

	// Metrics, when non-nil, is sent one Observe per top-level Validate
	// call made against the compiled root validator. Nested Apply calls
	// (mapping values, sequence elements, ...) are not observed
	// individually.
	Metrics MetricsRecorder
}

// Option mutates a Config being built by New.
type Option func(*Config)

// New resolves opts against the documented defaults.
func New(opts ...Option) *Config {
	cfg := &Config{
		DefaultKeyMarkerKind: markers.KindRequired,
		ExtraKeysPolicy:      markers.KindReject,
		Logger:               govalidlog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithDefaultKeys overrides which marker kind a bare mapping key gets.
func WithDefaultKeys(kind markers.Kind) Option {
	return func(c *Config) { c.DefaultKeyMarkerKind = kind }
}

// WithExtraKeys overrides how unclaimed mapping keys are treated when no
// explicit markers.Extra entry is present.
func WithExtraKeys(kind markers.Kind) Option {
	return func(c *Config) { c.ExtraKeysPolicy = kind }
}

// WithLaxSequences allows bare Go slices/arrays as sequence schemas.
func WithLaxSequences() Option {
	return func(c *Config) { c.LaxSequences = true }
}

// WithStructs allows Go struct values as mapping schemas.
func WithStructs() Option {
	return func(c *Config) { c.Structs = true }
}

// WithLogger overrides the diagnostic logger; nil is treated as Nop.
func WithLogger(l govalidlog.Logger) Option {
	return func(c *Config) {
		if l == nil {
			l = govalidlog.Nop()
		}
		c.Logger = l
	}
}

// WithMetrics attaches a MetricsRecorder (e.g. *govalidmetrics.Prometheus)
// that observes every top-level Validate call against the compiled schema.
func WithMetrics(m MetricsRecorder) Option {
	return func(c *Config) { c.Metrics = m }
}
