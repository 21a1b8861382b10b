package govalidlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fsvxavier/govalid/govalidlog"
)

func TestNopLoggerDiscardsEverything(t *testing.T) {
	l := govalidlog.Nop()
	// Must not panic and must return a usable Logger from WithFields.
	l.Info("ignored", govalidlog.F("k", "v"))
	assert.NotNil(t, l.WithFields(govalidlog.F("a", 1)))
}

func TestZapLoggerForwardsFields(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	zl := zap.New(core)
	l := govalidlog.NewZapLogger(zl)

	l.Warn("recovered panic", govalidlog.F("validator", "trim()"))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "recovered panic", entries[0].Message)
	assert.Equal(t, "trim()", entries[0].ContextMap()["validator"])
}

func TestZapLoggerWithFieldsScopes(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	zl := zap.New(core)
	l := govalidlog.NewZapLogger(zl).WithFields(govalidlog.F("component", "schema"))

	l.Info("compiled")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "schema", entries[0].ContextMap()["component"])
}

func TestNewZapLoggerNilFallsBackToNop(t *testing.T) {
	l := govalidlog.NewZapLogger(nil)
	assert.NotPanics(t, func() { l.Error("x") })
}
