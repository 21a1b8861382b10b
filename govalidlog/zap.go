package govalidlog

import "go.uber.org/zap"

// zapLogger adapts *zap.Logger to Logger: a thin shallow wrapper with no
// buffering or provider-configuration machinery of its own.
type zapLogger struct {
	l *zap.Logger
}

// NewZapLogger wraps an existing *zap.Logger for use as a govalid
// diagnostic sink, e.g. config.WithLogger(govalidlog.NewZapLogger(z)).
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		return Nop()
	}
	return &zapLogger{l: l}
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

func (z *zapLogger) Debug(msg string, fields ...Field) { z.l.Debug(msg, toZapFields(fields)...) }
func (z *zapLogger) Info(msg string, fields ...Field)  { z.l.Info(msg, toZapFields(fields)...) }
func (z *zapLogger) Warn(msg string, fields ...Field)  { z.l.Warn(msg, toZapFields(fields)...) }
func (z *zapLogger) Error(msg string, fields ...Field) { z.l.Error(msg, toZapFields(fields)...) }

func (z *zapLogger) WithFields(fields ...Field) Logger {
	return &zapLogger{l: z.l.With(toZapFields(fields)...)}
}
