// Package logging defines the minimal structured logger interface
// feedmill's core packages depend on, so they never commit to a
// concrete sink. go.uber.org/zap backs the default implementation;
// callers that need rotation wire gopkg.in/natefinch/lumberjack.v2
// underneath it themselves (see cmd/feedmill-bench).
package logging

import "go.uber.org/zap"

// Field is a structured logging key/value pair.
type Field = zap.Field

// String, Int, and Err construct common Field values without every
// caller importing zap directly.
func String(key, val string) Field { return zap.String(key, val) }
func Int(key string, val int) Field { return zap.Int(key, val) }
func Err(err error) Field           { return zap.Error(err) }

// Logger is the structured logging surface every feedmill component
// depends on.
type Logger interface {
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// zapLogger adapts *zap.Logger to Logger.
type zapLogger struct{ z *zap.Logger }

func (l zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, fields...) }
func (l zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, fields...) }
func (l zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, fields...) }

// FromZap adapts an existing *zap.Logger to the Logger interface.
func FromZap(z *zap.Logger) Logger {
	if z == nil {
		return Nop()
	}
	return zapLogger{z: z}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}

// Nop returns a Logger that discards everything, the default for
// every feedmill component constructed without an explicit Logger.
func Nop() Logger { return nopLogger{} }
