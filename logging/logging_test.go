package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNopDoesNotPanic(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.Debug("debug message", String("k", "v"))
		l.Warn("warn message", Int("n", 1))
		l.Error("error message", Err(nil))
	})
}

func TestFromZapNilFallsBackToNop(t *testing.T) {
	l := FromZap(nil)
	assert.NotNil(t, l)
	assert.NotPanics(t, func() { l.Warn("should not panic") })
}

func TestFromZapWrapsRealLogger(t *testing.T) {
	z := zap.NewNop()
	l := FromZap(z)
	assert.NotPanics(t, func() { l.Debug("hello") })
}
