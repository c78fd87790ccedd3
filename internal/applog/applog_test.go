package applog

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevelMapping(t *testing.T) {
	cases := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{Quiet, zapcore.WarnLevel},
		{Default, zapcore.InfoLevel},
		{Info, zapcore.DebugLevel},
		{Debug, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}
	for _, c := range cases {
		if got := Level(c.verbosity); got != c.want {
			t.Errorf("Level(%d) = %v, want %v", c.verbosity, got, c.want)
		}
	}
}

func TestNewRespectsVerbosity(t *testing.T) {
	if New(Quiet).Core().Enabled(zapcore.InfoLevel) {
		t.Error("quiet logger should not enable info")
	}
	if !New(Default).Core().Enabled(zapcore.InfoLevel) {
		t.Error("default logger should enable info")
	}
	if New(Default).Core().Enabled(zapcore.DebugLevel) {
		t.Error("default logger should not enable debug")
	}
	if !New(Info).Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbosity 2 should enable debug diagnostics")
	}
}
