package applog

import "testing"

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		logger := New(level)
		if logger == nil {
			t.Fatalf("New(%q) returned nil", level)
		}
		if !logger.IsTrace() && !logger.IsDebug() && !logger.IsInfo() && !logger.IsWarn() && !logger.IsError() {
			t.Errorf("New(%q) produced a logger with no level enabled", level)
		}
	}
}
