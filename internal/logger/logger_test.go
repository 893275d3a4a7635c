package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level string, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	InitLogger(level)
	fn()

	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:     "info log",
			level:    "info",
			logFn:    func() { Info("test info message") },
			contains: []string{"test info message"},
		},
		{
			name:     "debug log with debug level",
			level:    "debug",
			logFn:    func() { Debug("test debug message") },
			contains: []string{"test debug message"},
		},
		{
			name:     "debug log suppressed at info level",
			level:    "info",
			logFn:    func() { Debug("hidden message") },
			excludes: []string{"hidden message"},
		},
		{
			name:     "formatted warning",
			level:    "warn",
			logFn:    func() { Warnf("count=%d", 3) },
			contains: []string{"count=3"},
		},
		{
			name:     "error with fields",
			level:    "error",
			logFn:    func() { Error("boom", Fields{"url": "https://example.com"}) },
			contains: []string{"boom", "https://example.com"},
		},
		{
			name:     "success marker",
			level:    "info",
			logFn:    func() { Success("fetched") },
			contains: []string{"fetched", "success"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(t, tt.level, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, output, unwanted)
			}
		})
	}
}

func TestInitLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	output := captureOutput(t, "bogus", func() {
		Info("visible")
		Debug("invisible")
	})
	assert.Contains(t, output, "visible")
	assert.NotContains(t, output, "invisible")
}
