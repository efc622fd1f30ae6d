package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// Notes:
// - NewLogger shares a process-wide root logger; tests that touch it run
//   serially. newRoot is tested directly for level and format parsing.

func TestNewRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{name: "defaults", wantLevel: logrus.InfoLevel},
		{name: "debug level", level: "debug", wantLevel: logrus.DebugLevel},
		{name: "invalid level falls back", level: "loud", wantLevel: logrus.InfoLevel},
		{name: "json format", format: "JSON", wantLevel: logrus.InfoLevel, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := newRoot(&bytes.Buffer{}, tt.level, tt.format)
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			if isJSON != tt.wantJSON {
				t.Errorf("JSON formatter = %v, want %v", isJSON, tt.wantJSON)
			}
		})
	}
}

func TestNewLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(logrus.InfoLevel)

	first := NewLogger("site")
	if again := NewLogger("site"); again != first {
		t.Error("NewLogger should return the same entry per component")
	}

	first.Info("built")
	if !strings.Contains(buf.String(), "component=site") {
		t.Errorf("output %q should carry the component field", buf.String())
	}

	buf.Reset()
	SetLevel(logrus.WarnLevel)
	NewLogger("server").Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	entry := Discard()
	entry.Error("dropped")
	if entry.Logger.Out == nil {
		t.Error("Discard logger should have an output")
	}
}
