package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{"off", LevelOff, false, false},
		{"normal", LevelNormal, false, true},
		{"verbose", LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)

			log.Debug("debug line %d", 1)
			log.Info("info line %d", 2)

			out := buf.String()
			if got := strings.Contains(out, "debug line 1"); got != tt.wantDebug {
				t.Fatalf("debug visible=%v, want %v (output %q)", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "info line 2"); got != tt.wantInfo {
				t.Fatalf("info visible=%v, want %v (output %q)", got, tt.wantInfo, out)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)

	log.Error("hidden")
	log.SetLevel(LevelNormal)
	log.Error("shown")

	if log.GetLevel() != LevelNormal {
		t.Fatalf("expected LevelNormal, got %d", log.GetLevel())
	}
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestWithTagsLines(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf).With("recipe", "Pancakes")

	log.Warn("costing")

	if !strings.Contains(buf.String(), "Pancakes") {
		t.Fatalf("expected tag in output, got %q", buf.String())
	}
}
