package logging

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"WARNING", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},        // default
		{"invalid", LevelInfo}, // default for unknown
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseLevel(tc.input); got != tc.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var sb strings.Builder
	l := New(LevelWarn)
	l.SetOutput(&sb)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown warning")
	l.Error("shown error")

	out := sb.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-level messages leaked:\n%s", out)
	}
	if !strings.Contains(out, "shown warning") || !strings.Contains(out, "shown error") {
		t.Errorf("expected messages missing:\n%s", out)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic, must stay silent.
	l := Discard()
	l.Error("nothing")
}
