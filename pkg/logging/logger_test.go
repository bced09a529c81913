package logging

import "testing"

func TestNew(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "bogus", ""}
	for _, level := range levels {
		if logger := New(level); logger == nil || logger.Logger == nil {
			t.Errorf("New(%q) returned nil logger", level)
		}
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
}
