package display

import (
	"strings"
	"testing"
)

func TestNewVisualizer(t *testing.T) {
	v := NewVisualizer()
	if v == nil {
		t.Fatal("NewVisualizer returned nil")
	}
	if v.steps == nil {
		t.Fatal("Visualizer steps slice is nil")
	}
	if len(v.steps) != 0 {
		t.Fatal("New visualizer should have empty steps")
	}
	if v.theme == nil {
		t.Fatal("Visualizer theme is nil")
	}
}

func TestAddStep(t *testing.T) {
	testCases := []struct {
		step     string
		expected string
	}{
		{"Note: This is a note", "\033[2m"},
		{"How HMAC works", "\033[1m"},
		{"Security considerations", "\033[1m"},
		{"Input -> Output", "\033[93m"},
		{"Round 1 of 3", "\033[95m"},
		{"Regular step", ""},
	}

	for _, tc := range testCases {
		v := NewVisualizer()
		v.AddStep(tc.step)
		got := v.GetSteps()[0]
		if tc.expected != "" && !strings.Contains(got, tc.expected) {
			t.Errorf("AddStep(%q) = %q, want it to contain %q", tc.step, got, tc.expected)
		}
	}
}

func TestAddHexStep(t *testing.T) {
	v := NewVisualizer()
	v.AddHexStep("ipad", []byte{0x36, 0x36})
	steps := v.GetSteps()
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	if !strings.Contains(steps[0], "36") {
		t.Errorf("AddHexStep output missing hex bytes: %q", steps[0])
	}
}

func TestGetSteps(t *testing.T) {
	v := NewVisualizer()
	v.AddStep("one")
	v.AddStep("two")
	if len(v.GetSteps()) != 2 {
		t.Errorf("expected 2 steps, got %d", len(v.GetSteps()))
	}
}
