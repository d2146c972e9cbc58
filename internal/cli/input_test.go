package cli

import (
	"bufio"
	"strings"
	"testing"

	"github.com/keymaclab/keymac/internal/display"
)

func newTestInput(lines string) *ConsoleInput {
	return &ConsoleInput{
		scanner: bufio.NewScanner(strings.NewReader(lines)),
		theme:   display.DefaultTheme,
	}
}

func TestGetChoice(t *testing.T) {
	in := newTestInput("2\n")
	choice, err := in.GetChoice()
	if err != nil {
		t.Fatalf("GetChoice failed: %v", err)
	}
	if choice != 2 {
		t.Errorf("expected choice 2, got %d", choice)
	}
}

func TestGetChoiceOutOfRange(t *testing.T) {
	in := newTestInput("99\n")
	if _, err := in.GetChoice(); err == nil {
		t.Error("expected error for out-of-range choice")
	}
}

func TestGetAlgorithmChoice(t *testing.T) {
	in := newTestInput("3\n")
	choice, err := in.GetAlgorithmChoice()
	if err != nil {
		t.Fatalf("GetAlgorithmChoice failed: %v", err)
	}
	if choice != 3 {
		t.Errorf("expected choice 3, got %d", choice)
	}
}

func TestGetText(t *testing.T) {
	in := newTestInput("Hello, World!\n")
	text, err := in.GetText("prompt: ")
	if err != nil {
		t.Fatalf("GetText failed: %v", err)
	}
	if text != "Hello, World!" {
		t.Errorf("expected 'Hello, World!', got %q", text)
	}
}

func TestGetTextEmpty(t *testing.T) {
	in := newTestInput("\n")
	if _, err := in.GetText("prompt: "); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestGetHex(t *testing.T) {
	in := newTestInput("deadbeef\n")
	got, err := in.GetHex("prompt: ", false)
	if err != nil {
		t.Fatalf("GetHex failed: %v", err)
	}
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	if string(got) != string(want) {
		t.Errorf("expected %x, got %x", want, got)
	}
}

func TestGetHexOptionalEmpty(t *testing.T) {
	in := newTestInput("\n")
	got, err := in.GetHex("prompt: ", true)
	if err != nil {
		t.Fatalf("GetHex failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %x", got)
	}
}

func TestGetHexRequiredEmpty(t *testing.T) {
	in := newTestInput("\n")
	if _, err := in.GetHex("prompt: ", false); err == nil {
		t.Error("expected error for empty required hex")
	}
}

func TestGetHexInvalid(t *testing.T) {
	in := newTestInput("not-hex\n")
	if _, err := in.GetHex("prompt: ", false); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestGetOutputLengthDefault(t *testing.T) {
	in := newTestInput("\n")
	n, err := in.GetOutputLength(32)
	if err != nil {
		t.Fatalf("GetOutputLength failed: %v", err)
	}
	if n != 32 {
		t.Errorf("expected default 32, got %d", n)
	}
}

func TestGetOutputLengthExplicit(t *testing.T) {
	in := newTestInput("64\n")
	n, err := in.GetOutputLength(32)
	if err != nil {
		t.Fatalf("GetOutputLength failed: %v", err)
	}
	if n != 64 {
		t.Errorf("expected 64, got %d", n)
	}
}
