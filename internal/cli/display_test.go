package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/keymaclab/keymac/internal/display"
	"github.com/keymaclab/keymac/internal/hashdispatch"
)

func captureOutput(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outputCh := make(chan string)
	go func() {
		var buf strings.Builder
		io.Copy(&buf, r)
		outputCh <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = oldStdout
	return <-outputCh
}

func TestConsoleDisplay(t *testing.T) {
	d := NewConsoleDisplay()

	output := captureOutput(d.ShowMenu)
	if !strings.Contains(output, "keymac") {
		t.Error("ShowMenu did not produce expected output")
	}

	output = captureOutput(func() { d.ShowAlgorithmMenu(hashdispatch.SHA256) })
	if !strings.Contains(output, "sha256") || !strings.Contains(output, "(default)") {
		t.Error("ShowAlgorithmMenu did not mark the default algorithm")
	}

	output = captureOutput(d.ShowWelcome)
	if !strings.Contains(output, "Welcome to keymac") {
		t.Error("ShowWelcome did not produce expected output")
	}

	output = captureOutput(d.ShowGoodbye)
	if !strings.Contains(output, "Goodbye") {
		t.Error("ShowGoodbye did not produce expected output")
	}

	output = captureOutput(func() { d.ShowMessage("test message") })
	if !strings.Contains(output, "test message") {
		t.Error("ShowMessage did not produce expected output")
	}

	output = captureOutput(func() { d.ShowProcessingMessage("processing") })
	if !strings.Contains(output, "processing") {
		t.Error("ShowProcessingMessage did not produce expected output")
	}

	output = captureOutput(func() { d.ShowError(fmt.Errorf("test error")) })
	if !strings.Contains(output, "test error") {
		t.Error("ShowError did not produce expected output")
	}

	output = captureOutput(func() { d.ShowResult("test result", []string{"Note: step1", "Security: step2"}) })
	if !strings.Contains(output, "test result") || !strings.Contains(output, "step1") || !strings.Contains(output, "step2") {
		t.Error("ShowResult did not produce expected output")
	}
}

func TestDisplayTheme(t *testing.T) {
	d := NewConsoleDisplay()
	if d.theme != display.DefaultTheme {
		t.Errorf("expected default theme, got %v", d.theme)
	}
}
