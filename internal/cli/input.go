package cli

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/keymaclab/keymac/internal/display"
)

// ConsoleInput implements UserInputHandler for console input
type ConsoleInput struct {
	scanner *bufio.Scanner
	theme   display.Theme
}

// NewConsoleInput creates a new console input handler
func NewConsoleInput() *ConsoleInput {
	return &ConsoleInput{
		scanner: bufio.NewScanner(os.Stdin),
		theme:   display.DefaultTheme,
	}
}

// GetChoice reads the main menu choice
func (i *ConsoleInput) GetChoice() (int, error) {
	i.scanner.Scan()
	choice, err := strconv.Atoi(strings.TrimSpace(i.scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("invalid input: please enter a number between 1 and %d", OptionExit)
	}
	if choice < 1 || choice > OptionExit {
		return 0, fmt.Errorf("invalid choice: please enter a number between 1 and %d", OptionExit)
	}
	return choice, nil
}

// GetAlgorithmChoice reads the hash algorithm submenu choice
func (i *ConsoleInput) GetAlgorithmChoice() (int, error) {
	max := len(GetAlgorithmMenuOptions())
	i.scanner.Scan()
	choice, err := strconv.Atoi(strings.TrimSpace(i.scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("invalid input: please enter a number between 1 and %d", max)
	}
	if choice < 1 || choice > max {
		return 0, fmt.Errorf("invalid choice: please enter a number between 1 and %d", max)
	}
	return choice, nil
}

// GetText prompts and reads a non-empty line of text
func (i *ConsoleInput) GetText(prompt string) (string, error) {
	fmt.Printf("\n%s", i.theme.Format(prompt, "brightGreen bold"))
	i.scanner.Scan()
	text := strings.TrimSpace(i.scanner.Text())
	if text == "" {
		return "", fmt.Errorf("text cannot be empty")
	}
	return text, nil
}

// GetHex prompts and reads a hex-encoded byte string. When optional is true,
// an empty line decodes to a nil slice instead of erroring.
func (i *ConsoleInput) GetHex(prompt string, optional bool) ([]byte, error) {
	fmt.Printf("\n%s", i.theme.Format(prompt, "brightGreen bold"))
	i.scanner.Scan()
	text := strings.TrimSpace(i.scanner.Text())
	if text == "" {
		if optional {
			return nil, nil
		}
		return nil, fmt.Errorf("value cannot be empty")
	}
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	return decoded, nil
}

// GetOutputLength prompts and reads a positive integer, falling back to
// defaultLen on an empty line.
func (i *ConsoleInput) GetOutputLength(defaultLen int) (int, error) {
	fmt.Printf("\n%s", i.theme.Format(fmt.Sprintf("Enter a value (default %d): ", defaultLen), "brightGreen bold"))
	i.scanner.Scan()
	text := strings.TrimSpace(i.scanner.Text())
	if text == "" {
		return defaultLen, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid value: please enter a positive integer")
	}
	return n, nil
}
