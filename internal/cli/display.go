package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/keymaclab/keymac/internal/display"
	"github.com/keymaclab/keymac/internal/hashdispatch"
)

// ConsoleDisplay implements DisplayHandler for console output
type ConsoleDisplay struct {
	theme display.Theme
}

// NewConsoleDisplay creates a new console display handler
func NewConsoleDisplay() *ConsoleDisplay {
	return &ConsoleDisplay{
		theme: display.DefaultTheme,
	}
}

// ShowMenu displays the main menu
func (d *ConsoleDisplay) ShowMenu() {
	fmt.Printf("\n%s\n", d.theme.Format("keymac - choose an operation:", "bold cyan"))
	for _, opt := range GetMenuOptions() {
		fmt.Printf("%s\n", d.theme.Format(fmt.Sprintf("%d. %s", opt.ID, opt.Name), "yellow"))
	}
	fmt.Printf("\n%s", d.theme.Format(fmt.Sprintf("Enter your choice (1-%d): ", OptionExit), "green"))
}

// ShowAlgorithmMenu displays the hash algorithm submenu, marking the
// configured default.
func (d *ConsoleDisplay) ShowAlgorithmMenu(defaultAlg hashdispatch.Algorithm) {
	fmt.Printf("\n%s\n", d.theme.Format("Choose a hash algorithm:", "bold cyan"))
	for i, alg := range GetAlgorithmMenuOptions() {
		label := fmt.Sprintf("%d. %s", i+1, alg)
		if alg == defaultAlg {
			label += " (default)"
		}
		fmt.Printf("%s\n", d.theme.Format(label, "yellow"))
	}
	fmt.Printf("\n%s", d.theme.Format(fmt.Sprintf("Enter your choice (1-%d): ", len(GetAlgorithmMenuOptions())), "green"))
}

// ShowResult displays the processing result and steps
func (d *ConsoleDisplay) ShowResult(result string, steps []string) {
	if result != "" {
		fmt.Printf("\n%s\n", d.theme.Format("Result:", "bold brightGreen"))
		fmt.Printf("%s\n", d.theme.Format(result, "brightGreen"))
	}

	fmt.Printf("\n%s\n", d.theme.Format("Processing Steps:", "bold brightCyan"))

	sections := map[string][]string{
		"📌 Introduction":      make([]string, 0),
		"🔢 Implementation":    make([]string, 0),
		"🔍 Technical Details": make([]string, 0),
		"📈 Security":          make([]string, 0),
	}

	currentSection := "📌 Introduction"
	for _, step := range steps {
		if strings.HasPrefix(step, "Note:") && !strings.Contains(step, "Security") {
			currentSection = "📌 Introduction"
		}
		if strings.HasPrefix(step, "How") ||
			strings.HasPrefix(step, "1.") ||
			strings.HasPrefix(step, "2.") ||
			strings.HasPrefix(step, "3.") {
			currentSection = "🔢 Implementation"
		}
		if strings.HasPrefix(step, "Key") ||
			strings.HasPrefix(step, "Block") ||
			strings.HasPrefix(step, "Extract") ||
			strings.HasPrefix(step, "Expand") {
			currentSection = "🔍 Technical Details"
		}
		if strings.HasPrefix(step, "Security") {
			currentSection = "📈 Security"
		}
		sections[currentSection] = append(sections[currentSection], step)
	}

	for _, section := range []string{"📌 Introduction", "🔢 Implementation", "🔍 Technical Details", "📈 Security"} {
		sectionSteps := sections[section]
		if len(sectionSteps) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", d.theme.Format(section, "bold"))
		fmt.Printf("%s\n", d.theme.Format(strings.Repeat("=", len(section)), "dim"))
		for _, step := range sectionSteps {
			switch {
			case strings.HasPrefix(step, "Note:"):
				fmt.Printf("%s\n", d.theme.Format(step, "dim"))
			case strings.Contains(step, "->"):
				fmt.Printf("%s\n", d.theme.Format(step, "brightYellow"))
			default:
				fmt.Printf("%s\n", step)
			}
		}
		fmt.Printf("%s\n", d.theme.Format("----------------------------------------", "dim blue"))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"#", "Step"})
	for i, step := range steps {
		// nolint:errcheck // table append is safe to ignore in a CLI demo
		table.Append([]string{fmt.Sprintf("%d", i+1), step})
	}
	// nolint:errcheck // table render is safe to ignore in a CLI demo
	table.Render()
}

// ShowError displays an error message
func (d *ConsoleDisplay) ShowError(err error) {
	fmt.Printf("\n%s %s\n", d.theme.Format("Error:", "bold brightRed"), d.theme.Format(err.Error(), "red"))
	fmt.Printf("%s\n", d.theme.Format("----------------------------------------", "dim blue"))
}

// ShowWelcome displays the welcome message
func (d *ConsoleDisplay) ShowWelcome() {
	fmt.Printf("%s\n", d.theme.Format("Welcome to keymac!", "bold brightCyan"))
	fmt.Printf("%s\n", d.theme.Format("Version: "+AppVersion, "dim white"))
	fmt.Printf("%s\n", d.theme.Format("This program demonstrates HMAC and HKDF, step by step.", "dim white"))
	fmt.Printf("%s\n", d.theme.Format("----------------------------------------", "dim blue"))
}

// ShowGoodbye displays the goodbye message
func (d *ConsoleDisplay) ShowGoodbye() {
	fmt.Printf("\n%s\n", d.theme.Format("Thank you for using keymac!", "brightCyan bold"))
	fmt.Printf("%s\n", d.theme.Format("Goodbye!", "brightCyan bold"))
}

// ShowMessage displays an arbitrary prompt
func (d *ConsoleDisplay) ShowMessage(message string) {
	fmt.Printf("\n%s", d.theme.Format(message, "brightGreen bold"))
}

// ShowProcessingMessage displays the message being processed
func (d *ConsoleDisplay) ShowProcessingMessage(message string) {
	fmt.Printf("\n%s %s\n", d.theme.Format("Processing message:", "bold brightPurple"), d.theme.Format(message, "purple"))
	fmt.Printf("%s\n", d.theme.Format("----------------------------------------", "dim blue"))
}
