package cli

import "github.com/keymaclab/keymac/internal/config"

// Menu implements MenuInterface for handling the main application flow
type Menu struct {
	display   DisplayHandler
	input     UserInputHandler
	runner    *Runner
	benchmark *BenchmarkRunner
}

// NewMenu creates a new menu instance. cfg supplies the default hash
// algorithm offered in the algorithm submenu.
func NewMenu(display DisplayHandler, input UserInputHandler, cfg *config.Config) *Menu {
	return &Menu{
		display:   display,
		input:     input,
		runner:    NewRunner(display, input, cfg),
		benchmark: NewBenchmarkRunner(display, input),
	}
}

// Run executes the main menu loop
func (m *Menu) Run() error {
	m.display.ShowWelcome()

	for {
		m.display.ShowMenu()

		choice, err := m.input.GetChoice()
		if err != nil {
			m.display.ShowError(err)
			continue
		}

		if choice == OptionExit {
			m.display.ShowGoodbye()
			return nil
		}

		if err := m.processChoice(choice); err != nil {
			m.display.ShowError(err)
		}
	}
}

// processChoice handles the user's menu choice
func (m *Menu) processChoice(choice int) error {
	var (
		result string
		steps  []string
		err    error
	)

	switch choice {
	case OptionHMACSum:
		result, steps, err = m.runner.RunHMACSum()
	case OptionHMACVerify:
		result, steps, err = m.runner.RunHMACVerify()
	case OptionHKDFDerive:
		result, steps, err = m.runner.RunHKDFDerive()
	case OptionBenchmark:
		result, steps, err = m.benchmark.RunHMACBenchmark()
	default:
		return nil
	}
	if err != nil {
		return err
	}

	m.display.ShowResult(result, steps)
	return nil
}
