package cli

import "github.com/keymaclab/keymac/internal/hashdispatch"

// MenuInterface defines the contract for menu operations
type MenuInterface interface {
	Run() error
}

// UserInputHandler defines the contract for handling user input
type UserInputHandler interface {
	GetChoice() (int, error)
	GetAlgorithmChoice() (int, error)
	GetText(prompt string) (string, error)
	GetHex(prompt string, optional bool) ([]byte, error)
	GetOutputLength(defaultLen int) (int, error)
}

// DisplayHandler defines the contract for displaying output
type DisplayHandler interface {
	ShowMenu()
	ShowAlgorithmMenu(defaultAlg hashdispatch.Algorithm)
	ShowResult(result string, steps []string)
	ShowError(err error)
	ShowWelcome()
	ShowGoodbye()
	ShowMessage(message string)
	ShowProcessingMessage(message string)
}
