package cli

import "github.com/keymaclab/keymac/internal/hashdispatch"

// AppVersion is the current version of the application
const AppVersion = "v1.0.0"

// Menu options
const (
	OptionHMACSum = iota + 1
	OptionHMACVerify
	OptionHKDFDerive
	OptionBenchmark
	OptionExit
)

// MenuOption represents a menu option with its configuration
type MenuOption struct {
	ID          int
	Name        string
	Description string
}

// GetMenuOptions returns all available menu options
func GetMenuOptions() []MenuOption {
	return []MenuOption{
		{ID: OptionHMACSum, Name: "HMAC - Compute tag", Description: "Derive a MAC for a message under a key"},
		{ID: OptionHMACVerify, Name: "HMAC - Verify tag", Description: "Constant-time check of a message against a tag"},
		{ID: OptionHKDFDerive, Name: "HKDF - Derive key material", Description: "RFC 5869 extract-then-expand"},
		{ID: OptionBenchmark, Name: "Benchmark", Description: "Compare HMAC throughput across hash algorithms"},
		{ID: OptionExit, Name: "Exit", Description: "Exit the program"},
	}
}

// GetAlgorithmMenuOptions returns the selectable hash algorithms in menu order.
func GetAlgorithmMenuOptions() []hashdispatch.Algorithm {
	return hashdispatch.Algorithms
}
