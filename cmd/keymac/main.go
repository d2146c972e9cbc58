package main

import (
	"fmt"
	"os"

	"github.com/keymaclab/keymac/internal/cli"
	"github.com/keymaclab/keymac/internal/config"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	display := cli.NewConsoleDisplay()
	input := cli.NewConsoleInput()

	menu := cli.NewMenu(display, input, cfg)
	if err := menu.Run(); err != nil {
		display.ShowError(err)
		os.Exit(1)
	}
}
