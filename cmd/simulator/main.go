package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	simconfig "github.com/rjuang/rum/simulator/config"
)

func main() {
	cfg, err := simconfig.Load()
	if err != nil {
		fmt.Printf("failed to load simulator config: %v\n", err)
		cfg = simconfig.Default()
	}
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
