package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skydive/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:     "levels",
	Aliases: []string{"list"},
	Short:   "List all available levels",
	Long:    `Shows every level registered in the game with what it spawns.`,
	Run:     runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %-14s  %s\n", maxNameLen, "Name", "Title", "Obstacles")
	fmt.Printf("  %-*s  %-14s  %s\n", maxNameLen, "----", "-----", "---------")

	for _, info := range levels {
		l, err := registry.Create(info.Name)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %-14s  %v\n", maxNameLen, l.Name, l.Title, l.Obstacles)
	}

	fmt.Println()
	fmt.Println("Run 'skydive play <name>' to dive.")
}
