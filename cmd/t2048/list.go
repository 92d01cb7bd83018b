package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants",
	Long:  `Shows every board variant with its size and winning tile.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := loadGameConfig()
	if err != nil {
		return err
	}

	variants := registry.List()
	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Println("Board variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Board", "Goal", "Description")
	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "--", "-----", "----", "-----------")

	for _, v := range variants {
		cfg := v.Apply(base)
		goal := "none"
		if cfg.Board.WinTile > 0 {
			goal = fmt.Sprint(cfg.Board.WinTile)
		}
		board := fmt.Sprintf("%dx%d", cfg.Board.Size, cfg.Board.Size)
		fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, v.ID, board, goal, v.Description)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a variant.")
	return nil
}
