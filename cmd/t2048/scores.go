package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/stats"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show top scores",
	Long: `Display the top scores recorded for a variant (classic by default).

Examples:
  t2048 scores
  t2048 scores big --player alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var statsCmd = &cobra.Command{
	Use:   "stats [variant]",
	Short: "Show lifetime statistics",
	Long: `Display best score, games played, total moves, average score and
total time played for a variant (classic by default).

Examples:
  t2048 stats
  t2048 stats endless`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

// variantArg returns the variant named by args, classic when none.
func variantArg(args []string) (registry.Variant, error) {
	id := t2048.DefaultVariant
	if len(args) > 0 {
		id = args[0]
	}
	v, err := registry.Get(id)
	if err != nil {
		return registry.Variant{}, fmt.Errorf("%w (run 't2048 list' to see variants)", err)
	}
	return v, nil
}

// trackerFor opens the store and returns the player's tracker for v.
// The returned close func releases the store.
func trackerFor(cmd *cobra.Command, v registry.Variant) (*stats.Tracker, func(), error) {
	store, err := openStore(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	tracker := stats.NewTracker(store, flagPlayer, nil).ForVariant(v.StatsScope)
	return tracker, func() { store.Close() }, nil
}

func runScores(cmd *cobra.Command, args []string) error {
	v, err := variantArg(args)
	if err != nil {
		return err
	}
	tracker, closeStore, err := trackerFor(cmd, v)
	if err != nil {
		return err
	}
	defer closeStore()

	entries := tracker.Leaderboard(cmd.Context())

	fmt.Printf("Top Scores - %s\n", v.Title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No games finished yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first score!\n", v.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %s\n", i+1, e.Score, e.HighestTile, e.Moves, e.Date)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", tracker.Totals(cmd.Context()).BestScore)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	v, err := variantArg(args)
	if err != nil {
		return err
	}
	tracker, closeStore, err := trackerFor(cmd, v)
	if err != nil {
		return err
	}
	defer closeStore()

	t := tracker.Totals(cmd.Context())

	fmt.Printf("Statistics - %s\n", v.Title)
	fmt.Println()
	fmt.Printf("  %-14s %d\n", "Best score", t.BestScore)
	fmt.Printf("  %-14s %d\n", "Games played", t.GamesPlayed)
	fmt.Printf("  %-14s %d\n", "Average score", t.AverageScore())
	fmt.Printf("  %-14s %d\n", "Total moves", t.TotalMoves)
	fmt.Printf("  %-14s %d\n", "Total score", t.TotalScore)
	fmt.Printf("  %-14s %s\n", "Time played", t2048.FormatDuration(time.Duration(t.TotalTimePlayed)*time.Second))
	return nil
}
