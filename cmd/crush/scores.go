package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-crush/internal/crush"
	"github.com/vovakirdan/number-crush/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the best finished games, for one difficulty or for all of them,
followed by per-difficulty statistics.

Examples:
  crush scores
  crush scores hard
  crush scores hard --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded games instead of listing them")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to list")
}

func runScores(_ *cobra.Command, args []string) error {
	difficulty := storage.AllDifficulties
	if len(args) == 1 {
		difficulty = args[0]
		if _, err := crush.DifficultyByName(difficulty); err != nil && difficulty != crush.CustomDifficulty {
			return err
		}
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.store == nil {
		return errors.New("scores database is not available")
	}

	if flagClear {
		n, err := a.store.ClearScores(difficulty)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d recorded games.\n", n)
		return nil
	}

	scores, err := a.store.TopScores(difficulty, flagLimit)
	if err != nil {
		return err
	}

	title := "all difficulties"
	if difficulty != storage.AllDifficulties {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crush play' and finish a game to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-5s  %s\n", "Rank", "Score", "Difficulty", "Turns", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-5s  %s\n", "----", "-----", "----------", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-10s  %-5d  %s\n", i+1, entry.Score, entry.Difficulty, entry.Turns, dateStr)
	}

	fmt.Println()
	return printStats(a.store, difficulty)
}

func printStats(store *storage.Store, difficulty string) error {
	all, err := store.GetAllStats()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(all))
	for name := range all {
		if difficulty == storage.AllDifficulties || name == difficulty {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		st := all[name]
		fmt.Printf("%-8s games: %-4d best: %-6d average: %-8.1f last played: %s\n",
			name, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
