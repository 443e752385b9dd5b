// crush is a turn-limited number matching puzzle for the terminal.
//
// Usage:
//
//	crush                      - Start the main menu
//	crush play                 - Start a new game
//	crush continue             - Resume the saved game
//	crush scores [difficulty]  - Show finished games and best scores
//	crush save show            - Print the saved game
//	crush config show          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.crush/scores.db)
//	--save <path>   - Set save file path (default: ~/.crush/save.txt)
//	--config <path> - Use a custom config YAML
//	--log <path>    - Set log file path (default: ~/.crush/crush.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagSavePath string
	flagConfig   string
	flagLogPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crush",
	Short: "Number Crush - a candy matching puzzle in your terminal",
	Long: `Number Crush is a turn-limited matching puzzle. Swap two neighbouring
numbers to line up three or more of the same value; they disappear, the
numbers above fall down, and chains score more.

Available commands:
  menu      - Interactive main menu (default)
  play      - Start a new game
  continue  - Resume the saved game
  scores    - View finished games and high scores
  save      - Inspect the save file
  config    - Inspect the configuration

Examples:
  crush
  crush play --difficulty hard
  crush continue
  crush scores medium`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.crush/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "", "Path to save file (default ~/.crush/save.txt)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default ~/.crush/crush.log)")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(continueCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(configCmd)
}
