package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-crush/internal/crush"
	"github.com/vovakirdan/number-crush/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a new game",
	Long: `Start a new game. Without --difficulty a picker is shown.
Starting a new game replaces the saved one after the first move.

Controls (cursor mode):
  Arrows/hjkl  - Move the cursor
  z/s/a/e      - Swap the selected number up/down/left/right
  Tab          - Switch to typed commands ("row col dir")
  ?            - More keys
  Esc          - Back
  Q/Ctrl+C     - Quit

Difficulty presets:
` + difficultyHelp() + `
Examples:
  crush play
  crush play --difficulty hard
  crush play --difficulty easy --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "",
		"Difficulty preset: "+strings.Join(crush.DifficultyNames(), ", "))
}

func difficultyHelp() string {
	var b strings.Builder
	for _, d := range crush.Difficulties {
		fmt.Fprintf(&b, "  %-7s - %s\n", d.Name, d.Describe())
	}
	return b.String()
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var d crush.Difficulty
	if cmd.Flags().Changed("difficulty") {
		d, err = a.cfg.Difficulty(flagDifficulty)
		if err != nil {
			return err
		}
	} else {
		pick, err := tui.RunDifficultyPicker(a.cfg.Game.Difficulty, a.bestScores(), a.runtime)
		if err != nil {
			return err
		}
		if pick.Difficulty == nil {
			return nil
		}
		d = *pick.Difficulty
	}

	sess, err := a.newSession(d)
	if err != nil {
		return err
	}
	result, err := a.play(sess, "")
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

// printResult leaves a one-line summary on the terminal after the alt screen closes.
func printResult(r tui.GameResult) {
	st := r.State
	if r.Finished {
		fmt.Printf("Game over: %d points in %d turns.\n", st.Score, st.Turn)
		return
	}
	if st.Turn == 0 {
		return
	}
	fmt.Printf("Game saved at turn %d/%d with %d points. Run 'crush continue' to resume.\n",
		st.Turn, st.MaxTurns, st.Score)
}
