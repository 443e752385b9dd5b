package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-crush/internal/platform/tui"
	"github.com/vovakirdan/number-crush/internal/save"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with the main menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  crush menu
  crush menu --seed 42
  crush menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	notice := ""
	for {
		menuResult, err := tui.RunMenu(tui.MenuOptions{
			HasSave: save.Exists(a.cfg.SavePath()),
			Notice:  notice,
		}, a.runtime)
		if err != nil {
			return err
		}
		notice = ""

		// Update config with any size changes
		a.runtime = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuScores:
			goBack, err := tui.RunScoreboard(a.store, a.cfg.Game.Difficulty, a.runtime.ScreenW, a.runtime.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuNewGame:
			pick, err := tui.RunDifficultyPicker(a.cfg.Game.Difficulty, a.bestScores(), a.runtime)
			if err != nil {
				return err
			}
			if pick.Quit {
				return nil
			}
			if pick.Difficulty == nil {
				continue // Back to menu
			}
			sess, err := a.newSession(*pick.Difficulty)
			if err != nil {
				return err
			}
			result, err := a.play(sess, "")
			if err != nil {
				return err
			}
			if result.Quit {
				return nil
			}

		case tui.MenuContinue:
			sess, gameNotice, err := a.resumeSession()
			if errors.Is(err, save.ErrNoSave) {
				notice = "No saved game to continue."
				continue
			}
			if err != nil {
				return err
			}
			result, err := a.play(sess, gameNotice)
			if err != nil {
				return err
			}
			if result.Quit {
				return nil
			}

		default:
			return nil
		}
	}
}
