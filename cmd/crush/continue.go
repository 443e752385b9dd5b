package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-crush/internal/save"
)

var continueCmd = &cobra.Command{
	Use:   "continue",
	Short: "Resume the saved game",
	Long: `Load the save file and resume the game.

A corrupted save cannot be resumed; a new easy game is started instead.

Examples:
  crush continue
  crush continue --save ./save.txt`,
	Args: cobra.NoArgs,
	RunE: runContinue,
}

func runContinue(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sess, notice, err := a.resumeSession()
	if errors.Is(err, save.ErrNoSave) {
		return fmt.Errorf("no saved game at %s; run 'crush play' to start one", a.cfg.SavePath())
	}
	if err != nil {
		return err
	}
	if notice != "" {
		fmt.Fprintln(os.Stderr, notice)
	}

	result, err := a.play(sess, notice)
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}
