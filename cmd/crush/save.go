package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-crush/internal/crush"
	"github.com/vovakirdan/number-crush/internal/save"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Inspect or delete the save file",
}

var saveShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Decode the save file and print the game",
	Args:  cobra.NoArgs,
	RunE:  runSaveShow,
}

var saveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the save file",
	Args:  cobra.NoArgs,
	RunE:  runSaveClear,
}

func init() {
	saveCmd.AddCommand(saveShowCmd)
	saveCmd.AddCommand(saveClearCmd)
}

func runSaveShow(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	path := a.cfg.SavePath()
	st, err := save.Load(path)
	if errors.Is(err, save.ErrNoSave) {
		fmt.Printf("No saved game at %s.\n", path)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Save file:  %s\n", path)
	fmt.Printf("Difficulty: %s (%dx%d)\n", crush.DifficultyOf(st), st.Size, st.Size)
	fmt.Printf("Score:      %d (best %d)\n", st.Score, st.BestScore)
	fmt.Printf("Turn:       %d/%d, %d left\n", st.Turn, st.MaxTurns, st.TurnsLeft())
	fmt.Println()
	fmt.Println(st.Grid.String())
	return nil
}

func runSaveClear(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := save.Remove(a.cfg.SavePath()); err != nil {
		return err
	}
	a.logger.Info("save cleared", "path", a.cfg.SavePath())
	fmt.Println("Save file deleted.")
	return nil
}
