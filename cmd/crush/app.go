package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/number-crush/internal/codec"
	"github.com/vovakirdan/number-crush/internal/config"
	"github.com/vovakirdan/number-crush/internal/core"
	"github.com/vovakirdan/number-crush/internal/crush"
	"github.com/vovakirdan/number-crush/internal/logging"
	"github.com/vovakirdan/number-crush/internal/platform/tui"
	"github.com/vovakirdan/number-crush/internal/save"
	"github.com/vovakirdan/number-crush/internal/storage"
)

// corruptedNotice is shown when a save could not be read back.
const corruptedNotice = "The saved game was corrupted. Starting a new easy game."

// app holds what every command opens: configuration, log file, score
// database and the terminal size.
type app struct {
	cfg     config.Config
	source  string
	logger  *logging.Logger
	store   *storage.Store // nil when the database could not be opened
	runtime core.RuntimeConfig
}

// openApp loads the configuration, applies the global flags and opens the
// log file and score database.
func openApp() (*app, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	applyPathFlags(&cfg)

	logger, err := logging.New(logging.Options{
		Path:       cfg.LogPath(),
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	}
	logger.Debug("config loaded", "source", source)

	store, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", cfg.DatabasePath(), "error", err)
		store = nil
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc = rc.WithSize(w, h)
	}
	rc.Seed = flagSeed

	return &app{
		cfg:     cfg,
		source:  source,
		logger:  logger,
		store:   store,
		runtime: rc,
	}, nil
}

// applyPathFlags lets --save, --db and --log override the configured paths.
func applyPathFlags(cfg *config.Config) {
	if flagSavePath != "" {
		cfg.Paths.Save = flagSavePath
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}
	if flagLogPath != "" {
		cfg.Paths.Log = flagLogPath
	}
}

// Close releases the database and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("cannot close scores database", "error", err)
		}
	}
	//nolint:errcheck // Nothing left to report to
	a.logger.Close()
}

// bestScore returns the recorded high score for a difficulty, capped to
// what the save file can hold.
func (a *app) bestScore(difficulty string) uint {
	if a.store == nil {
		return 0
	}
	hs, err := a.store.HighScore(difficulty)
	if err != nil {
		a.logger.Warn("cannot read high score", "difficulty", difficulty, "error", err)
		return 0
	}
	return min(uint(max(hs, 0)), codec.MaxValue)
}

// bestScores returns the high score of every played difficulty.
func (a *app) bestScores() map[string]int {
	best := make(map[string]int)
	if a.store == nil {
		return best
	}
	stats, err := a.store.GetAllStats()
	if err != nil {
		a.logger.Warn("cannot read stats", "error", err)
		return best
	}
	for name, st := range stats {
		best[name] = st.HighScore
	}
	return best
}

// newSession generates a fresh board for d.
func (a *app) newSession(d crush.Difficulty) (*crush.Session, error) {
	seed := a.runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Info("new game", "difficulty", d.Name, "seed", seed)

	rng := rand.New(rand.NewSource(seed))
	return crush.StartSession(rng, d, a.bestScore(d.Name), a.saver(), a.logger.Logger)
}

// resumeSession loads the save file. A corrupted save is deleted and replaced
// by a fresh easy game and a notice for the player; a missing one returns
// save.ErrNoSave.
func (a *app) resumeSession() (sess *crush.Session, notice string, err error) {
	st, err := save.Load(a.cfg.SavePath())
	switch {
	case err == nil:
		a.logger.Info("game resumed", "difficulty", crush.DifficultyOf(st), "turn", st.Turn, "score", st.Score)
		return crush.NewSession(st, a.saver(), a.logger.Logger), "", nil
	case errors.Is(err, save.ErrCorrupted):
		a.logger.Warn("corrupted save", "path", a.cfg.SavePath(), "error", err)
		if rmErr := save.Remove(a.cfg.SavePath()); rmErr != nil {
			a.logger.Warn("cannot remove corrupted save", "error", rmErr)
		}
		fresh, newErr := a.newSession(crush.DefaultDifficulty())
		return fresh, corruptedNotice, newErr
	default:
		return nil, "", err
	}
}

func (a *app) saver() crush.Saver {
	return save.FileSaver{Path: a.cfg.SavePath()}
}

// play runs the board screen for a session.
func (a *app) play(sess *crush.Session, notice string) (tui.GameResult, error) {
	return tui.RunGame(tui.GameOptions{
		Session:  sess,
		Keys:     a.cfg.Keys,
		Input:    a.cfg.Input,
		Store:    a.store,
		SavePath: a.cfg.SavePath(),
		ShotDir:  filepath.Join(config.DataDir(), "screenshots"),
		Notice:   notice,
		Logger:   a.logger.Logger,
		Width:    a.runtime.ScreenW,
		Height:   a.runtime.ScreenH,
	})
}
