package crush

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
)

var (
	ErrInvalidMove = errors.New("crush: invalid move")
	ErrSessionOver = errors.New("crush: no turns left")
	ErrAutosave    = errors.New("crush: autosave failed")
)

// Saver persists a snapshot of the game after every accepted move.
type Saver interface {
	Save(state GameState) error
}

// Session runs one turn-limited game.
type Session struct {
	state  GameState
	saver  Saver
	logger *log.Logger
	last   Resolution
}

// NewSession resumes play from state. saver and logger may be nil.
func NewSession(state GameState, saver Saver, logger *log.Logger) *Session {
	return &Session{
		state:  state.Clone(),
		saver:  saver,
		logger: logger,
	}
}

// StartSession generates a fresh board for the difficulty. best seeds the
// BestScore field.
func StartSession(rng *rand.Rand, d Difficulty, best uint, saver Saver, logger *log.Logger) (*Session, error) {
	g, err := NewGrid(rng, d.Size, d.Candies)
	if err != nil {
		return nil, err
	}
	s := NewSession(GameState{
		Grid:      g,
		BestScore: best,
		Size:      uint(d.Size),
		MaxTurns:  uint(d.MaxTurns),
	}, saver, logger)
	if logger != nil {
		logger.Info("session started", "difficulty", d.Name, "size", d.Size, "turns", d.MaxTurns, "candies", d.Candies)
	}
	return s, nil
}

// Apply plays one move: swap, resolve, advance the turn and autosave.
//
// An autosave failure does not undo the move; the resolution is returned
// together with an error wrapping ErrAutosave.
func (s *Session) Apply(m Move) (Resolution, error) {
	if s.state.Over() {
		return Resolution{}, ErrSessionOver
	}
	if !IsValidMove(s.state.Grid, m) {
		return Resolution{}, fmt.Errorf("%w: %s from (%d, %d)", ErrInvalidMove, m.Dir, m.From.Row, m.From.Col)
	}

	MakeAMove(s.state.Grid, m)
	res := Resolve(s.state.Grid, &s.state.Score)
	s.state.Turn++
	s.last = res

	if s.logger != nil {
		s.logger.Debug("move applied",
			"turn", s.state.Turn,
			"from", fmt.Sprintf("%d,%d", m.From.Row, m.From.Col),
			"dir", m.Dir,
			"combos", res.Combos,
			"delta", res.Delta,
			"score", s.state.Score,
		)
		if s.state.Over() {
			s.logger.Info("session finished", "score", s.state.Score, "turns", s.state.Turn)
		}
	}

	if s.saver != nil {
		if err := s.saver.Save(s.state.Clone()); err != nil {
			if s.logger != nil {
				s.logger.Warn("autosave failed", "turn", s.state.Turn, "error", err)
			}
			return res, fmt.Errorf("%w: %w", ErrAutosave, err)
		}
	}
	return res, nil
}

// State returns a copy of the current state.
func (s *Session) State() GameState {
	return s.state.Clone()
}

// Grid exposes the live grid for rendering. Callers must not modify it.
func (s *Session) Grid() Grid {
	return s.state.Grid
}

// Score returns the running score.
func (s *Session) Score() uint {
	return s.state.Score
}

// LastResolution returns the outcome of the most recent move.
func (s *Session) LastResolution() Resolution {
	return s.last
}

// Over reports whether the session has used all its turns.
func (s *Session) Over() bool {
	return s.state.Over()
}

// TurnsLeft returns the number of remaining moves.
func (s *Session) TurnsLeft() uint {
	return s.state.TurnsLeft()
}
