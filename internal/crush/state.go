package crush

// GameState is everything needed to resume a session.
type GameState struct {
	Grid      Grid
	Score     uint
	BestScore uint // Carried through saves; never raised during play
	Turn      uint // Moves played so far
	Size      uint
	MaxTurns  uint
}

// Clone returns a copy that shares no memory with s.
func (s GameState) Clone() GameState {
	c := s
	c.Grid = s.Grid.Clone()
	return c
}

// Over reports whether the turn limit has been reached.
func (s GameState) Over() bool {
	return s.Turn >= s.MaxTurns
}

// TurnsLeft returns the number of moves remaining.
func (s GameState) TurnsLeft() uint {
	if s.Over() {
		return 0
	}
	return s.MaxTurns - s.Turn
}
