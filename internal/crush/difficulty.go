package crush

import "fmt"

// Difficulty is a named board preset.
type Difficulty struct {
	Name     string
	Size     int
	MaxTurns int
	Candies  int
}

// Difficulties are the built-in presets, easiest first.
var Difficulties = []Difficulty{
	{Name: "easy", Size: 6, MaxTurns: 6, Candies: 4},
	{Name: "medium", Size: 8, MaxTurns: 9, Candies: 4},
	{Name: "hard", Size: 6, MaxTurns: 8, Candies: 5},
	{Name: "expert", Size: 8, MaxTurns: 11, Candies: 5},
}

// CustomDifficulty names a loaded game that matches no preset.
const CustomDifficulty = "custom"

// DefaultDifficulty returns the preset used for fresh games and after a
// corrupted load.
func DefaultDifficulty() Difficulty {
	return Difficulties[0]
}

// DifficultyByName looks up a preset.
func DifficultyByName(name string) (Difficulty, error) {
	for _, d := range Difficulties {
		if d.Name == name {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("crush: unknown difficulty %q", name)
}

// DifficultyNames returns the preset names in order.
func DifficultyNames() []string {
	names := make([]string, len(Difficulties))
	for i, d := range Difficulties {
		names[i] = d.Name
	}
	return names
}

// DifficultyOf names the preset matching a state's size and turn limit,
// or CustomDifficulty.
func DifficultyOf(s GameState) string {
	for _, d := range Difficulties {
		if uint(d.Size) == s.Size && uint(d.MaxTurns) == s.MaxTurns {
			return d.Name
		}
	}
	return CustomDifficulty
}

// Describe returns a one-line summary for menus.
func (d Difficulty) Describe() string {
	return fmt.Sprintf("%dx%d, %d turns, %d candies", d.Size, d.Size, d.MaxTurns, d.Candies)
}
