package crush

import (
	"fmt"
	"math/rand"
)

// maxGenerateAttempts bounds random retries before falling back to the
// constructive fill.
const maxGenerateAttempts = 10000

// NewGrid returns a size×size grid filled with candies in [1, candies] and
// no run in any row or column.
func NewGrid(rng *rand.Rand, size, candies int) (Grid, error) {
	if size < MinGridSize || size > MaxGridSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSize, size, MinGridSize, MaxGridSize)
	}
	if candies < 2 || uint(candies) > MaxCandyValue {
		return nil, fmt.Errorf("%w: %d not in [2, %d]", ErrInvalidCandies, candies, MaxCandyValue)
	}

	g := NewEmptyGrid(size)
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		fillRandom(g, rng, candies)
		if !g.HasRun() {
			return g, nil
		}
	}

	fillStable(g, candies)
	return g, nil
}

// InitGrid is NewGrid for callers that already validated their parameters.
// It panics on invalid input.
func InitGrid(rng *rand.Rand, size, candies int) Grid {
	g, err := NewGrid(rng, size, candies)
	if err != nil {
		panic(err)
	}
	return g
}

func fillRandom(g Grid, rng *rand.Rand, candies int) {
	for r := range g {
		for c := range g[r] {
			g[r][c] = uint(rng.Intn(candies)) + 1
		}
	}
}

// fillStable writes a diagonal pattern in which neighbours always differ.
func fillStable(g Grid, candies int) {
	for r := range g {
		for c := range g[r] {
			g[r][c] = uint((r+c)%candies) + 1
		}
	}
}
