package crush

import (
	"math/rand"
	"testing"
)

func TestResolveSingleRowRun(t *testing.T) {
	g := Grid{
		{1, 2, 3, 4, 1},
		{2, 3, 4, 1, 2},
		{3, 3, 3, 2, 4},
		{4, 1, 2, 3, 1},
		{1, 2, 1, 4, 2},
	}
	var score uint = 10

	res := Resolve(g, &score)

	if res.Combos != 1 || res.Points != 6 || res.Delta != 6 {
		t.Errorf("Resolve() = %+v, want 1 combo, 6 points, delta 6", res)
	}
	if score != 16 {
		t.Errorf("score = %d, want 16", score)
	}

	want := Grid{
		{0, 0, 0, 4, 1},
		{1, 2, 3, 1, 2},
		{2, 3, 4, 2, 4},
		{4, 1, 2, 3, 1},
		{1, 2, 1, 4, 2},
	}
	if !g.Equal(want) {
		t.Errorf("grid after Resolve:\n%s\nwant\n%s", g, want)
	}
}

func TestResolveRowThenColumn(t *testing.T) {
	g := Grid{
		{1, 2, 3, 4, 1},
		{2, 3, 4, 1, 2},
		{5, 5, 5, 2, 6},
		{4, 1, 2, 3, 6},
		{1, 2, 1, 3, 6},
	}
	var score uint

	res := Resolve(g, &score)

	if res.Combos != 2 {
		t.Fatalf("Combos = %d, want 2", res.Combos)
	}
	if res.Runs[0].Axis != AxisRow || res.Runs[1].Axis != AxisColumn {
		t.Errorf("runs = %+v, want row run then column run", res.Runs)
	}
	// (6 + 6) points, doubled by two combos.
	if res.Points != 12 || res.Delta != 24 || score != 24 {
		t.Errorf("Points = %d, Delta = %d, score = %d; want 12, 24, 24", res.Points, res.Delta, score)
	}

	want := Grid{
		{0, 0, 0, 4, 0},
		{1, 2, 3, 1, 0},
		{2, 3, 4, 2, 0},
		{4, 1, 2, 3, 1},
		{1, 2, 1, 3, 2},
	}
	if !g.Equal(want) {
		t.Errorf("grid after Resolve:\n%s\nwant\n%s", g, want)
	}
}

func TestResolveRepeatsSweepAfterColumnCollapse(t *testing.T) {
	// Dropping the 7 in column 0 completes a row of three 7s.
	g := Grid{
		{7, 1, 2, 3, 4},
		{8, 2, 3, 4, 1},
		{9, 3, 4, 1, 2},
		{9, 7, 7, 2, 3},
		{9, 4, 1, 3, 4},
	}
	var score uint

	res := Resolve(g, &score)

	if len(res.Runs) != 2 {
		t.Fatalf("runs = %+v, want 2", res.Runs)
	}
	if res.Runs[0] != (Run{Start: P(2, 0), Length: 3, Axis: AxisColumn}) {
		t.Errorf("first run = %+v", res.Runs[0])
	}
	if res.Runs[1] != (Run{Start: P(3, 0), Length: 3, Axis: AxisRow}) {
		t.Errorf("second run = %+v", res.Runs[1])
	}
	if res.Delta != 24 {
		t.Errorf("Delta = %d, want 24", res.Delta)
	}
	if g.HasRun() {
		t.Errorf("grid still has a run:\n%s", g)
	}

	want := Grid{
		{0, 0, 0, 3, 4},
		{0, 1, 2, 4, 1},
		{0, 2, 3, 1, 2},
		{0, 3, 4, 2, 3},
		{8, 4, 1, 3, 4},
	}
	if !g.Equal(want) {
		t.Errorf("grid after Resolve:\n%s\nwant\n%s", g, want)
	}
}

func TestResolveNoRuns(t *testing.T) {
	g := Grid{
		{1, 2, 1},
		{2, 1, 2},
		{1, 2, 1},
	}
	before := g.Clone()
	var score uint = 42

	res := Resolve(g, &score)

	if res.Delta != 0 || res.Combos != 0 || res.Points != 0 {
		t.Errorf("Resolve() = %+v, want zero resolution", res)
	}
	if score != 42 {
		t.Errorf("score = %d, want 42", score)
	}
	if !g.Equal(before) {
		t.Error("grid changed without runs")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		g := NewEmptyGrid(6)
		fillRandom(g, rng, 3)

		var score uint
		Resolve(g, &score)
		after := g.Clone()

		second := Resolve(g, &score)
		if second.Delta != 0 || second.Combos != 0 {
			t.Fatalf("second Resolve() = %+v, want no removals", second)
		}
		if !g.Equal(after) {
			t.Fatalf("second Resolve() changed the grid:\n%s", g)
		}
		if g.HasRun() {
			t.Fatalf("grid not stable after Resolve:\n%s", g)
		}
	}
}

func TestArrangeGrid(t *testing.T) {
	g := Grid{
		{4, 4, 4},
		{1, 2, 1},
		{2, 1, 2},
	}
	var score uint
	if delta := ArrangeGrid(g, &score); delta != 6 || score != 6 {
		t.Errorf("ArrangeGrid() = %d (score %d), want 6", delta, score)
	}
}
