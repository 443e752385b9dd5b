package crush

// Resolution summarises the removals triggered by one move.
type Resolution struct {
	Runs   []Run // Removed runs, in removal order
	Combos uint  // Number of removals
	Points uint  // Sum of the triangular points of every run
	Delta  uint  // Points * Combos, added to the score
}

// Resolve removes runs until the grid is stable and adds the earned points
// to *score.
//
// Row runs are exhausted before any column run is removed. Because a column
// collapse can line up a new row, the row-then-column sweep repeats until a
// full sweep finds nothing. Combos counts removals from every sweep, so runs
// formed by a later sweep still multiply the whole delta of the move.
func Resolve(g Grid, score *uint) Resolution {
	var res Resolution

	for {
		removed := false

		for {
			run, ok := g.FindRowRun()
			if !ok {
				break
			}
			g.RemoveRowRun(run)
			res.record(run)
			removed = true
		}

		for {
			run, ok := g.FindColumnRun()
			if !ok {
				break
			}
			g.RemoveColumnRun(run)
			res.record(run)
			removed = true
		}

		if !removed {
			break
		}
	}

	res.Delta = res.Points * res.Combos
	if score != nil {
		*score += res.Delta
	}
	return res
}

// ArrangeGrid resolves g and returns the score delta.
func ArrangeGrid(g Grid, score *uint) uint {
	return Resolve(g, score).Delta
}

func (r *Resolution) record(run Run) {
	r.Runs = append(r.Runs, run)
	r.Combos++
	r.Points += run.Points()
}
