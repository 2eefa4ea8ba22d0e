package engine

import (
	"sort"
)

// manhattan returns the L1 distance between two cells.
func manhattan(a, b Pos) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// heuristic estimates the remaining push distance of a state: the sum, over
// boxes not yet on a dock, of the Manhattan distance to their nearest
// unassigned dock under a greedy nearest-neighbor assignment.
//
// Docks already holding a box are assigned first, then the remaining boxes
// claim free docks in order of their own best distance. The assignment is
// recomputed fresh for every state it is asked about, so a box resting on a
// dock is never baked in as finished: the estimate always reflects the
// current placement, which keeps dock reassignment opportunities visible.
//
// Greedy assignment is not a minimum-cost matching and can overestimate, so
// the heuristic is not provably admissible. That is a deliberate trade of
// optimality for speed; substituting a true bipartite matching here changes
// the solution-quality characteristics of the best-first solver.
func heuristic(l *Layout, s State) int {
	docks := l.Docks()
	if len(docks) == 0 || len(s.Boxes) == 0 {
		return 0
	}

	used := make([]bool, len(docks))
	for di, d := range docks {
		if s.BoxAt(d) {
			used[di] = true
		}
	}

	// Boxes still off their docks, cheapest placements first.
	type pending struct {
		box  Pos
		best int
	}
	var waiting []pending
	for _, b := range s.Boxes {
		if l.Dock(b) {
			continue
		}
		best := -1
		for di, d := range docks {
			if used[di] {
				continue
			}
			if dist := manhattan(b, d); best < 0 || dist < best {
				best = dist
			}
		}
		if best < 0 {
			// No free dock for this box; fall back to the nearest dock
			// outright so the estimate stays finite.
			for _, d := range docks {
				if dist := manhattan(b, d); best < 0 || dist < best {
					best = dist
				}
			}
		}
		waiting = append(waiting, pending{box: b, best: best})
	}
	sort.SliceStable(waiting, func(i, j int) bool {
		return waiting[i].best < waiting[j].best
	})

	total := 0
	for _, w := range waiting {
		best, bestDock := -1, -1
		for di, d := range docks {
			if used[di] {
				continue
			}
			if dist := manhattan(w.box, d); best < 0 || dist < best {
				best, bestDock = dist, di
			}
		}
		if bestDock >= 0 {
			used[bestDock] = true
			total += best
		} else {
			total += w.best
		}
	}
	return total
}
