package engine

// Deadlocked reports whether a state is provably unsolvable and can be
// pruned before expansion. Two rules are applied:
//
//   - Corner rule: a box on a non-dock cell with two perpendicular adjacent
//     walls can never be pushed again. This rule is sound; it never flags a
//     state from which the goal is still reachable.
//   - Frozen block rule: a 2x2 block fully occupied by boxes and walls, with
//     at least one of those boxes off a dock, leaves no box in the block
//     pushable along either axis. This rule is best-effort; it misses some
//     deadlocks but never flags a solvable state.
//
// The filter is advisory pruning only. Skipping it changes how many states
// a solver explores, never whether a solution exists to be found.
func Deadlocked(l *Layout, s State) bool {
	for _, b := range s.Boxes {
		if l.Dock(b) {
			continue
		}
		if cornerDeadlock(l, b) {
			return true
		}
	}
	return frozenBlockDeadlock(l, s)
}

// cornerDeadlock reports whether the cell has two mutually perpendicular
// adjacent walls. Callers ensure p is not a dock.
func cornerDeadlock(l *Layout, p Pos) bool {
	n := l.Wall(Pos{p.X, p.Y - 1})
	s := l.Wall(Pos{p.X, p.Y + 1})
	w := l.Wall(Pos{p.X - 1, p.Y})
	e := l.Wall(Pos{p.X + 1, p.Y})
	return (n && w) || (n && e) || (s && w) || (s && e)
}

// frozenBlockDeadlock scans every 2x2 block containing a box that is off a
// dock. A block whose four cells are all walls or boxes freezes each of its
// boxes: pushing any of them along either axis would re-enter the block.
func frozenBlockDeadlock(l *Layout, s State) bool {
	solid := func(p Pos) bool {
		return l.Wall(p) || s.BoxAt(p)
	}
	for _, b := range s.Boxes {
		if l.Dock(b) {
			continue
		}
		// The four 2x2 blocks that include cell b.
		for _, corner := range [4]Pos{
			{b.X - 1, b.Y - 1},
			{b.X, b.Y - 1},
			{b.X - 1, b.Y},
			{b.X, b.Y},
		} {
			if solid(corner) &&
				solid(Pos{corner.X + 1, corner.Y}) &&
				solid(Pos{corner.X, corner.Y + 1}) &&
				solid(Pos{corner.X + 1, corner.Y + 1}) {
				return true
			}
		}
	}
	return false
}
