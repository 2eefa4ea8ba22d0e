package engine

import (
	"github.com/yourusername/sokoengine/internal/statekey"
)

// bfsNode is one search node: a state plus the parent link used to
// reconstruct the move path. Nodes are owned by the frontier and released
// with it when the solve returns.
type bfsNode struct {
	state  State
	parent *bfsNode
	move   Direction
}

// solveBFS performs exhaustive breadth-first search. FIFO order over
// uniform-cost transitions guarantees that a returned solution has minimal
// move count. Memory is the dominant cost: the visited set grows with
// branching factor times depth, bounded only by the iteration ceiling.
func solveBFS(l *Layout, start State, b *budget, opts Options) *Result {
	root := &bfsNode{state: start}
	frontier := []*bfsNode{root}
	visited := map[statekey.Key]struct{}{start.Key(l): {}}

	for len(frontier) > 0 {
		if !b.spend() {
			return &Result{Status: b.exceeded(), Iterations: b.iterations}
		}

		node := frontier[0]
		frontier[0] = nil
		frontier = frontier[1:]

		if node.state.Solved(l) {
			return &Result{
				Status:     StatusSolved,
				Moves:      reconstructBFS(node),
				Iterations: b.iterations,
			}
		}

		for _, d := range Directions {
			if Classify(l, node.state, d) == Illegal {
				continue
			}
			succ := Apply(l, node.state, d)
			key := succ.Key(l)
			if _, seen := visited[key]; seen {
				continue
			}
			if Deadlocked(l, succ) {
				continue
			}
			visited[key] = struct{}{}
			frontier = append(frontier, &bfsNode{state: succ, parent: node, move: d})
		}

		if opts.Progress != nil && b.iterations%opts.ProgressEvery == 0 {
			opts.Progress(Progress{
				Iterations: b.iterations,
				Frontier:   len(frontier),
				Visited:    len(visited),
				BestH:      -1,
				Elapsed:    b.elapsed(),
			})
		}
	}

	return &Result{Status: StatusExhausted, Iterations: b.iterations}
}

// reconstructBFS walks parent links back to the root and reverses the moves.
func reconstructBFS(node *bfsNode) []Direction {
	var moves []Direction
	for n := node; n.parent != nil; n = n.parent {
		moves = append(moves, n.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	if moves == nil {
		moves = []Direction{}
	}
	return moves
}
