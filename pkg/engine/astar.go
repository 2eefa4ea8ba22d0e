package engine

import (
	"container/heap"

	"github.com/yourusername/sokoengine/internal/statekey"
)

// astarNode is a best-first search node: state, path cost g, heuristic
// estimate h, and the parent link for path reconstruction.
type astarNode struct {
	state  State
	parent *astarNode
	move   Direction
	g      int
	h      int
	seq    int // Insertion order, final tie-break for determinism.
	index  int // Heap bookkeeping.
}

func (n *astarNode) f() int { return n.g + n.h }

// openHeap orders nodes by f = g + h ascending, breaking f ties by higher g
// (prefer deeper, more committed nodes, which reduces reopening) and equal
// (f, g) ties by insertion order so searches are fully deterministic.
type openHeap []*astarNode

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f() != h[j].f() {
		return h[i].f() < h[j].f()
	}
	if h[i].g != h[j].g {
		return h[i].g > h[j].g
	}
	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *openHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}

// solveAStar performs best-first search on f = g + h with the greedy
// box-to-dock heuristic. The heuristic is recomputed fresh at every
// expanded node, so a box sitting on a dock stays a normal, movable box and
// pushing it onto a different dock is always a considered move. No
// optimality guarantee: h can overestimate, so solutions are near-optimal.
func solveAStar(l *Layout, start State, b *budget, opts Options) *Result {
	seq := 0
	root := &astarNode{state: start, h: heuristic(l, start)}
	open := &openHeap{}
	heap.Init(open)
	heap.Push(open, root)

	// Best g seen per canonical state; a successor is only kept when it
	// improves on the recorded cost.
	bestG := map[statekey.Key]int{start.Key(l): 0}
	bestH := root.h

	for open.Len() > 0 {
		if !b.spend() {
			return &Result{Status: b.exceeded(), Iterations: b.iterations}
		}

		node := heap.Pop(open).(*astarNode)

		if node.state.Solved(l) {
			return &Result{
				Status:     StatusSolved,
				Moves:      reconstructAStar(node),
				Iterations: b.iterations,
			}
		}

		for _, d := range Directions {
			kind := Classify(l, node.state, d)
			if kind == Illegal {
				continue
			}
			if kind == Push && opts.NoDockReassignment {
				// Frozen-dock mode: refuse to move a box that already
				// rests on a dock.
				if l.Dock(node.state.Player.step(d)) {
					continue
				}
			}
			succ := Apply(l, node.state, d)
			g := node.g + 1
			key := succ.Key(l)
			if prev, seen := bestG[key]; seen && prev <= g {
				continue
			}
			if Deadlocked(l, succ) {
				continue
			}
			bestG[key] = g
			seq++
			child := &astarNode{
				state:  succ,
				parent: node,
				move:   d,
				g:      g,
				h:      heuristic(l, succ),
				seq:    seq,
			}
			if child.h < bestH {
				bestH = child.h
			}
			heap.Push(open, child)
		}

		if opts.Progress != nil && b.iterations%opts.ProgressEvery == 0 {
			opts.Progress(Progress{
				Iterations: b.iterations,
				Frontier:   open.Len(),
				Visited:    len(bestG),
				BestH:      bestH,
				Elapsed:    b.elapsed(),
			})
		}
	}

	return &Result{Status: StatusExhausted, Iterations: b.iterations}
}

func reconstructAStar(node *astarNode) []Direction {
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
