package engine

import (
	"math"
	"math/rand"
	"time"
)

// Annealing schedule constants. Temperature starts hot for broad
// exploration, decays geometrically and is clamped at the floor; the
// iteration and time bounds govern termination.
const (
	annealInitialTemp = 100.0
	annealFinalTemp   = 0.001
	annealCoolingRate = 0.995
)

// annealWalker is the chain's current point: a state, the move path that
// produced it from the initial state, and its fitness.
type annealWalker struct {
	state   State
	moves   []Direction
	fitness float64
}

// solveAnneal performs annealed local search over a single current state.
// Each iteration picks a uniformly random legal move, accepts it outright
// when fitness improves and with probability exp(-delta/T) otherwise, and
// tracks the best-fitness state and path seen regardless of where the chain
// wanders afterwards. Fitness is the same box-to-dock distance heuristic
// the best-first solver uses; lower is better. The walk is non-deterministic
// across runs unless seeded, but always bounded: it terminates the moment a
// state satisfies the goal predicate or when a bound is hit.
func solveAnneal(l *Layout, start State, b *budget, opts Options) *Result {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cache := newFitnessCache(DefaultFitnessCacheSize)
	fitness := func(s State) float64 {
		key := s.boxKey(l)
		if v, ok := cache.lookup(key); ok {
			return v
		}
		v := float64(heuristic(l, s))
		cache.add(key, v)
		return v
	}

	current := annealWalker{state: start, moves: []Direction{}, fitness: fitness(start)}
	best := current

	temp := annealInitialTemp
	coolEvery := 1
	if opts.MaxIterations > 100 {
		coolEvery = opts.MaxIterations / 100
	}

	for b.spend() {
		if current.state.Solved(l) {
			return &Result{
				Status:     StatusSolved,
				Moves:      current.moves,
				Iterations: b.iterations,
			}
		}

		legal := LegalMoves(l, current.state)
		if len(legal) == 0 {
			// Boxed in. Restart the chain from a prefix of the best path
			// rather than giving up the whole walk.
			current = restartFromBest(l, start, best, rng, fitness)
			continue
		}

		d := legal[rng.Intn(len(legal))]
		next := Apply(l, current.state, d)
		nextFitness := fitness(next)

		delta := nextFitness - current.fitness
		if delta <= 0 || rng.Float64() < math.Exp(-delta/temp) {
			// The three-index slice forces append to copy, so paths of
			// previously accepted walkers are never clobbered.
			moves := append(current.moves[:len(current.moves):len(current.moves)], d)
			current = annealWalker{state: next, moves: moves, fitness: nextFitness}
			if current.fitness < best.fitness {
				best = current
			}
		}

		if b.iterations%coolEvery == 0 {
			temp *= annealCoolingRate
			if temp < annealFinalTemp {
				temp = annealFinalTemp
			}
		}

		if opts.Progress != nil && b.iterations%opts.ProgressEvery == 0 {
			opts.Progress(Progress{
				Iterations: b.iterations,
				BestH:      int(best.fitness),
				Elapsed:    b.elapsed(),
			})
		}
	}

	return &Result{Status: b.exceeded(), Iterations: b.iterations}
}

// restartFromBest rewinds to a random prefix of the best path seen so far
// and replays it from the initial state.
func restartFromBest(l *Layout, start State, best annealWalker, rng *rand.Rand, fitness func(State) float64) annealWalker {
	if len(best.moves) == 0 {
		return annealWalker{state: start, moves: []Direction{}, fitness: fitness(start)}
	}
	cut := rng.Intn(len(best.moves)/2 + 1)
	prefix := best.moves[:cut:cut]

	// best.moves was produced by legal applications rooted at the initial
	// state, so any prefix replays cleanly.
	state, err := Replay(l, start, prefix)
	if err != nil {
		return best
	}
	return annealWalker{state: state, moves: prefix, fitness: fitness(state)}
}
