// Package bench runs solver algorithms across level fixtures and aggregates
// the outcomes into a comparison report.
package bench

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/sokoengine/pkg/engine"
	"github.com/yourusername/sokoengine/pkg/level"
)

// Fixture is one named board under benchmark.
type Fixture struct {
	Name  string
	Level *level.Level
}

// FromCollection turns a level collection into benchmark fixtures.
func FromCollection(c *level.Collection) []Fixture {
	fixtures := make([]Fixture, 0, c.Count())
	for _, lvl := range c.Levels {
		fixtures = append(fixtures, Fixture{
			Name:  fmt.Sprintf("%d-%s", lvl.Number, lvl.ID),
			Level: lvl,
		})
	}
	return fixtures
}

// Options bound every solve in the run. The same bounds apply to all
// algorithms so their numbers are comparable.
type Options struct {
	Algorithms    []engine.Algorithm
	TimeLimit     time.Duration
	MaxIterations int
	Seed          int64
	Logger        *slog.Logger
}

// DefaultOptions benchmarks every algorithm under a 10 second ceiling.
func DefaultOptions() Options {
	return Options{
		Algorithms: engine.Algorithms,
		TimeLimit:  10 * time.Second,
	}
}

// Measurement is the outcome of one solve of one fixture.
type Measurement struct {
	Fixture    string
	Algorithm  engine.Algorithm
	Status     engine.Status
	Solved     bool
	Verified   bool
	Moves      int
	Iterations int
	Duration   time.Duration
	Err        error
}

// Summary aggregates one algorithm's measurements across all fixtures.
type Summary struct {
	Algorithm engine.Algorithm
	Runs      int
	Solves    int

	// Statistics over solved runs only; zero when nothing solved.
	MeanDuration   time.Duration
	StdDevDuration time.Duration
	MedianDuration time.Duration
	MeanIterations float64
	MeanMoves      float64
}

// SuccessRate returns the fraction of fixtures the algorithm solved.
func (s Summary) SuccessRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Solves) / float64(s.Runs)
}

// Report is the complete outcome of a benchmark run.
type Report struct {
	Measurements []Measurement
	Summaries    []Summary
	Elapsed      time.Duration
}

// Run solves every fixture with every algorithm under the shared bounds.
// Solutions are replayed against the fixture's initial state before they
// count as solved; a solver whose moves do not verify scores a failure.
func Run(fixtures []Fixture, opts Options) *Report {
	if len(opts.Algorithms) == 0 {
		opts.Algorithms = engine.Algorithms
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	start := time.Now()

	report := &Report{}
	for _, alg := range opts.Algorithms {
		for _, f := range fixtures {
			m := runOne(f, alg, opts)
			if m.Err != nil {
				log.Warn("solve failed", "fixture", f.Name, "algorithm", alg, "error", m.Err)
			} else {
				log.Debug("solve finished",
					"fixture", f.Name, "algorithm", alg,
					"status", m.Status.String(), "iterations", m.Iterations,
					"duration", m.Duration)
			}
			report.Measurements = append(report.Measurements, m)
		}
		report.Summaries = append(report.Summaries, summarize(alg, report.Measurements))
	}
	report.Elapsed = time.Since(start)
	return report
}

func runOne(f Fixture, alg engine.Algorithm, opts Options) Measurement {
	solveOpts := engine.DefaultOptions(alg)
	if opts.TimeLimit > 0 {
		solveOpts.TimeLimit = opts.TimeLimit
	}
	if opts.MaxIterations > 0 {
		solveOpts.MaxIterations = opts.MaxIterations
	}
	solveOpts.Seed = opts.Seed

	m := Measurement{Fixture: f.Name, Algorithm: alg}
	res, err := engine.Solve(f.Level.Layout, f.Level.Start, solveOpts)
	if err != nil {
		m.Err = err
		return m
	}
	m.Status = res.Status
	m.Iterations = res.Iterations
	m.Duration = res.Duration
	if !res.Solved() {
		return m
	}
	m.Moves = len(res.Moves)
	final, err := engine.Replay(f.Level.Layout, f.Level.Start, res.Moves)
	if err != nil || !final.Solved(f.Level.Layout) {
		m.Err = fmt.Errorf("solution failed verification: %v", err)
		return m
	}
	m.Solved = true
	m.Verified = true
	return m
}

func summarize(alg engine.Algorithm, all []Measurement) Summary {
	s := Summary{Algorithm: alg}
	var durations, iterations, moves []float64
	for _, m := range all {
		if m.Algorithm != alg {
			continue
		}
		s.Runs++
		if !m.Solved {
			continue
		}
		s.Solves++
		durations = append(durations, m.Duration.Seconds())
		iterations = append(iterations, float64(m.Iterations))
		moves = append(moves, float64(m.Moves))
	}
	if s.Solves == 0 {
		return s
	}
	sort.Float64s(durations)
	s.MeanDuration = secondsToDuration(stat.Mean(durations, nil))
	if s.Solves > 1 {
		s.StdDevDuration = secondsToDuration(stat.StdDev(durations, nil))
	}
	s.MedianDuration = secondsToDuration(stat.Quantile(0.5, stat.Empirical, durations, nil))
	s.MeanIterations = stat.Mean(iterations, nil)
	s.MeanMoves = stat.Mean(moves, nil)
	return s
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
