package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/sokoengine/pkg/engine"
	"github.com/yourusername/sokoengine/pkg/level"
)

// Handlers holds the HTTP handlers and their shared state.
type Handlers struct {
	version    string
	pool       *WorkerPool
	defaults   engine.Options
	collection *level.Collection
}

// NewHandlers creates a Handlers instance. The collection may be nil when no
// level file is configured; level endpoints then return 404.
func NewHandlers(version string, pool *WorkerPool, defaults engine.Options, collection *level.Collection) *Handlers {
	return &Handlers{
		version:    version,
		pool:       pool,
		defaults:   defaults,
		collection: collection,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, code string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// solveOptions merges request overrides over the server defaults.
func (h *Handlers) solveOptions(req *SolveRequest) (engine.Options, error) {
	opts := h.defaults
	if req.Algorithm != "" {
		alg, err := engine.ParseAlgorithm(req.Algorithm)
		if err != nil {
			return opts, err
		}
		opts = engine.DefaultOptions(alg)
		if h.defaults.TimeLimit > 0 {
			opts.TimeLimit = h.defaults.TimeLimit
		}
	}
	if req.TimeLimitSeconds > 0 {
		opts.TimeLimit = time.Duration(req.TimeLimitSeconds) * time.Second
	}
	if req.MaxIterations > 0 {
		opts.MaxIterations = req.MaxIterations
	}
	opts.Seed = req.Seed
	opts.NoDockReassignment = req.NoDockReassignment
	return opts, nil
}

func movesToStrings(moves []engine.Direction) []string {
	out := make([]string, len(moves))
	for i, d := range moves {
		out[i] = d.String()
	}
	return out
}

func parseMoves(names []string) ([]engine.Direction, error) {
	moves := make([]engine.Direction, len(names))
	for i, name := range names {
		d, err := engine.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		moves[i] = d
	}
	return moves, nil
}

// Health handles GET /api/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
	}
	if h.collection != nil {
		resp.Levels = h.collection.Count()
	}
	if h.pool != nil {
		stats := h.pool.Stats()
		resp.Pool = &stats
	}
	writeJSON(w, http.StatusOK, resp)
}

// Solve handles POST /api/solve. Solves run in the slow lane.
func (h *Handlers) Solve(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireSlow(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", CodeServerBusy)
			return
		}
		defer h.pool.ReleaseSlow()
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", CodeInvalidJSON)
		return
	}

	lvl, err := level.Parse(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeInvalidBoard)
		return
	}
	opts, err := h.solveOptions(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeInvalidAlgorithm)
		return
	}

	res, err := engine.Solve(lvl.Layout, lvl.Start, opts)
	if err != nil {
		if errors.Is(err, engine.ErrBoxDockMismatch) || errors.Is(err, engine.ErrInitialDeadlock) {
			writeError(w, http.StatusUnprocessableEntity, err.Error(), CodeUnsolvable)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error(), CodeInternal)
		return
	}

	alg := string(opts.Algorithm)
	solveRequests.WithLabelValues(alg, res.Status.String()).Inc()
	solveDuration.WithLabelValues(alg).Observe(res.Duration.Seconds())
	solveIterations.WithLabelValues(alg).Observe(float64(res.Iterations))

	resp := SolveResponse{
		RequestID:  uuid.NewString(),
		Status:     res.Status.String(),
		Solved:     res.Solved(),
		Iterations: res.Iterations,
		DurationMS: res.Duration.Milliseconds(),
		StateID:    lvl.Start.Key(lvl.Layout).ID(),
	}
	if res.Solved() {
		resp.Moves = movesToStrings(res.Moves)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Replay handles POST /api/replay: it verifies a move sequence against a
// board and reports where it lands.
func (h *Handlers) Replay(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireFast(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", CodeServerBusy)
			return
		}
		defer h.pool.ReleaseFast()
	}

	var req ReplayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", CodeInvalidJSON)
		return
	}
	lvl, err := level.Parse(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeInvalidBoard)
		return
	}
	moves, err := parseMoves(req.Moves)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeInvalidMoves)
		return
	}

	final, err := engine.Replay(lvl.Layout, lvl.Start, moves)
	resp := ReplayResponse{
		Legal:  err == nil,
		Solved: err == nil && final.Solved(lvl.Layout),
		Board:  level.Format(lvl.Layout, final),
	}
	if err != nil {
		resp.Reason = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// Generate handles GET /api/generate?width=&height=&boxes=&walls=&seed=.
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireFast(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", CodeServerBusy)
			return
		}
		defer h.pool.ReleaseFast()
	}

	query := r.URL.Query()
	opts := level.DefaultGenerateOptions()
	opts.Width = parseIntParam(query.Get("width"), opts.Width)
	opts.Height = parseIntParam(query.Get("height"), opts.Height)
	opts.Boxes = parseIntParam(query.Get("boxes"), opts.Boxes)
	opts.Walls = parseIntParam(query.Get("walls"), opts.Walls)
	if s := query.Get("seed"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid seed", CodeInvalidJSON)
			return
		}
		opts.Seed = seed
	}

	generateRequests.Inc()
	lvl, err := level.Generate(opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), CodeInvalidBoard)
		return
	}
	writeJSON(w, http.StatusOK, GenerateResponse{
		Board:  level.Format(lvl.Layout, lvl.Start),
		Width:  opts.Width,
		Height: opts.Height,
		Boxes:  opts.Boxes,
		Seed:   opts.Seed,
	})
}

// Levels handles GET /api/levels.
func (h *Handlers) Levels(w http.ResponseWriter, r *http.Request) {
	if h.collection == nil {
		writeError(w, http.StatusNotFound, "no level collection loaded", CodeNotFound)
		return
	}
	resp := LevelsResponse{
		Title: h.collection.Title,
		Count: h.collection.Count(),
	}
	for _, lvl := range h.collection.Levels {
		resp.Levels = append(resp.Levels, LevelInfo{
			Number: lvl.Number,
			ID:     lvl.ID,
			Width:  lvl.Layout.Width,
			Height: lvl.Layout.Height,
			Boxes:  len(lvl.Start.Boxes),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// LevelByNumber handles GET /api/levels/{number}.
func (h *Handlers) LevelByNumber(w http.ResponseWriter, r *http.Request) {
	if h.collection == nil {
		writeError(w, http.StatusNotFound, "no level collection loaded", CodeNotFound)
		return
	}
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid level number", CodeNotFound)
		return
	}
	lvl := h.collection.Level(number)
	if lvl == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("level %d not found", number), CodeNotFound)
		return
	}
	writeJSON(w, http.StatusOK, LevelResponse{
		Number: lvl.Number,
		ID:     lvl.ID,
		Board:  level.Format(lvl.Layout, lvl.Start),
	})
}

// parseIntParam parses an integer query parameter with a default.
func parseIntParam(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return val
}
