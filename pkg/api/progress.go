package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/yourusername/sokoengine/pkg/engine"
	"github.com/yourusername/sokoengine/pkg/level"
)

// ProgressEvent is the payload of a "progress" SSE or WebSocket event.
type ProgressEvent struct {
	Iterations int   `json:"iterations"`
	Frontier   int   `json:"frontier,omitempty"`
	Visited    int   `json:"visited,omitempty"`
	BestH      int   `json:"best_h"`
	ElapsedMS  int64 `json:"elapsed_ms"`
}

// SolveSSE handles GET /api/solve/stream: a solve whose progress is pushed
// as Server-Sent Events. The board travels in the query string with rows
// separated by '|'.
func (h *Handlers) SolveSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeSSEError(w, "streaming not supported")
		return
	}

	query := r.URL.Query()
	board := query.Get("board")
	if board == "" {
		writeSSEError(w, "board is required")
		return
	}
	lvl, err := level.Parse(strings.Split(board, "|"))
	if err != nil {
		writeSSEError(w, "invalid board: "+err.Error())
		return
	}

	req := SolveRequest{
		Algorithm:        query.Get("algorithm"),
		TimeLimitSeconds: parseIntParam(query.Get("time_limit_seconds"), 0),
		MaxIterations:    parseIntParam(query.Get("max_iterations"), 0),
	}
	if s := query.Get("seed"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			writeSSEError(w, "invalid seed")
			return
		}
		req.Seed = seed
	}
	opts, err := h.solveOptions(&req)
	if err != nil {
		writeSSEError(w, err.Error())
		return
	}

	if h.pool != nil {
		if err := h.pool.AcquireSlow(r.Context()); err != nil {
			writeSSEError(w, "server busy")
			return
		}
		defer h.pool.ReleaseSlow()
	}

	// The solver invokes the callback synchronously, so writing and
	// flushing from it is safe.
	opts.Progress = func(p engine.Progress) {
		writeSSEEvent(w, "progress", ProgressEvent{
			Iterations: p.Iterations,
			Frontier:   p.Frontier,
			Visited:    p.Visited,
			BestH:      p.BestH,
			ElapsedMS:  p.Elapsed.Milliseconds(),
		})
		flusher.Flush()
	}
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = 1000
	}

	res, err := engine.Solve(lvl.Layout, lvl.Start, opts)
	if err != nil {
		writeSSEError(w, err.Error())
		return
	}

	alg := string(opts.Algorithm)
	solveRequests.WithLabelValues(alg, res.Status.String()).Inc()
	solveDuration.WithLabelValues(alg).Observe(res.Duration.Seconds())
	solveIterations.WithLabelValues(alg).Observe(float64(res.Iterations))

	resp := SolveResponse{
		Status:     res.Status.String(),
		Solved:     res.Solved(),
		Iterations: res.Iterations,
		DurationMS: res.Duration.Milliseconds(),
		StateID:    lvl.Start.Key(lvl.Layout).ID(),
	}
	if res.Solved() {
		resp.Moves = movesToStrings(res.Moves)
	}
	writeSSEEvent(w, "result", resp)
	flusher.Flush()

	writeSSEEvent(w, "done", nil)
	flusher.Flush()
}

// writeSSEEvent writes one Server-Sent Event.
func writeSSEEvent(w http.ResponseWriter, event string, data any) {
	fmt.Fprintf(w, "event: %s\n", event)
	if data != nil {
		jsonData, _ := json.Marshal(data)
		fmt.Fprintf(w, "data: %s\n", jsonData)
	}
	fmt.Fprintf(w, "\n")
}

// writeSSEError writes an error event and flushes the stream.
func writeSSEError(w http.ResponseWriter, message string) {
	writeSSEEvent(w, "error", map[string]string{"error": message})
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}
