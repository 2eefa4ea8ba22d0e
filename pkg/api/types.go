// Package api provides the HTTP/JSON API for the puzzle solver.
package api

// SolveRequest is the request body for solving a board.
type SolveRequest struct {
	Board              []string `json:"board"`                          // Board text lines
	Algorithm          string   `json:"algorithm,omitempty"`            // "bfs", "astar" or "sa" (default from server config)
	TimeLimitSeconds   int      `json:"time_limit_seconds,omitempty"`   // Wall-clock bound (default from server config)
	MaxIterations      int      `json:"max_iterations,omitempty"`       // Node expansion ceiling
	Seed               int64    `json:"seed,omitempty"`                 // Random seed for "sa" (0 = from clock)
	NoDockReassignment bool     `json:"no_dock_reassignment,omitempty"` // Freeze boxes already on docks
}

// SolveResponse is the response for a solve.
type SolveResponse struct {
	RequestID  string   `json:"request_id"`
	Status     string   `json:"status"` // "solved", "exhausted", "iteration-limit", "time-limit"
	Solved     bool     `json:"solved"`
	Moves      []string `json:"moves,omitempty"` // Direction names, in order
	Iterations int      `json:"iterations"`
	DurationMS int64    `json:"duration_ms"`
	StateID    string   `json:"state_id"` // Canonical identity of the initial state
}

// ReplayRequest is the request body for verifying a move sequence.
type ReplayRequest struct {
	Board []string `json:"board"`
	Moves []string `json:"moves"`
}

// ReplayResponse reports where a replay ended up.
type ReplayResponse struct {
	Legal  bool     `json:"legal"`            // Every move applied cleanly
	Solved bool     `json:"solved"`           // Final state satisfies the goal
	Board  []string `json:"board"`            // Final board rendering
	Reason string   `json:"reason,omitempty"` // Why the replay stopped, when not legal
}

// GenerateResponse returns a procedurally generated board.
type GenerateResponse struct {
	Board  []string `json:"board"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Boxes  int      `json:"boxes"`
	Seed   int64    `json:"seed"`
}

// LevelInfo describes one level of the served collection.
type LevelInfo struct {
	Number int    `json:"number"`
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Boxes  int    `json:"boxes"`
}

// LevelsResponse lists the loaded level collection.
type LevelsResponse struct {
	Title  string      `json:"title"`
	Count  int         `json:"count"`
	Levels []LevelInfo `json:"levels"`
}

// LevelResponse returns one level's board.
type LevelResponse struct {
	Number int      `json:"number"`
	ID     string   `json:"id"`
	Board  []string `json:"board"`
}

// HealthResponse is the response for the health check.
type HealthResponse struct {
	Status  string     `json:"status"`
	Version string     `json:"version"`
	Levels  int        `json:"levels"` // Levels available in the loaded collection
	Pool    *PoolStats `json:"pool,omitempty"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidBoard     = "INVALID_BOARD"
	CodeInvalidAlgorithm = "INVALID_ALGORITHM"
	CodeInvalidMoves     = "INVALID_MOVES"
	CodeUnsolvable       = "UNSOLVABLE"
	CodeServerBusy       = "SERVER_BUSY"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL"
)
