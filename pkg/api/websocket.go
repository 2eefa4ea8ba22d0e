package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/yourusername/sokoengine/pkg/engine"
	"github.com/yourusername/sokoengine/pkg/level"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins - configure properly in production
	},
}

// WSMessage is a client-to-server WebSocket message.
type WSMessage struct {
	Type    string          `json:"type"`    // "solve", "replay", "ping"
	ID      string          `json:"id"`      // Request ID for correlating responses
	Payload json.RawMessage `json:"payload"` // Type-specific payload
}

// WSResponse is a server-to-client WebSocket message.
type WSResponse struct {
	Type    string `json:"type"`              // "result", "progress", "error", "pong"
	ID      string `json:"id,omitempty"`      // Request ID
	Payload any    `json:"payload,omitempty"` // Response data
	Error   string `json:"error,omitempty"`   // Error message if any
}

// WSClient is one connected WebSocket client.
type WSClient struct {
	conn     *websocket.Conn
	handlers *Handlers
	sendChan chan WSResponse
}

// WebSocket handles WebSocket connections for interactive solving.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	client := &WSClient{conn: conn, handlers: h, sendChan: make(chan WSResponse, 256)}
	go client.writePump()
	client.readPump()
}

func (c *WSClient) writePump() {
	defer c.conn.Close()
	for msg := range c.sendChan {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *WSClient) readPump() {
	defer func() { close(c.sendChan); c.conn.Close() }()
	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.ID == "" {
			msg.ID = uuid.NewString()
		}
		c.handleMessage(msg)
	}
}

func (c *WSClient) handleMessage(msg WSMessage) {
	switch msg.Type {
	case "solve":
		c.handleSolve(msg)
	case "replay":
		c.handleReplay(msg)
	case "ping":
		c.sendChan <- WSResponse{Type: "pong", ID: msg.ID}
	default:
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "unknown message type"}
	}
}

// handleSolve runs a solve and streams progress messages before the result.
// Solves hold a slow-lane slot for their whole duration; when the pool is
// saturated the request fails fast instead of queueing behind other solves.
func (c *WSClient) handleSolve(msg WSMessage) {
	var req SolveRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
		return
	}
	lvl, err := level.Parse(req.Board)
	if err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid board: " + err.Error()}
		return
	}
	opts, err := c.handlers.solveOptions(&req)
	if err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: err.Error()}
		return
	}

	if c.handlers.pool != nil {
		if !c.handlers.pool.TryAcquireSlow() {
			c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "server busy"}
			return
		}
		defer c.handlers.pool.ReleaseSlow()
	}

	opts.Progress = func(p engine.Progress) {
		// Drop progress frames rather than block the solve when the
		// client cannot keep up.
		select {
		case c.sendChan <- WSResponse{Type: "progress", ID: msg.ID, Payload: ProgressEvent{
			Iterations: p.Iterations,
			Frontier:   p.Frontier,
			Visited:    p.Visited,
			BestH:      p.BestH,
			ElapsedMS:  p.Elapsed.Milliseconds(),
		}}:
		default:
		}
	}
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = 1000
	}

	res, err := engine.Solve(lvl.Layout, lvl.Start, opts)
	if err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: err.Error()}
		return
	}

	alg := string(opts.Algorithm)
	solveRequests.WithLabelValues(alg, res.Status.String()).Inc()
	solveDuration.WithLabelValues(alg).Observe(res.Duration.Seconds())
	solveIterations.WithLabelValues(alg).Observe(float64(res.Iterations))

	resp := SolveResponse{
		RequestID:  msg.ID,
		Status:     res.Status.String(),
		Solved:     res.Solved(),
		Iterations: res.Iterations,
		DurationMS: res.Duration.Milliseconds(),
		StateID:    lvl.Start.Key(lvl.Layout).ID(),
	}
	if res.Solved() {
		resp.Moves = movesToStrings(res.Moves)
	}
	c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: resp}
}

func (c *WSClient) handleReplay(msg WSMessage) {
	var req ReplayRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
		return
	}
	lvl, err := level.Parse(req.Board)
	if err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid board: " + err.Error()}
		return
	}
	moves, err := parseMoves(req.Moves)
	if err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: err.Error()}
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
	c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: resp}
}
