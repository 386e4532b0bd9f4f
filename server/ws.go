package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"othello/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins - configure properly in production
	},
}

// WSMessage is a client request over the socket.
type WSMessage struct {
	Type    string          `json:"type"`    // "state", "move", "engine", "ping"
	ID      string          `json:"id"`      // Request ID for correlating responses
	Payload json.RawMessage `json:"payload"` // Type-specific payload
}

// WSResponse is the server's reply.
type WSResponse struct {
	Type    string `json:"type"` // "result", "error", "pong"
	ID      string `json:"id,omitempty"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

type wsClient struct {
	conn     *websocket.Conn
	session  *session
	sendChan chan WSResponse
	mu       sync.Mutex
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r.PathValue("id"))
	if sess == nil {
		http.Error(w, "no such game", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Msgf("websocket upgrade: %v", err)
		return
	}
	client := &wsClient{conn: conn, session: sess, sendChan: make(chan WSResponse, 256)}
	go client.writePump()
	client.readPump()
}

func (c *wsClient) writePump() {
	defer c.conn.Close()
	for msg := range c.sendChan {
		if err := c.conn.WriteJSON(msg); err != nil {
			log.Error().Msgf("websocket write: %v", err)
			return
		}
	}
}

func (c *wsClient) readPump() {
	defer close(c.sendChan)
	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error().Msgf("websocket read: %v", err)
			}
			return
		}
		c.dispatch(msg)
	}
}

func (c *wsClient) dispatch(msg WSMessage) {
	switch msg.Type {
	case "ping":
		c.send(WSResponse{Type: "pong", ID: msg.ID})
	case "state":
		c.send(WSResponse{Type: "result", ID: msg.ID, Payload: c.session.state()})
	case "move":
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			c.sendError(msg.ID, "bad move payload")
			return
		}
		mv := game.Move{Row: req.Row, Col: req.Col}
		if err := c.session.playMove(mv); err != nil {
			c.sendError(msg.ID, err.Error())
			return
		}
		c.send(WSResponse{Type: "result", ID: msg.ID, Payload: c.session.state()})
	case "engine":
		result, err := c.session.playEngine()
		if err != nil {
			c.sendError(msg.ID, err.Error())
			return
		}
		c.send(WSResponse{Type: "result", ID: msg.ID, Payload: moveResponse{
			Move:  result.Move,
			Score: result.Score,
			State: c.session.state(),
		}})
	default:
		c.sendError(msg.ID, "unknown message type "+msg.Type)
	}
}

func (c *wsClient) send(resp WSResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case c.sendChan <- resp:
	default:
		log.Warn().Msg("websocket send buffer full, dropping message")
	}
}

func (c *wsClient) sendError(id, message string) {
	c.send(WSResponse{Type: "error", ID: id, Error: message})
}
