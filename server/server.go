package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"othello/config"
	"othello/game"
	"othello/searcher"
	"othello/utils"
)

// Server hosts games over HTTP and WebSocket. Each game pairs a
// remote human against the configured searcher.
type Server struct {
	cfg    config.Config
	mu     sync.RWMutex
	games  map[string]*session
	nextID int
}

func New(cfg config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Server{
		cfg:   cfg,
		games: map[string]*session{},
	}, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /games", s.handleCreateGame)
	mux.HandleFunc("GET /games/{id}", s.handleGetGame)
	mux.HandleFunc("POST /games/{id}/moves", s.handleMove)
	mux.HandleFunc("POST /games/{id}/engine", s.handleEngineMove)
	mux.HandleFunc("GET /games/{id}/ws", s.handleWebSocket)
	return mux
}

func (s *Server) ListenAndServe() error {
	log.Info().Msgf("play server listening on %s", s.cfg.Listen)
	return http.ListenAndServe(s.cfg.Listen, s.Handler())
}

// session is one live game. Its mutex serializes moves from the HTTP
// and WebSocket paths.
type session struct {
	mu       sync.Mutex
	id       string
	board    game.Board
	current  game.Player
	searcher searcher.Searcher
}

// stateResponse is the wire form of a game.
type stateResponse struct {
	ID         string      `json:"id"`
	Board      []string    `json:"board"`
	ToMove     string      `json:"to_move"`
	LegalMoves []game.Move `json:"legal_moves"`
	Black      int         `json:"black"`
	White      int         `json:"white"`
	Terminal   bool        `json:"terminal"`
	Winner     string      `json:"winner,omitempty"`
}

type moveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type moveResponse struct {
	Move  *game.Move    `json:"move"`
	Score int           `json:"score"`
	State stateResponse `json:"state"`
}

func (s *Server) createSession() (*session, error) {
	search, err := s.cfg.NewSearcher()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	sess := &session{
		id:       strconv.Itoa(s.nextID),
		board:    game.NewBoard(),
		current:  game.Black,
		searcher: search,
	}
	s.games[sess.id] = sess
	return sess, nil
}

func (s *Server) session(id string) *session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[id]
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.createSession()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Info().Msgf("created game %s", sess.id)
	writeJSON(w, http.StatusCreated, sess.state())
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r.PathValue("id"))
	if sess == nil {
		http.Error(w, "no such game", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sess.state())
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r.PathValue("id"))
	if sess == nil {
		http.Error(w, "no such game", http.StatusNotFound)
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad move payload", http.StatusBadRequest)
		return
	}

	mv := game.Move{Row: req.Row, Col: req.Col}
	if err := sess.playMove(mv); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Info().Msgf("game %s: move %s", sess.id, mv)
	writeJSON(w, http.StatusOK, sess.state())
}

func (s *Server) handleEngineMove(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r.PathValue("id"))
	if sess == nil {
		http.Error(w, "no such game", http.StatusNotFound)
		return
	}

	result, err := sess.playEngine()
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	log.Info().Msgf("game %s: engine move %v", sess.id, result.Move)
	writeJSON(w, http.StatusOK, moveResponse{
		Move:  result.Move,
		Score: result.Score,
		State: sess.state(),
	})
}

// playMove validates the move against the generator before mutating
// anything; an illegal move leaves the board untouched.
func (sess *session) playMove(mv game.Move) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if game.IsTerminal(sess.board) {
		return fmt.Errorf("game is over")
	}
	moves := game.LegalMoves(sess.board, sess.current)
	if !utils.Contains(moves, mv) {
		return fmt.Errorf("illegal move %s for %s", mv, sess.current.Name())
	}
	sess.board = game.Apply(sess.board, mv, sess.current)
	sess.advance()
	return nil
}

// playEngine asks the searcher for the current side's move. A nil
// result move is a pass.
func (sess *session) playEngine() (searcher.Result, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if game.IsTerminal(sess.board) {
		return searcher.Result{}, fmt.Errorf("game is over")
	}
	result := sess.searcher.FindMove(sess.board, sess.current)
	if result.Move != nil {
		sess.board = game.Apply(sess.board, *result.Move, sess.current)
	}
	sess.advance()
	return result, nil
}

// advance hands the turn to the opponent, skipping them when they are
// blocked (a forced pass never mutates the board).
func (sess *session) advance() {
	sess.current = sess.current.Opponent()
	if len(game.LegalMoves(sess.board, sess.current)) == 0 && !game.IsTerminal(sess.board) {
		sess.current = sess.current.Opponent()
	}
}

func (sess *session) state() stateResponse {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.stateLocked()
}

func (sess *session) stateLocked() stateResponse {
	black, white := sess.board.Counts()
	resp := stateResponse{
		ID:         sess.id,
		Board:      sess.board.Rows(),
		ToMove:     sess.current.Name(),
		LegalMoves: game.LegalMoves(sess.board, sess.current),
		Black:      black,
		White:      white,
		Terminal:   game.IsTerminal(sess.board),
	}
	if resp.Terminal {
		resp.Winner = game.Winner(sess.board).Name()
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Msgf("encoding response: %v", err)
	}
}
