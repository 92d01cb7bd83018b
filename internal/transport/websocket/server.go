// Package websocket lets browsers and bots play over a WebSocket: one
// connection is one game, driven by JSON requests and answered with the
// full game state after each one.
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/stats"
	"github.com/vovakirdan/t2048/internal/storage"
)

// DefaultPlayer is used when a connection names no player.
const DefaultPlayer = "guest"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server routes the WebSocket endpoint and a small read-only JSON API.
type Server struct {
	store  storage.Store
	game   config.GameConfig
	logger *log.Logger
	router *mux.Router
	http   *http.Server
}

// NewServer creates a server. The caller keeps ownership of store.
func NewServer(store storage.Store, game config.GameConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		store:  store,
		game:   game,
		logger: logger.WithPrefix("t2048-ws"),
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/variants", s.handleVariants).Methods("GET")
	api.HandleFunc("/players/{player}/stats/{variant}", s.handleStats).Methods("GET")

	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("starting WebSocket server", "address", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("websocket: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// VariantInfo is a variant as listed by the API.
type VariantInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Size        int    `json:"size"`
	WinTile     int    `json:"winTile"`
}

func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	variants := registry.List()
	out := make([]VariantInfo, 0, len(variants))
	for _, v := range variants {
		cfg := v.Apply(s.game)
		out = append(out, VariantInfo{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Size:        cfg.Board.Size,
			WinTile:     cfg.Board.WinTile,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// StatsResponse is a player's record on one variant.
type StatsResponse struct {
	Player       string        `json:"player"`
	Variant      string        `json:"variant"`
	Totals       stats.Totals  `json:"totals"`
	AverageScore int           `json:"averageScore"`
	Leaderboard  []stats.Entry `json:"leaderboard"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	v, err := registry.Get(vars["variant"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	tracker := stats.NewTracker(s.store, vars["player"], s.logger).ForVariant(v.StatsScope)
	totals := tracker.Totals(r.Context())
	board := tracker.Leaderboard(r.Context())
	if board == nil {
		board = []stats.Entry{}
	}
	respondJSON(w, http.StatusOK, StatsResponse{
		Player:       vars["player"],
		Variant:      v.ID,
		Totals:       totals,
		AverageScore: totals.AverageScore(),
		Leaderboard:  board,
	})
}

// handleWebSocket opens the player's game, resuming a suspended one, and
// plays it until the connection closes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	player := q.Get("player")
	if player == "" {
		player = DefaultPlayer
	}
	variantID := q.Get("variant")
	if variantID == "" {
		variantID = t2048.DefaultVariant
	}

	v, err := registry.Get(variantID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger := s.logger.With("conn", uuid.NewString(), "player", player, "variant", v.ID)
	game, err := t2048.Open(r.Context(), v, s.game, s.store, player, logger)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("upgrade failed", "error", err)
		return
	}

	if _, err := game.Resume(r.Context(), core.RuntimeConfig{}); err != nil {
		logger.Warn("saved game discarded", "error", err)
	}

	c := &client{
		conn:   conn,
		game:   game,
		send:   make(chan []byte, 16),
		logger: logger,
	}
	logger.Info("client connected", "remote", r.RemoteAddr)

	go c.writePump()
	c.readPump(r.Context())

	logger.Info("client disconnected", "remote", r.RemoteAddr)
}
