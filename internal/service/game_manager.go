// Package service hosts chess games for the HTTP server.
package service

import (
	"fmt"
	"slices"
	"sync"

	"github.com/apex/log"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/logging"
)

// GameManager is the registry of live games keyed by id.
type GameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
	log   log.Interface
	quiet bool
}

// NewGameManager creates an empty registry. Validators of new games log to
// logger with the game id attached unless quiet is set.
func NewGameManager(logger log.Interface, quiet bool) *GameManager {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameManager{
		games: make(map[string]*Game),
		log:   logger,
		quiet: quiet,
	}
}

// CreateGame sets up a new game from fen, or the initial position when fen
// is empty. Each side needs exactly one king.
func (gm *GameManager) CreateGame(fen string) (*Game, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		switch n := len(board.FindPieces(chess.King, c)); {
		case n == 0:
			return nil, fmt.Errorf("%s: %w", c, errors.ErrKingNotFound)
		case n > 1:
			return nil, fmt.Errorf("%s: %w", c, errors.ErrMultipleKings)
		}
	}

	id := uuid.New().String()
	entry := gm.log.WithField(logging.FieldGame, id)
	var vlog log.Interface = entry
	if gm.quiet {
		vlog = logging.Discard()
	}
	game := newGame(id, board, engine.NewValidator(vlog))

	gm.mu.Lock()
	gm.games[id] = game
	gm.mu.Unlock()

	entry.WithField("fen", fen).Info("game created")
	return game, nil
}

// GetGame returns the game with the given id.
func (gm *GameManager) GetGame(id string) (*Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, ok := gm.games[id]
	if !ok {
		return nil, fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
	}
	return game, nil
}

// DeleteGame removes a game.
func (gm *GameManager) DeleteGame(id string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, ok := gm.games[id]; !ok {
		return fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
	}
	delete(gm.games, id)
	gm.log.WithField(logging.FieldGame, id).Info("game deleted")
	return nil
}

// ListGames returns the ids of all games in sorted order.
func (gm *GameManager) ListGames() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	ids := maps.Keys(gm.games)
	slices.Sort(ids)
	return ids
}
