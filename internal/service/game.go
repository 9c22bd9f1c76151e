package service

import (
	"sync"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Game is one board hosted by the server. All access to the board goes
// through the game's mutex; a single Board is not safe for concurrent use.
type Game struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	board     *chess.Board
	validator *engine.Validator
}

func newGame(id string, board *chess.Board, v *engine.Validator) *Game {
	return &Game{
		ID:        id,
		CreatedAt: time.Now(),
		board:     board,
		validator: v,
	}
}

// With runs fn while holding the game lock.
func (g *Game) With(fn func(b *chess.Board, v *engine.Validator) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.board, g.validator)
}
