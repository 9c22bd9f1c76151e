package service

import (
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// GameState is the full view of a game returned to clients.
type GameState struct {
	ID      string            `json:"id"`
	Board   *output.JSONBoard `json:"board"`
	History []output.JSONMove `json:"history"`
}

// GameService implements the operations exposed over HTTP.
type GameService struct {
	manager *GameManager
	cache   *hashing.ThreadSafeMoveCache
}

// NewGameService creates a service over manager. cacheSize bounds the
// shared legal-move cache; 0 means unlimited.
func NewGameService(manager *GameManager, cacheSize int) *GameService {
	return &GameService{
		manager: manager,
		cache:   hashing.NewThreadSafeMoveCache(cacheSize),
	}
}

// Manager returns the underlying registry.
func (s *GameService) Manager() *GameManager {
	return s.manager
}

// CreateGame starts a game from fen (empty for the initial position).
func (s *GameService) CreateGame(fen string) (*GameState, error) {
	game, err := s.manager.CreateGame(fen)
	if err != nil {
		return nil, err
	}
	return s.GetGameState(game.ID)
}

// GetGameState returns the position, check status, legal moves and history.
func (s *GameService) GetGameState(id string) (*GameState, error) {
	game, err := s.manager.GetGame(id)
	if err != nil {
		return nil, err
	}

	state := &GameState{ID: id}
	err = game.With(func(b *chess.Board, v *engine.Validator) error {
		inCheck, err := v.IsInCheck(b, b.CurrentPlayer())
		if err != nil {
			return err
		}
		state.Board = output.ReportToJSON(&output.Report{
			FEN:     engine.BoardToFEN(b),
			Board:   b,
			InCheck: inCheck,
		})
		state.History = output.MovesToJSON(b.History())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// LegalMoves lists the legal moves of the side to move in UCI form. A
// non-empty square restricts the list to moves from that square.
func (s *GameService) LegalMoves(id, square string) ([]string, error) {
	game, err := s.manager.GetGame(id)
	if err != nil {
		return nil, err
	}
	if square != "" {
		if _, err := chess.ParseSquare(square); err != nil {
			return nil, err
		}
	}

	var all []string
	err = game.With(func(b *chess.Board, v *engine.Validator) error {
		all, err = s.legalMoves(b, v)
		return err
	})
	if err != nil {
		return nil, err
	}
	if square == "" {
		return all, nil
	}

	moves := []string{}
	for _, m := range all {
		if strings.HasPrefix(m, square) {
			moves = append(moves, m)
		}
	}
	return moves, nil
}

func (s *GameService) legalMoves(b *chess.Board, v *engine.Validator) ([]string, error) {
	if cached, ok := s.cache.Lookup(b); ok {
		return cached, nil
	}
	moves, err := v.LegalMovesFor(b, b.CurrentPlayer())
	if err != nil {
		return nil, err
	}
	list := make([]string, len(moves))
	for i, m := range moves {
		list[i] = m.UCI()
	}
	s.cache.Store(b, list)
	return list, nil
}

// IsLegal reports whether a UCI move is legal for the side to move without
// playing it.
func (s *GameService) IsLegal(id, uci string) (bool, error) {
	game, err := s.manager.GetGame(id)
	if err != nil {
		return false, err
	}

	var legal bool
	err = game.With(func(b *chess.Board, v *engine.Validator) error {
		m, err := engine.ParseUCI(b.CurrentPlayer(), uci)
		if err != nil {
			return err
		}
		p, ok := b.Lookup(m.Source)
		if !ok || p.Colour != b.CurrentPlayer() {
			return nil
		}
		legal, err = v.IsPossibleMove(b, m)
		return err
	})
	return legal, err
}

// MakeMove validates and plays a UCI move.
func (s *GameService) MakeMove(id, uci string) (*output.JSONMove, error) {
	game, err := s.manager.GetGame(id)
	if err != nil {
		return nil, err
	}

	var played output.JSONMove
	err = game.With(func(b *chess.Board, v *engine.Validator) error {
		m, err := v.ApplyUCI(b, uci)
		if err != nil {
			return err
		}
		played = output.MoveToJSON(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &played, nil
}

// UndoMove takes back the last move.
func (s *GameService) UndoMove(id string) (*output.JSONMove, error) {
	game, err := s.manager.GetGame(id)
	if err != nil {
		return nil, err
	}

	var undone output.JSONMove
	err = game.With(func(b *chess.Board, _ *engine.Validator) error {
		m, err := engine.Undo(b)
		if err != nil {
			return err
		}
		undone = output.MoveToJSON(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &undone, nil
}

// InCheck reports whether the side to move is in check.
func (s *GameService) InCheck(id string) (bool, error) {
	game, err := s.manager.GetGame(id)
	if err != nil {
		return false, err
	}

	var inCheck bool
	err = game.With(func(b *chess.Board, v *engine.Validator) error {
		inCheck, err = v.IsInCheck(b, b.CurrentPlayer())
		return err
	})
	return inCheck, err
}

// RenderSVG draws the game's board. A non-empty square highlights the
// targets of that square's legal moves.
func (s *GameService) RenderSVG(id, square string, w io.Writer) error {
	game, err := s.manager.GetGame(id)
	if err != nil {
		return err
	}

	var from chess.Coord
	if square != "" {
		if from, err = chess.ParseSquare(square); err != nil {
			return err
		}
	}

	return game.With(func(b *chess.Board, v *engine.Validator) error {
		var opts output.SVGOptions
		if p, ok := b.Lookup(from); ok && square != "" {
			moves, err := v.LegalMoves(b, p)
			if err != nil {
				return err
			}
			for _, m := range moves {
				opts.Highlight = append(opts.Highlight, m.Target)
			}
		}
		output.RenderSVG(w, b, opts)
		return nil
	})
}
