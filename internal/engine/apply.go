package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Apply validates m and, if legal, applies it to board. Turn order is not
// checked here; see ApplyUCI. Rejections are returned as a *errors.MoveError
// wrapping errors.ErrIllegalMove.
func (v *Validator) Apply(board *chess.Board, m *chess.Move) error {
	legal, err := v.Resolve(board, m)
	if err != nil {
		return &errors.MoveError{Err: err, Ply: board.Ply() + 1, Player: board.CurrentPlayer().String()}
	}
	if !legal {
		return v.illegal(board, m, errors.ErrIllegalMove)
	}
	return board.MakeMove(m)
}

func (v *Validator) illegal(board *chess.Board, m *chess.Move, err error) error {
	return &errors.MoveError{
		Err:      err,
		Ply:      board.Ply() + 1,
		MoveText: m.String(),
		Player:   board.CurrentPlayer().String(),
	}
}

// ApplyUnchecked applies m without any rule checks. Only the pieces and the
// castling flag are resolved, so a trusted two-file king move still brings
// its rook along.
func ApplyUnchecked(board *chess.Board, m *chess.Move) error {
	m.Flags = chess.MoveFlags{}
	m.Moved = board.PieceAt(m.Source)
	m.Captured = board.PieceAt(m.Target)
	if !board.IsNone(m.Moved) {
		tagCastling(board, m)
	}
	return board.MakeMove(m)
}

// Undo reverts the last applied move.
func Undo(board *chess.Board) (*chess.Move, error) {
	return board.UndoMove()
}

// ApplyUCI parses a move such as "e2e4" for the player to move and applies
// it with validation. A piece of the other colour is rejected.
func (v *Validator) ApplyUCI(board *chess.Board, text string) (*chess.Move, error) {
	m, err := ParseUCI(board.CurrentPlayer(), text)
	if err != nil {
		return nil, err
	}
	if p, ok := board.Lookup(m.Source); ok && p.Colour != board.CurrentPlayer() {
		m.Moved = p
		v.entry(RuleTurn, m).Warn("move rejected")
		return nil, v.illegal(board, m, errors.Wrapf(errors.ErrIllegalMove, "%s piece moved on %s's turn",
			p.Colour, board.CurrentPlayer()))
	}
	if err := v.Apply(board, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseUCI parses a coordinate move of the form e2e4. A trailing promotion
// letter is accepted and ignored.
func ParseUCI(colour chess.Colour, text string) (*chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return nil, errors.Wrapf(errors.ErrInvalidSquare, "move %q", text)
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return nil, err
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return nil, err
	}
	return chess.NewMove(colour, from, to), nil
}
