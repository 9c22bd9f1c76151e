package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// IsInCheck reports whether the given colour's king is attacked. Every
// opposing piece is run through the move generator with its bounds
// collapsed to the king's square. The self-check test is skipped, so a
// pinned attacker still gives check. The colour must have exactly one king.
func (v *Validator) IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	king, err := findKing(board, colour)
	if err != nil {
		return false, err
	}

	bounds := chess.Square(king.Position)
	for _, p := range board.PiecesOf(colour.Opposite()) {
		gen := v.generate(board, p, bounds, resolveOpts{quiet: true, attackOnly: true})
		if gen.Next() {
			return true, nil
		}
		if err := gen.Err(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// findKing returns the single king of the given colour.
func findKing(board *chess.Board, colour chess.Colour) (*chess.Piece, error) {
	kings := board.FindPieces(chess.King, colour)
	switch len(kings) {
	case 0:
		return nil, fmt.Errorf("%s: %w", colour, errors.ErrKingNotFound)
	case 1:
		return kings[0], nil
	}
	return nil, fmt.Errorf("%s has %d: %w", colour, len(kings), errors.ErrMultipleKings)
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func isSquareAttacked(board *chess.Board, square chess.Coord, byColour chess.Colour) bool {
	for _, p := range board.PiecesOf(byColour) {
		if attacks(board, p, square) {
			return true
		}
	}
	return false
}
