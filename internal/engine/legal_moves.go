package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every legal move of one piece.
func (v *Validator) LegalMoves(board *chess.Board, piece *chess.Piece) ([]*chess.Move, error) {
	var moves []*chess.Move
	gen := v.Generate(board, piece, chess.BoardExtent)
	for gen.Next() {
		moves = append(moves, gen.Move())
	}
	return moves, gen.Err()
}

// LegalMovesFor returns every legal move of one colour.
func (v *Validator) LegalMovesFor(board *chess.Board, colour chess.Colour) ([]*chess.Move, error) {
	var moves []*chess.Move
	for _, p := range board.PiecesOf(colour) {
		pm, err := v.LegalMoves(board, p)
		if err != nil {
			return nil, err
		}
		moves = append(moves, pm...)
	}
	return moves, nil
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (v *Validator) HasLegalMoves(board *chess.Board, colour chess.Colour) (bool, error) {
	for _, p := range board.PiecesOf(colour) {
		gen := v.Generate(board, p, chess.BoardExtent)
		if gen.Next() {
			return true, nil
		}
		if err := gen.Err(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// IsPossibleMove reports whether m is among the moves the generator
// produces for the piece on m.Source. An empty source is simply impossible.
func (v *Validator) IsPossibleMove(board *chess.Board, m *chess.Move) (bool, error) {
	piece, ok := board.Lookup(m.Source)
	if !ok {
		return false, nil
	}
	gen := v.Generate(board, piece, chess.Square(m.Target))
	if gen.Next() {
		return true, nil
	}
	return false, gen.Err()
}
