package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// isPathClear reports whether every square strictly between from and
// from+off is empty, stepping one square at a time by the sign of each axis.
func isPathClear(board *chess.Board, from, off chess.Coord) bool {
	step := off.Sign()
	for i := 1; i < off.Max(); i++ {
		if board.Occupied(from.Add(step.Mul(i))) {
			return false
		}
	}
	return true
}

// attacks reports whether p attacks square on the current board.
// Sliding pieces need a clear ray, pawns attack only diagonally forward,
// and knights and kings attack their fixed offsets.
func attacks(board *chess.Board, p *chess.Piece, square chess.Coord) bool {
	off := square.Sub(p.Position)
	if off.IsZero() {
		return false
	}

	switch {
	case p.Sliding():
		return p.OnRay(off) && isPathClear(board, p.Position, off)
	case p.Kind == chess.Pawn:
		return off.Abs() == diagonalStep && off.Y == p.Colour.Forward()
	default:
		return p.HasOffset(off)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
