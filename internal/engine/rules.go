package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Rule identifies a legality check in diagnostics.
type Rule string

const (
	RulePieceExists         Rule = "piece-exists"
	RulePawnShape           Rule = "pawn-shape"
	RuleSelfCapture         Rule = "no-self-capture"
	RuleCastling            Rule = "castling"
	RulePathClear           Rule = "path-clear"
	RuleCastlingObstruction Rule = "castling-obstruction"
	RuleNoOp                Rule = "no-op"
	RulePosition            Rule = "position-consistency"
	RuleOffset              Rule = "offset-membership"
	RuleCastlingTransit     Rule = "castling-transit"
	RuleSelfCheck           Rule = "self-check"
	RuleTurn                Rule = "turn"
)

// ruleChecks run in order after the piece lookup; the first failure decides.
// The self-check simulation runs after all of them.
var ruleChecks = []struct {
	rule  Rule
	check func(*chess.Board, *chess.Move) bool
}{
	{RulePawnShape, checkPawnShape},
	{RuleSelfCapture, checkSelfCapture},
	{RuleCastling, tagCastling},
	{RulePathClear, checkPathClear},
	{RuleCastlingObstruction, checkCastlingObstruction},
	{RuleNoOp, checkNotNoOp},
	{RulePosition, checkPosition},
	{RuleOffset, checkOffset},
	{RuleCastlingTransit, checkCastlingTransit},
}

var diagonalStep = chess.C(1, 1)

// checkPawnShape: pawns move straight onto empty squares and diagonally
// onto occupied ones.
func checkPawnShape(b *chess.Board, m *chess.Move) bool {
	if m.Moved.Kind != chess.Pawn {
		return true
	}
	diagonal := m.Offset().Abs() == diagonalStep
	if b.IsNone(m.Captured) {
		return !diagonal
	}
	return diagonal
}

func checkSelfCapture(b *chess.Board, m *chess.Move) bool {
	return b.IsNone(m.Captured) || m.Captured.Colour != m.Moved.Colour
}

// tagCastling marks a two-file king move as castling when neither the king
// nor the corner rook has moved. It never rejects.
func tagCastling(b *chess.Board, m *chess.Move) bool {
	king := m.Moved
	off := m.Offset()
	if king.Kind != chess.King || king.Moved || off.Y != 0 || abs(off.X) != 2 {
		return true
	}
	corner, _ := chess.CastlingRookSquares(m.Source, m.Target)
	rook, ok := b.Lookup(corner)
	if ok && rook.Kind == chess.Rook && rook.Colour == king.Colour && !rook.Moved {
		m.Flags.Castling = true
	}
	return true
}

// checkPathClear walks the squares strictly between source and target for
// sliding pieces, castling kings and pawn double steps.
func checkPathClear(b *chess.Board, m *chess.Move) bool {
	off := m.Offset()
	isDoubleStep := m.Moved.Kind == chess.Pawn && abs(off.Y) == 2
	if !m.Moved.Sliding() && !m.Flags.Castling && !isDoubleStep {
		return true
	}
	return isPathClear(b, m.Source, off)
}

// checkCastlingObstruction: the king's destination must be empty, and
// queenside the b-file square beside the rook's destination as well.
func checkCastlingObstruction(b *chess.Board, m *chess.Move) bool {
	if !m.Flags.Castling {
		return true
	}
	if b.Occupied(m.Target) {
		return false
	}
	if !m.Kingside() {
		return !b.Occupied(m.Source.Add(chess.C(-3, 0)))
	}
	return true
}

func checkNotNoOp(_ *chess.Board, m *chess.Move) bool {
	return m.Source != m.Target
}

// checkPosition rejects stale moves and targets off the board.
func checkPosition(_ *chess.Board, m *chess.Move) bool {
	return m.Moved.Position == m.Source && chess.BoardExtent.Contains(m.Target)
}

// checkOffset: non-sliding pieces must use one of their current offsets,
// unless castling; sliding pieces must stay on one of their rays.
func checkOffset(_ *chess.Board, m *chess.Move) bool {
	if m.Flags.Castling {
		return true
	}
	off := m.Offset()
	if m.Moved.Sliding() {
		return m.Moved.OnRay(off)
	}
	return m.Moved.HasOffset(off)
}

// checkCastlingTransit: a king may not castle out of check or across an
// attacked square.
func checkCastlingTransit(b *chess.Board, m *chess.Move) bool {
	if !m.Flags.Castling {
		return true
	}
	enemy := m.Moved.Colour.Opposite()
	transit := m.Source.Add(m.Offset().Sign())
	return !isSquareAttacked(b, m.Source, enemy) && !isSquareAttacked(b, transit, enemy)
}
