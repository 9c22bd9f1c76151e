package chess

import "strings"

// MoveFlags records what validation learned about a move.
type MoveFlags struct {
	Castling bool
	Legal    bool
}

// Move is a proposed or applied transition. Moved and Captured are
// resolved against a specific board state and must be resolved again
// before the move is reused on a different position.
type Move struct {
	Colour   Colour
	Source   Coord
	Target   Coord
	Moved    *Piece
	Captured *Piece
	Flags    MoveFlags

	// Undo data, filled in by Board.MakeMove.
	prevMoved     bool
	rook          *Piece
	rookSource    Coord
	rookPrevMoved bool
}

// NewMove creates an unresolved move.
func NewMove(colour Colour, source, target Coord) *Move {
	return &Move{Colour: colour, Source: source, Target: target}
}

// Offset returns target - source.
func (m *Move) Offset() Coord {
	return m.Target.Sub(m.Source)
}

// IsCapture reports whether the resolved move takes a piece.
func (m *Move) IsCapture() bool {
	return m.Captured != nil && m.Captured.Kind != None
}

// Kingside reports whether a castling move goes toward the h-file.
func (m *Move) Kingside() bool {
	return m.Target.X > m.Source.X
}

// String summarises the move for diagnostics, e.g. "Ng1-f3", "Pe4xd5", "O-O".
func (m *Move) String() string {
	if m.Flags.Castling {
		if m.Kingside() {
			return "O-O"
		}
		return "O-O-O"
	}
	var sb strings.Builder
	if m.Moved != nil && m.Moved.Kind != None {
		sb.WriteByte(m.Moved.Kind.Letter())
	}
	sb.WriteString(m.Source.String())
	if m.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(m.Target.String())
	return sb.String()
}

// UCI returns the move in long algebraic form without separators (e2e4).
func (m *Move) UCI() string {
	return m.Source.String() + m.Target.String()
}

// CastlingRookSquares returns the corner square holding the rook for a
// castling move from source toward target, and where that rook ends up.
// Kingside the rook starts three files right of the king, queenside four
// files left; it always lands beside the king's source square.
func CastlingRookSquares(source, target Coord) (from, to Coord) {
	if target.X > source.X {
		return source.Add(Coord{3, 0}), source.Add(Coord{1, 0})
	}
	return source.Add(Coord{-4, 0}), source.Add(Coord{-1, 0})
}
