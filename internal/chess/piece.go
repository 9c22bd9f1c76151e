package chess

import "fmt"

// Piece is a live or captured piece. Pieces are held by pointer and moved
// in place, so identity survives apply and undo.
type Piece struct {
	Kind     Kind
	Colour   Colour
	Position Coord
	Moved    bool
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, colour Colour, pos Coord) *Piece {
	return &Piece{Kind: kind, Colour: colour, Position: pos}
}

// Sliding reports whether the piece moves along rays.
func (p *Piece) Sliding() bool {
	return p.Kind.Sliding()
}

// Char returns the FEN letter, uppercase for white. Empty squares are '.'.
func (p *Piece) Char() byte {
	c := p.Kind.Letter()
	if p.Colour == Black && p.Kind != None {
		c += 'a' - 'A'
	}
	return c
}

// String describes the piece and its square, e.g. "White Knight g1".
func (p *Piece) String() string {
	if p.Kind == None {
		return "none"
	}
	return fmt.Sprintf("%s %s %s", p.Colour, p.Kind, p.Position)
}

var (
	knightOffsets = []Coord{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = []Coord{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	rookRays      = []Coord{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopRays    = []Coord{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	queenRays     = kingOffsets
)

// rays returns the unit directions of a sliding kind.
func rays(k Kind) []Coord {
	switch k {
	case Bishop:
		return bishopRays
	case Rook:
		return rookRays
	case Queen:
		return queenRays
	}
	return nil
}

// LegalOffsets returns the fixed offsets of a non-sliding piece in its
// current state. Pawn offsets depend on colour and on whether it has moved.
// Sliding pieces return nil; their reach depends on the board.
func (p *Piece) LegalOffsets() []Coord {
	switch p.Kind {
	case Knight:
		return knightOffsets
	case King:
		return kingOffsets
	case Pawn:
		dir := p.Colour.Forward()
		offsets := []Coord{{0, dir}}
		if !p.Moved {
			offsets = append(offsets, Coord{0, 2 * dir})
		}
		return append(offsets, Coord{-1, dir}, Coord{1, dir})
	}
	return nil
}

// HasOffset reports whether off is one of the piece's fixed offsets.
func (p *Piece) HasOffset(off Coord) bool {
	for _, o := range p.LegalOffsets() {
		if o == off {
			return true
		}
	}
	return false
}

// OnRay reports whether off points along one of a sliding piece's rays.
func (p *Piece) OnRay(off Coord) bool {
	if off.IsZero() {
		return false
	}
	unit := off.Sign()
	if unit.Mul(off.Max()) != off {
		return false
	}
	for _, r := range rays(p.Kind) {
		if r == unit {
			return true
		}
	}
	return false
}

// Offsets returns a fresh lazy sequence of the piece's geometric offsets.
// Sliding pieces cycle through their rays with a growing multiplier until
// the multiplier exceeds the span of extent.
func (p *Piece) Offsets(extent Rect) *OffsetSeq {
	if p.Sliding() {
		return &OffsetSeq{rays: rays(p.Kind), mult: 1, limit: extent.Span()}
	}
	return &OffsetSeq{fixed: p.LegalOffsets()}
}

// OffsetSeq is a finite, pull-based sequence of offsets.
type OffsetSeq struct {
	fixed []Coord
	rays  []Coord
	idx   int
	mult  int
	limit int
}

// Next returns the next offset, or false once the sequence is exhausted.
func (s *OffsetSeq) Next() (Coord, bool) {
	if s.rays == nil {
		if s.idx >= len(s.fixed) {
			return Coord{}, false
		}
		off := s.fixed[s.idx]
		s.idx++
		return off, true
	}
	if s.mult > s.limit {
		return Coord{}, false
	}
	off := s.rays[s.idx].Mul(s.mult)
	s.idx++
	if s.idx == len(s.rays) {
		s.idx = 0
		s.mult++
	}
	return off, true
}

// Reset rewinds the sequence to its first offset.
func (s *OffsetSeq) Reset() {
	s.idx = 0
	if s.rays != nil {
		s.mult = 1
	}
}
