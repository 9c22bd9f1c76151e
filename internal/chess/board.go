package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board holds the live pieces, the captured pieces, the stack of applied
// moves and the player to move. Empty squares are represented by a
// per-board sentinel piece of kind None.
//
// A Board is not safe for concurrent use; callers that share one must hold
// an exclusive lock around every apply, undo and validation.
type Board struct {
	pieces   []*Piece
	captured []*Piece
	moves    []*Move
	current  Colour
	none     *Piece
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Clear removes every piece and all history, and replaces the sentinel.
func (b *Board) Clear() {
	b.pieces = nil
	b.captured = nil
	b.moves = nil
	b.current = White
	b.none = &Piece{Kind: None, Colour: NoColour}
}

// None returns this board's empty-square sentinel.
func (b *Board) None() *Piece {
	return b.none
}

// IsNone reports whether p is this board's sentinel (or nil).
func (b *Board) IsNone(p *Piece) bool {
	return p == nil || p == b.none
}

// AddPiece places an existing piece on the board.
func (b *Board) AddPiece(p *Piece) error {
	if p == nil || p.Kind == None || !p.Colour.Valid() {
		return fmt.Errorf("add piece: %w", errors.ErrInvalidPiece)
	}
	if !BoardExtent.Contains(p.Position) {
		return fmt.Errorf("add piece at %s: %w", p.Position, errors.ErrInvalidSquare)
	}
	if _, ok := b.Lookup(p.Position); ok {
		return fmt.Errorf("add piece at %s: %w", p.Position, errors.ErrSquareOccupied)
	}
	b.pieces = append(b.pieces, p)
	return nil
}

// CreatePiece builds an unmoved piece and adds it to the board.
func (b *Board) CreatePiece(kind Kind, colour Colour, pos Coord) (*Piece, error) {
	p := NewPiece(kind, colour, pos)
	if err := b.AddPiece(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemovePiece takes p off the board without recording a capture.
// It reports whether p was present.
func (b *Board) RemovePiece(p *Piece) bool {
	var ok bool
	b.pieces, ok = removeByIdentity(b.pieces, p)
	return ok
}

// RemovePieceAt removes whatever stands on pos.
func (b *Board) RemovePieceAt(pos Coord) (*Piece, bool) {
	p, ok := b.Lookup(pos)
	if !ok {
		return nil, false
	}
	b.RemovePiece(p)
	return p, true
}

// PieceAt returns the piece on pos, or the sentinel if the square is empty.
func (b *Board) PieceAt(pos Coord) *Piece {
	for _, p := range b.pieces {
		if p.Position == pos {
			return p
		}
	}
	return b.none
}

// Lookup returns the piece on pos and whether the square is occupied.
func (b *Board) Lookup(pos Coord) (*Piece, bool) {
	p := b.PieceAt(pos)
	return p, p != b.none
}

// Occupied reports whether any piece stands on pos.
func (b *Board) Occupied(pos Coord) bool {
	_, ok := b.Lookup(pos)
	return ok
}

// Pieces returns the live pieces. The slice is a copy; the pieces are not.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// PiecesOf returns the live pieces of one colour.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var out []*Piece
	for _, p := range b.pieces {
		if p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// FindPieces returns the live pieces of a given kind and colour.
func (b *Board) FindPieces(kind Kind, colour Colour) []*Piece {
	var out []*Piece
	for _, p := range b.pieces {
		if p.Kind == kind && p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// Captured returns the captured pieces in capture order.
func (b *Board) Captured() []*Piece {
	out := make([]*Piece, len(b.captured))
	copy(out, b.captured)
	return out
}

// History returns the applied moves, oldest first.
func (b *Board) History() []*Move {
	out := make([]*Move, len(b.moves))
	copy(out, b.moves)
	return out
}

// LastMove returns the most recently applied move, or nil.
func (b *Board) LastMove() *Move {
	if len(b.moves) == 0 {
		return nil
	}
	return b.moves[len(b.moves)-1]
}

// Ply returns the number of applied moves not yet undone.
func (b *Board) Ply() int {
	return len(b.moves)
}

// CurrentPlayer returns the colour to move.
func (b *Board) CurrentPlayer() Colour {
	return b.current
}

// SetCurrentPlayer sets the colour to move.
func (b *Board) SetCurrentPlayer(c Colour) {
	b.current = c
}

// ChangePlayer toggles the colour to move.
func (b *Board) ChangePlayer() error {
	if !b.current.Valid() {
		return fmt.Errorf("toggle from %s: %w", b.current, errors.ErrInvalidPlayer)
	}
	b.current = b.current.Opposite()
	return nil
}

// MakeMove applies m without validating it. Unresolved Moved and Captured
// fields are resolved from the board first. A move flagged Castling also
// relocates the matching rook.
func (b *Board) MakeMove(m *Move) error {
	if m.Moved == nil {
		m.Moved = b.PieceAt(m.Source)
	}
	if b.IsNone(m.Moved) {
		return fmt.Errorf("move from %s: %w", m.Source, errors.ErrNoPiece)
	}
	if m.Captured == nil {
		m.Captured = b.PieceAt(m.Target)
	}
	if err := b.ChangePlayer(); err != nil {
		return err
	}
	b.moves = append(b.moves, m)

	m.prevMoved = m.Moved.Moved
	m.Moved.Position = m.Target
	m.Moved.Moved = true

	if !b.IsNone(m.Captured) {
		b.pieces, _ = removeByIdentity(b.pieces, m.Captured)
		b.captured = append(b.captured, m.Captured)
	}

	m.rook = nil
	if m.Flags.Castling {
		from, to := CastlingRookSquares(m.Source, m.Target)
		if rook, ok := b.Lookup(from); ok {
			m.rook = rook
			m.rookSource = from
			m.rookPrevMoved = rook.Moved
			rook.Position = to
			rook.Moved = true
		}
	}
	return nil
}

// UndoMove reverts the most recent move and returns it. Moved flags are
// restored to their values before the move.
func (b *Board) UndoMove() (*Move, error) {
	if len(b.moves) == 0 {
		return nil, errors.ErrEmptyHistory
	}
	if err := b.ChangePlayer(); err != nil {
		return nil, err
	}
	m := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]

	m.Moved.Position = m.Source
	m.Moved.Moved = m.prevMoved

	if !b.IsNone(m.Captured) {
		b.captured, _ = removeLastByIdentity(b.captured, m.Captured)
		b.pieces = append(b.pieces, m.Captured)
	}

	if m.rook != nil {
		m.rook.Position = m.rookSource
		m.rook.Moved = m.rookPrevMoved
		m.rook = nil
	}
	return m, nil
}

func removeByIdentity(list []*Piece, p *Piece) ([]*Piece, bool) {
	for i, q := range list {
		if q == p {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

func removeLastByIdentity(list []*Piece, p *Piece) ([]*Piece, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i] == p {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}
