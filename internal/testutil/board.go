package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// PieceState is a comparable copy of one piece.
type PieceState struct {
	Kind   chess.Kind
	Colour chess.Colour
	Square chess.Coord
	Moved  bool
}

// BoardState is a comparable copy of everything observable on a board.
// Piece order carries no meaning and is ignored by SortPieces.
type BoardState struct {
	Pieces   []PieceState
	Captured []PieceState
	Player   chess.Colour
	Ply      int
}

// SortPieces makes piece slices compare as sets.
var SortPieces = cmpopts.SortSlices(func(a, b PieceState) bool {
	if a.Square != b.Square {
		if a.Square.X != b.Square.X {
			return a.Square.X < b.Square.X
		}
		return a.Square.Y < b.Square.Y
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Colour < b.Colour
})

// Snapshot copies the observable state of b.
func Snapshot(b *chess.Board) BoardState {
	return BoardState{
		Pieces:   states(b.Pieces()),
		Captured: states(b.Captured()),
		Player:   b.CurrentPlayer(),
		Ply:      b.Ply(),
	}
}

func states(pieces []*chess.Piece) []PieceState {
	out := make([]PieceState, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, PieceState{Kind: p.Kind, Colour: p.Colour, Square: p.Position, Moved: p.Moved})
	}
	return out
}

// AssertUnchanged fails if b no longer matches before.
func AssertUnchanged(t *testing.T, b *chess.Board, before BoardState, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(before, Snapshot(b), SortPieces, cmpopts.EquateEmpty()); diff != "" {
		fail(t, msgAndArgs, "board changed (-before +after):\n%s", diff)
	}
}

// MustPlace adds pieces described as "Ke1", "pe7" (lowercase is black)
// to b and returns them in order.
func MustPlace(t *testing.T, b *chess.Board, specs ...string) []*chess.Piece {
	t.Helper()
	out := make([]*chess.Piece, 0, len(specs))
	for _, s := range specs {
		if len(s) != 3 {
			t.Fatalf("bad piece %q", s)
		}
		kind := chess.KindFromLetter(s[0])
		colour := chess.White
		if s[0] >= 'a' && s[0] <= 'z' {
			colour = chess.Black
		}
		sq, err := chess.ParseSquare(s[1:])
		if err != nil {
			t.Fatalf("bad piece %q: %v", s, err)
		}
		p, err := b.CreatePiece(kind, colour, sq)
		if err != nil {
			t.Fatalf("place %q: %v", s, err)
		}
		out = append(out, p)
	}
	return out
}

// Targets returns the target squares of moves in algebraic form.
func Targets(moves []*chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Target.String())
	}
	return out
}

// SortStrings makes string slices compare as sets.
var SortStrings = cmpopts.SortSlices(func(a, b string) bool { return a < b })

// EquateEmpty treats nil and empty slices as equal.
var EquateEmpty = cmpopts.EquateEmpty()
