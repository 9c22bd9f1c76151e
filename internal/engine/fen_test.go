package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return len(b.Pieces()) == 32 &&
					b.PieceAt(chess.MustSquare("e1")).Char() == 'K' &&
					b.PieceAt(chess.MustSquare("d8")).Char() == 'q' &&
					!b.PieceAt(chess.MustSquare("e2")).Moved &&
					!b.PieceAt(chess.MustSquare("h8")).Moved &&
					b.CurrentPlayer() == chess.White
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.PieceAt(chess.MustSquare("e4")).Moved &&
					b.IsNone(b.PieceAt(chess.MustSquare("e2"))) &&
					b.CurrentPlayer() == chess.Black
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.PieceAt(chess.MustSquare("e1")).Moved &&
					b.PieceAt(chess.MustSquare("a1")).Moved &&
					b.PieceAt(chess.MustSquare("h8")).Moved
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
			checkFn: func(b *chess.Board) bool {
				return !b.PieceAt(chess.MustSquare("e1")).Moved &&
					!b.PieceAt(chess.MustSquare("h1")).Moved &&
					b.PieceAt(chess.MustSquare("a1")).Moved &&
					!b.PieceAt(chess.MustSquare("a8")).Moved &&
					b.PieceAt(chess.MustSquare("h8")).Moved
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/R3K3",
			checkFn: func(b *chess.Board) bool {
				return !b.PieceAt(chess.MustSquare("a1")).Moved &&
					b.CurrentPlayer() == chess.White
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if !tt.checkFn(board) {
				t.Errorf("board check failed for %s", tt.fen)
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"bad piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"short rank", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"long rank", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/8 w X - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestBoardToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
	}
	for _, fen := range fens {
		board, err := NewBoardFromFEN(fen)
		if err != nil {
			t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
		}
		if got := BoardToFEN(board); got != fen {
			t.Errorf("BoardToFEN() = %q, want %q", got, fen)
		}
	}
}

func TestBoardToFEN_AfterMoves(t *testing.T) {
	v := NewValidator(nil)
	board, err := NewBoardFromFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := v.ApplyUCI(board, "e1g1"); err != nil {
		t.Fatalf("ApplyUCI(e1g1): %v", err)
	}
	testutil.AssertEqual(t, BoardToFEN(board), "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 0 1")

	if _, err := v.ApplyUCI(board, "a8b8"); err != nil {
		t.Fatalf("ApplyUCI(a8b8): %v", err)
	}
	testutil.AssertEqual(t, BoardToFEN(board), "1r2k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 w k - 0 2")
}

func TestLoadFEN_ResetsBoard(t *testing.T) {
	board := NewInitialBoard()
	old := board.None()
	if _, err := NewValidator(nil).ApplyUCI(board, "e2e4"); err != nil {
		t.Fatal(err)
	}

	testutil.AssertNoError(t, LoadFEN(board, "4k3/8/8/8/8/8/8/4K3 w - - 0 1"))
	testutil.AssertEqual(t, len(board.Pieces()), 2)
	testutil.AssertEqual(t, board.Ply(), 0)
	testutil.AssertTrue(t, board.None() != old, "sentinel replaced")
}
