package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// Positions without en passant or promotions within the tested depth.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 1", InitialFEN, 1, 20},
		{"initial depth 2", InitialFEN, 2, 400},
		{"initial depth 3", InitialFEN, 3, 8902},
		{"kiwipete depth 1", kiwipeteFEN, 1, 48},
		{"position 3 depth 1", position3FEN, 1, 14},
		{"position 3 depth 2", position3FEN, 2, 191},
		{"position 4 depth 1", position4FEN, 1, 6},
	}

	v := NewValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.depth > 2 {
				t.Skip("deep perft skipped in short mode")
			}
			b := mustBoard(t, tt.fen)
			before := testutil.Snapshot(b)

			got, err := v.Perft(b, tt.depth)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.want)
			}
			testutil.AssertUnchanged(t, b, before)
		})
	}
}

func TestDivide_SumsToPerft(t *testing.T) {
	v := NewValidator(nil)
	b := NewInitialBoard()

	div, err := v.Divide(b, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(div), 20)

	var total uint64
	for _, n := range div {
		total += n
	}
	testutil.AssertEqual(t, total, uint64(400))
	testutil.AssertEqual(t, div["g1f3"], uint64(20))
}

// oracleMoves lists the legal moves of an independent bitboard generator
// as UCI from-to pairs. Promotions collapse into one entry per square pair.
func oracleMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	seen := make(map[string]bool)
	var out []string
	for _, mv := range board.GenerateLegalMoves() {
		uci := squareName(mv.From()) + squareName(mv.To())
		if !seen[uci] {
			seen[uci] = true
			out = append(out, uci)
		}
	}
	return out
}

// referenceMoves lists the legal moves of a second, mailbox-based
// generator in the same collapsed form as oracleMoves.
func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := nchess.FEN(fen)
	if err != nil {
		t.Fatalf("reference FEN %q: %v", fen, err)
	}
	game := nchess.NewGame(opt)
	seen := make(map[string]bool)
	var out []string
	for _, mv := range game.ValidMoves() {
		uci := mv.S1().String() + mv.S2().String()
		if !seen[uci] {
			seen[uci] = true
			out = append(out, uci)
		}
	}
	return out
}

func squareName(sq uint8) string {
	return chess.C(int(sq%8)+1, int(sq/8)+1).String()
}

func TestLegalMovesFor_MatchesOracle(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		position3FEN,
		position4FEN,
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"8/8/8/3k4/8/3K4/8/8 w - - 0 1",
	}

	v := NewValidator(nil)
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b := mustBoard(t, fen)
			moves, err := v.LegalMovesFor(b, b.CurrentPlayer())
			testutil.AssertNoError(t, err)

			got := make([]string, 0, len(moves))
			for _, m := range moves {
				got = append(got, m.UCI())
			}
			testutil.AssertEqual(t, got, oracleMoves(fen), testutil.SortStrings, testutil.EquateEmpty)
			testutil.AssertEqual(t, got, referenceMoves(t, fen), testutil.SortStrings, testutil.EquateEmpty)
		})
	}
}
