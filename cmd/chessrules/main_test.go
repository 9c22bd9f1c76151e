package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

func testConfig(out *bytes.Buffer) *config.Config {
	cfg := config.NewConfig()
	cfg.Output.Writer = out
	cfg.Batch.Workers = 2
	return cfg
}

func memoryLogger() (*log.Logger, *memory.Handler) {
	h := memory.New()
	return &log.Logger{Handler: h, Level: log.DebugLevel}, h
}

func TestSplitMoves(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"e2e4", []string{"e2e4"}},
		{"e2e4 e7e5", []string{"e2e4", "e7e5"}},
		{"e2e4,e7e5,\tg1f3", []string{"e2e4", "e7e5", "g1f3"}},
		{"  e2e4  ", []string{"e2e4"}},
	}
	for _, tt := range tests {
		got := splitMoves(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		testutil.AssertEqual(t, got, tt.want, "splitMoves(%q)", tt.in)
	}
}

func TestRunPosition_ListMoves(t *testing.T) {
	var out bytes.Buffer
	logger, _ := memoryLogger()

	err := runPosition(testConfig(&out), logger, positionRequest{})
	if err != nil {
		t.Fatalf("runPosition() error = %v", err)
	}
	if !strings.Contains(out.String(), "legal moves (20):") {
		t.Errorf("output missing move count:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "in check: false") {
		t.Errorf("output missing check status:\n%s", out.String())
	}
}

func TestRunPosition_FromSquareAfterMoves(t *testing.T) {
	var out bytes.Buffer
	logger, _ := memoryLogger()

	req := positionRequest{Moves: []string{"e2e4", "e7e5"}, From: "f1", Print: true}
	if err := runPosition(testConfig(&out), logger, req); err != nil {
		t.Fatalf("runPosition() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "legal moves (5): f1e2 f1d3 f1c4 f1b5 f1a6") {
		t.Errorf("unexpected bishop moves:\n%s", got)
	}
	if !strings.Contains(got, "4 . . . . P . . .") {
		t.Errorf("diagram missing advanced pawn:\n%s", got)
	}
}

func TestRunPosition_Try(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"legal pawn push", "", "e2e4", "Pe2-e4: legal"},
		{"pawn too far", "", "e2e5", "Pe2-e5: illegal"},
		{"wrong side", "", "e7e5", "Pe7-e5: illegal (White to move)"},
		{"castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O: legal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			logger, _ := memoryLogger()
			err := runPosition(testConfig(&out), logger, positionRequest{FEN: tt.fen, Try: tt.move})
			if err != nil {
				t.Fatalf("runPosition() error = %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunPosition_TryJSONAndDiagnostics(t *testing.T) {
	var out bytes.Buffer
	logger, h := memoryLogger()
	cfg := testConfig(&out)
	cfg.Output.JSON = true

	if err := runPosition(cfg, logger, positionRequest{Try: "b1b3"}); err != nil {
		t.Fatalf("runPosition() error = %v", err)
	}
	var res tryResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("bad JSON %q: %v", out.String(), err)
	}
	if res.Legal {
		t.Error("b1b3 should be illegal")
	}
	if len(h.Entries) == 0 {
		t.Error("expected a rule diagnostic for the rejected move")
	}

	out.Reset()
	quiet, qh := memoryLogger()
	cfg.Engine.Quiet = true
	if err := runPosition(cfg, quiet, positionRequest{Try: "b1b3"}); err != nil {
		t.Fatal(err)
	}
	if len(qh.Entries) != 0 {
		t.Errorf("quiet mode logged %d entries", len(qh.Entries))
	}
}

func TestRunPosition_Check(t *testing.T) {
	var out bytes.Buffer
	logger, _ := memoryLogger()

	req := positionRequest{FEN: "4k3/8/8/8/8/8/8/4K2r w - - 0 1", CheckOnly: true}
	if err := runPosition(testConfig(&out), logger, req); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "White in check: true" {
		t.Errorf("got %q", got)
	}
}

func TestRunPosition_Perft(t *testing.T) {
	var out bytes.Buffer
	logger, _ := memoryLogger()

	if err := runPosition(testConfig(&out), logger, positionRequest{PerftDepth: 2, Divide: true}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "g1f3: 20\n") {
		t.Errorf("divide missing g1f3 line:\n%s", got)
	}
	if !strings.HasSuffix(got, "perft(2) = 400\n") {
		t.Errorf("unexpected total:\n%s", got)
	}
}

func TestRunPosition_Errors(t *testing.T) {
	logger, _ := memoryLogger()
	tests := []struct {
		name string
		req  positionRequest
		want error
	}{
		{"bad fen", positionRequest{FEN: "xyz"}, errors.ErrInvalidFEN},
		{"illegal setup move", positionRequest{Moves: []string{"e2e5"}}, errors.ErrIllegalMove},
		{"empty source", positionRequest{Try: "e4e5"}, errors.ErrNoPiece},
		{"bad square", positionRequest{From: "j1"}, errors.ErrInvalidSquare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runPosition(testConfig(&out), logger, tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunPosition_SVG(t *testing.T) {
	var out bytes.Buffer
	logger, _ := memoryLogger()
	path := filepath.Join(t.TempDir(), "board.svg")

	if err := runPosition(testConfig(&out), logger, positionRequest{SVGFile: path}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("</svg>")) {
		t.Error("SVG file not written completely")
	}
}

func TestReadBatch(t *testing.T) {
	input := `# comment
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1

4k3/8/8/8/8/8/8/4K2r w - - 0 1 | e1d2 e8d8
`
	items, err := readBatch(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []worker.WorkItem{
		{FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Moves: []string{}, Index: 2},
		{FEN: "4k3/8/8/8/8/8/8/4K2r w - - 0 1", Moves: []string{"e1d2", "e8d8"}, Index: 4},
	}
	if len(items) != len(want) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i].FEN != want[i].FEN || items[i].Index != want[i].Index ||
			len(items[i].Moves) != len(want[i].Moves) {
			t.Errorf("items[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestAnalyseBatch(t *testing.T) {
	items := []worker.WorkItem{
		{FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Index: 1},
		{FEN: "bad", Index: 2},
		{FEN: "4k3/8/8/8/8/8/8/4K2r w - - 0 1", Index: 3},
	}

	var out bytes.Buffer
	logger, h := memoryLogger()
	if err := analyseBatch(context.Background(), testConfig(&out), logger, items); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasSuffix(lines[0], "check=false\tmoves=20") {
		t.Errorf("line 1 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2\terror:") {
		t.Errorf("line 2 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "check=true\tmoves=3") {
		t.Errorf("line 3 = %q", lines[2])
	}

	var sawSummary bool
	for _, e := range h.Entries {
		if e.Message == "batch complete" {
			sawSummary = true
			if e.Fields.Get("failed") != 1 {
				t.Errorf("failed = %v, want 1", e.Fields.Get("failed"))
			}
		}
	}
	if !sawSummary {
		t.Error("missing batch summary log entry")
	}
}

func TestAnalyseBatch_JSON(t *testing.T) {
	items := []worker.WorkItem{{FEN: "4k3/8/8/8/8/8/8/4K2r w - - 0 1", Index: 1}}

	var out bytes.Buffer
	cfg := testConfig(&out)
	cfg.Output.JSON = true
	cfg.Batch.PerftDepth = 2
	logger, _ := memoryLogger()
	if err := analyseBatch(context.Background(), cfg, logger, items); err != nil {
		t.Fatal(err)
	}

	var got []batchJSON
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out.String())
	}
	if len(got) != 1 || !got[0].InCheck || len(got[0].Legal) != 3 || got[0].Perft == 0 {
		t.Errorf("unexpected result: %+v", got)
	}
}
