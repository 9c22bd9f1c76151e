package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/apex/log"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// positionRequest describes what to do with a single position.
type positionRequest struct {
	FEN        string
	Moves      []string
	From       string
	Try        string
	CheckOnly  bool
	PerftDepth int
	Divide     bool
	Print      bool
	SVGFile    string
}

// tryResult is the JSON form of a -move query.
type tryResult struct {
	Move     string `json:"move"`
	Legal    bool   `json:"legal"`
	Castling bool   `json:"castling,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// perftResult is the JSON form of a -perft query.
type perftResult struct {
	FEN    string            `json:"fen"`
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`
}

// runPosition sets up one board, plays req.Moves and answers the query.
func runPosition(cfg *config.Config, logger log.Interface, req positionRequest) error {
	fen := req.FEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}

	if cfg.Engine.Quiet {
		logger = logging.Discard()
	}
	v := engine.NewValidator(logger)

	for i, text := range req.Moves {
		if _, err := v.ApplyUCI(board, text); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, text, err)
		}
	}

	w := cfg.Output.Writer
	if req.Print && !cfg.Output.JSON {
		if err := output.RenderText(w, board); err != nil {
			return err
		}
	}
	if req.SVGFile != "" {
		if err := writeSVG(req.SVGFile, board); err != nil {
			return err
		}
	}

	switch {
	case req.Try != "":
		return reportTry(w, cfg.Output.JSON, v, board, req.Try)
	case req.CheckOnly:
		return reportCheck(w, cfg.Output.JSON, v, board)
	case req.PerftDepth > 0:
		return reportPerft(w, cfg.Output.JSON, v, board, req.PerftDepth, req.Divide)
	}
	return reportMoves(w, cfg.Output.JSON, v, board, req.From)
}

func writeSVG(path string, board *chess.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	output.RenderSVG(f, board, output.SVGOptions{})
	return f.Close()
}

// reportTry resolves a single move without playing it.
func reportTry(w io.Writer, asJSON bool, v *engine.Validator, board *chess.Board, text string) error {
	m, err := engine.ParseUCI(board.CurrentPlayer(), text)
	if err != nil {
		return err
	}
	legal, err := v.Resolve(board, m)
	if err != nil {
		return err
	}

	res := tryResult{Move: text, Legal: legal, Castling: m.Flags.Castling}
	if legal && m.Moved.Colour != board.CurrentPlayer() {
		res.Legal = false
		res.Reason = fmt.Sprintf("%s to move", board.CurrentPlayer())
	}

	if asJSON {
		return output.WriteJSON(w, res)
	}
	verdict := "illegal"
	if res.Legal {
		verdict = "legal"
	}
	if res.Reason != "" {
		verdict += " (" + res.Reason + ")"
	}
	_, err = fmt.Fprintf(w, "%s: %s\n", m, verdict)
	return err
}

func reportCheck(w io.Writer, asJSON bool, v *engine.Validator, board *chess.Board) error {
	inCheck, err := v.IsInCheck(board, board.CurrentPlayer())
	if err != nil {
		return err
	}
	if asJSON {
		return output.WriteJSON(w, map[string]bool{"inCheck": inCheck})
	}
	_, err = fmt.Fprintf(w, "%s in check: %t\n", board.CurrentPlayer(), inCheck)
	return err
}

func reportPerft(w io.Writer, asJSON bool, v *engine.Validator, board *chess.Board, depth int, divide bool) error {
	res := perftResult{FEN: engine.BoardToFEN(board), Depth: depth}
	if divide {
		div, err := v.Divide(board, depth)
		if err != nil {
			return err
		}
		res.Divide = div
		for _, n := range div {
			res.Nodes += n
		}
	} else {
		nodes, err := v.Perft(board, depth)
		if err != nil {
			return err
		}
		res.Nodes = nodes
	}

	if asJSON {
		return output.WriteJSON(w, res)
	}
	keys := maps.Keys(res.Divide)
	slices.Sort(keys)
	for _, move := range keys {
		fmt.Fprintf(w, "%s: %d\n", move, res.Divide[move])
	}
	_, err := fmt.Fprintf(w, "perft(%d) = %d\n", depth, res.Nodes)
	return err
}

// reportMoves lists legal moves for the side to move, or for the piece on
// from when it is set.
func reportMoves(w io.Writer, asJSON bool, v *engine.Validator, board *chess.Board, from string) error {
	inCheck, err := v.IsInCheck(board, board.CurrentPlayer())
	if err != nil {
		return err
	}

	var moves []*chess.Move
	if from != "" {
		sq, err := chess.ParseSquare(from)
		if err != nil {
			return err
		}
		if p, ok := board.Lookup(sq); ok && p.Colour == board.CurrentPlayer() {
			if moves, err = v.LegalMoves(board, p); err != nil {
				return err
			}
		}
	} else if moves, err = v.LegalMovesFor(board, board.CurrentPlayer()); err != nil {
		return err
	}

	report := &output.Report{
		FEN:     engine.BoardToFEN(board),
		Board:   board,
		Moves:   moves,
		InCheck: inCheck,
	}
	if asJSON {
		return output.WriteJSON(w, output.ReportToJSON(report))
	}

	fmt.Fprintf(w, "fen: %s\n", report.FEN)
	fmt.Fprintf(w, "to move: %s\n", board.CurrentPlayer())
	fmt.Fprintf(w, "in check: %t\n", inCheck)
	_, err = fmt.Fprintf(w, "legal moves (%d): %s\n", len(moves), output.MoveList(moves))
	return err
}
