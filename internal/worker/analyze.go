package worker

import (
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Analyzer turns a WorkItem into its legal move list and check status.
type Analyzer struct {
	Validator  *engine.Validator
	Cache      *hashing.ThreadSafeMoveCache // optional
	PerftDepth int                          // 0 skips the node count
}

// Process implements ProcessFunc.
func (a *Analyzer) Process(item WorkItem) ProcessResult {
	res := ProcessResult{Index: item.Index}

	board, err := engine.NewBoardFromFEN(item.FEN)
	if err != nil {
		res.Err = err
		return res
	}
	for _, text := range item.Moves {
		if _, err := a.Validator.ApplyUCI(board, text); err != nil {
			res.Err = err
			return res
		}
	}
	res.FEN = engine.BoardToFEN(board)

	mover := board.CurrentPlayer()
	if res.InCheck, err = a.Validator.IsInCheck(board, mover); err != nil {
		res.Err = err
		return res
	}

	if a.Cache != nil {
		if legal, ok := a.Cache.Lookup(board); ok {
			res.Legal = legal
		}
	}
	if res.Legal == nil {
		moves, err := a.Validator.LegalMovesFor(board, mover)
		if err != nil {
			res.Err = err
			return res
		}
		res.Legal = make([]string, len(moves))
		for i, m := range moves {
			res.Legal[i] = m.UCI()
		}
		if a.Cache != nil {
			a.Cache.Store(board, res.Legal)
		}
	}

	if a.PerftDepth > 0 {
		if res.Perft, err = a.Validator.Perft(board, a.PerftDepth); err != nil {
			res.Err = err
		}
	}
	return res
}
