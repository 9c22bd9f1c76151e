package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf positions reachable in depth plies from board,
// with the player to move starting. The board is restored before return.
func (v *Validator) Perft(board *chess.Board, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves, err := v.LegalMovesFor(board, board.CurrentPlayer())
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, m := range moves {
		if err := board.MakeMove(m); err != nil {
			return 0, err
		}
		n, err := v.Perft(board, depth-1)
		if _, uerr := board.UndoMove(); uerr != nil {
			return 0, uerr
		}
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the perft count below each root move, keyed by UCI text.
func (v *Validator) Divide(board *chess.Board, depth int) (map[string]uint64, error) {
	moves, err := v.LegalMovesFor(board, board.CurrentPlayer())
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64, len(moves))
	for _, m := range moves {
		if err := board.MakeMove(m); err != nil {
			return nil, err
		}
		n, err := v.Perft(board, depth-1)
		if _, uerr := board.UndoMove(); uerr != nil {
			return nil, uerr
		}
		if err != nil {
			return nil, err
		}
		out[m.UCI()] += n
	}
	return out, nil
}
