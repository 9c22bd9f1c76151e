// Package output renders boards and move lists as text diagrams, JSON and SVG.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Report bundles a position with what was computed about it.
type Report struct {
	Label   string
	FEN     string
	Board   *chess.Board
	Moves   []*chess.Move
	InCheck bool
}

// RenderText draws board as an 8x8 character diagram, rank 8 first, with
// file and rank labels.
func RenderText(w io.Writer, board *chess.Board) error {
	var sb strings.Builder
	for y := chess.BoardSize; y >= 1; y-- {
		fmt.Fprintf(&sb, "%d ", y)
		for x := 1; x <= chess.BoardSize; x++ {
			sb.WriteByte(board.PieceAt(chess.C(x, y)).Char())
			if x < chess.BoardSize {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// MoveList formats moves as space-separated UCI text.
func MoveList(moves []*chess.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.UCI()
	}
	return strings.Join(parts, " ")
}
