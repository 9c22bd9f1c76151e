package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialBoard returns a board set up in the standard starting position.
func NewInitialBoard() *chess.Board {
	board, err := NewBoardFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return board
}

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	board := chess.NewBoard()
	if err := LoadFEN(board, fen); err != nil {
		return nil, err
	}
	return board, nil
}

// LoadFEN clears board and sets it up from a FEN string. Only the piece
// placement, side to move and castling fields are used. Moved flags are
// derived: pawns off their home rank have moved, and kings and rooks
// without a matching castling right have moved.
func LoadFEN(board *chess.Board, fen string) error {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board.Clear()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return err
	}
	return parseCastlingRights(board, parts)
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		y := chess.BoardSize - i
		x := 1
		for _, c := range row {
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.None {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if x > chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", y, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			p, err := board.CreatePiece(kind, colour, chess.C(x, y))
			if err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			if kind == chess.Pawn {
				p.Moved = y != pawnHomeRank(colour)
			}
			x++
		}
		if x != chess.BoardSize+1 {
			return fmt.Errorf("rank %d has %d files: %w", y, x-1, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.SetCurrentPlayer(chess.White)
	case "b":
		board.SetCurrentPlayer(chess.Black)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// castlingCorner maps a castling letter to its king and rook squares.
var castlingCorner = map[rune]struct {
	colour     chess.Colour
	king, rook chess.Coord
}{
	'K': {chess.White, chess.C(5, 1), chess.C(8, 1)},
	'Q': {chess.White, chess.C(5, 1), chess.C(1, 1)},
	'k': {chess.Black, chess.C(5, 8), chess.C(8, 8)},
	'q': {chess.Black, chess.C(5, 8), chess.C(1, 8)},
}

// parseCastlingRights marks kings and rooks as moved unless a castling
// right keeps them fresh. A missing field means every right is present.
func parseCastlingRights(board *chess.Board, parts []string) error {
	rights := "KQkq"
	if len(parts) >= 3 {
		rights = parts[2]
	}

	for _, p := range board.Pieces() {
		if p.Kind == chess.King || p.Kind == chess.Rook {
			p.Moved = true
		}
	}
	if rights == "-" {
		return nil
	}

	for _, r := range rights {
		corner, ok := castlingCorner[r]
		if !ok {
			return fmt.Errorf("invalid castling right: %c: %w", r, errors.ErrInvalidFEN)
		}
		king, kok := board.Lookup(corner.king)
		rook, rok := board.Lookup(corner.rook)
		if !kok || !rok || king.Kind != chess.King || rook.Kind != chess.Rook ||
			king.Colour != corner.colour || rook.Colour != corner.colour {
			continue
		}
		king.Moved = false
		rook.Moved = false
	}
	return nil
}

func pawnHomeRank(colour chess.Colour) int {
	if colour == chess.Black {
		return 7
	}
	return 2
}

// BoardToFEN renders board as a FEN string. Castling rights are derived
// from moved flags; en passant and clocks are not tracked.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	for y := chess.BoardSize; y >= 1; y-- {
		empty := 0
		for x := 1; x <= chess.BoardSize; x++ {
			p, ok := board.Lookup(chess.C(x, y))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if y > 1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if board.CurrentPlayer() == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}

	sb.WriteByte(' ')
	sb.WriteString(castlingRights(board))
	fmt.Fprintf(&sb, " - 0 %d", 1+board.Ply()/2)
	return sb.String()
}

func castlingRights(board *chess.Board) string {
	var rights []byte
	for _, r := range []rune{'K', 'Q', 'k', 'q'} {
		corner := castlingCorner[r]
		king, kok := board.Lookup(corner.king)
		rook, rok := board.Lookup(corner.rook)
		if kok && rok && king.Kind == chess.King && rook.Kind == chess.Rook &&
			king.Colour == corner.colour && rook.Colour == corner.colour &&
			!king.Moved && !rook.Moved {
			rights = append(rights, byte(r))
		}
	}
	if len(rights) == 0 {
		return "-"
	}
	return string(rights)
}
