package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

const (
	numKinds   = 7 // chess.None..chess.King
	numColours = 3 // chess.NoColour..chess.Black
	numSquares = chess.BoardSize * chess.BoardSize
)

var (
	pieceKeys [numKinds][numColours][numSquares]uint64
	movedKeys [numKinds][numColours][numSquares]uint64
	blackKey  uint64
)

func init() {
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for k := 0; k < numKinds; k++ {
		for c := 0; c < numColours; c++ {
			for sq := 0; sq < numSquares; sq++ {
				pieceKeys[k][c][sq] = next()
				movedKeys[k][c][sq] = next()
			}
		}
	}
	blackKey = next()
}

// squareIndex maps a1..h8 to 0..63.
func squareIndex(c chess.Coord) int {
	return (c.Y-1)*chess.BoardSize + (c.X - 1)
}

// GenerateZobristHash hashes the pieces, their moved flags and the side to
// move. Two boards with the same hash have the same legal moves (barring
// collisions), since moved flags decide castling and pawn double steps.
func GenerateZobristHash(board *chess.Board) uint64 {
	var h uint64
	for _, p := range board.Pieces() {
		if !chess.BoardExtent.Contains(p.Position) {
			continue
		}
		sq := squareIndex(p.Position)
		h ^= pieceKeys[p.Kind][p.Colour][sq]
		if p.Moved && tracksMoved(p.Kind) {
			h ^= movedKeys[p.Kind][p.Colour][sq]
		}
	}
	if board.CurrentPlayer() == chess.Black {
		h ^= blackKey
	}
	return h
}

// tracksMoved reports whether the moved flag of a kind affects legality.
func tracksMoved(k chess.Kind) bool {
	return k == chess.Pawn || k == chess.King || k == chess.Rook
}
