package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// MaxMisses is how many consecutive out-of-bounds offsets a generator
// tolerates before it stops drawing offsets.
const MaxMisses = 100

// castlingProbes are tried for kings after their ordinary offsets.
var castlingProbes = []chess.Coord{{X: 2, Y: 0}, {X: -2, Y: 0}}

// MoveGenerator lazily yields the legal moves of one piece whose targets
// fall inside a rectangle. Use it like bufio.Scanner:
//
//	gen := v.Generate(board, piece, chess.BoardExtent)
//	for gen.Next() {
//		m := gen.Move()
//	}
//	if err := gen.Err(); err != nil { ... }
//
// The board must not be modified while a generator over it is in use.
type MoveGenerator struct {
	v       *Validator
	board   *chess.Board
	piece   *chess.Piece
	bounds  chess.Rect
	opts    resolveOpts
	offsets *chess.OffsetSeq
	probes  []chess.Coord
	misses  int
	current *chess.Move
	err     error
}

// Generate returns a generator over piece's legal moves inside bounds.
// Candidates are resolved without diagnostics.
func (v *Validator) Generate(board *chess.Board, piece *chess.Piece, bounds chess.Rect) *MoveGenerator {
	return v.generate(board, piece, bounds, resolveOpts{quiet: true})
}

func (v *Validator) generate(board *chess.Board, piece *chess.Piece, bounds chess.Rect, opts resolveOpts) *MoveGenerator {
	g := &MoveGenerator{
		v:       v,
		board:   board,
		piece:   piece,
		bounds:  bounds,
		opts:    opts,
		offsets: piece.Offsets(chess.BoardExtent),
	}
	if piece.Kind == chess.King {
		g.probes = castlingProbes
	}
	return g
}

// Next advances to the next legal move. It returns false when the piece is
// exhausted or an error occurred.
func (g *MoveGenerator) Next() bool {
	g.current = nil
	if g.err != nil {
		return false
	}

	for g.offsets != nil {
		off, ok := g.offsets.Next()
		if !ok {
			g.offsets = nil
			break
		}
		target := g.piece.Position.Add(off)
		if !g.bounds.Contains(target) {
			g.misses++
			if g.misses >= MaxMisses {
				g.offsets = nil
			}
			continue
		}
		g.misses = 0
		if g.try(target) {
			return true
		}
		if g.err != nil {
			return false
		}
	}

	for len(g.probes) > 0 {
		target := g.piece.Position.Add(g.probes[0])
		g.probes = g.probes[1:]
		if !g.bounds.Contains(target) {
			continue
		}
		if g.try(target) {
			return true
		}
		if g.err != nil {
			return false
		}
	}
	return false
}

// try resolves one candidate and keeps it if legal.
func (g *MoveGenerator) try(target chess.Coord) bool {
	m := chess.NewMove(g.piece.Colour, g.piece.Position, target)
	legal, err := g.v.resolve(g.board, m, g.opts)
	if err != nil {
		g.err = err
		return false
	}
	if legal {
		g.current = m
	}
	return legal
}

// Move returns the move produced by the last successful Next.
func (g *MoveGenerator) Move() *chess.Move {
	return g.current
}

// Err returns the first error met while resolving candidates.
func (g *MoveGenerator) Err() error {
	return g.err
}

// Misses returns the current run of consecutive out-of-bounds offsets.
func (g *MoveGenerator) Misses() int {
	return g.misses
}
