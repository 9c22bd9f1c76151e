// Package chess provides the board model: coordinates, pieces, moves and
// the board itself with its unchecked apply/undo primitives.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// Valid reports whether c is one of the two playing colours.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// Forward returns the rank direction pawns of this colour advance in.
func (c Colour) Forward() int {
	if c == Black {
		return -1
	}
	return 1
}

// HomeRank returns the back rank for the colour.
func (c Colour) HomeRank() int {
	if c == Black {
		return 8
	}
	return 1
}

// Kind represents a chess piece type.
type Kind int

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	}
	return None
}

// Sliding reports whether pieces of this kind move along open rays.
func (k Kind) Sliding() bool {
	return k == Bishop || k == Rook || k == Queen
}
