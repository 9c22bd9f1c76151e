package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Coord is a square or an offset between squares. Files and ranks are
// numbered 1-8, so a1 is {1, 1} and h8 is {8, 8}.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{x, y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// Neg returns -c.
func (c Coord) Neg() Coord { return Coord{-c.X, -c.Y} }

// Mul scales both components by k.
func (c Coord) Mul(k int) Coord { return Coord{c.X * k, c.Y * k} }

// Div divides both components by k, truncating toward zero.
func (c Coord) Div(k int) Coord { return Coord{c.X / k, c.Y / k} }

// Abs returns the component-wise absolute value.
func (c Coord) Abs() Coord { return Coord{abs(c.X), abs(c.Y)} }

// Sign returns the component-wise sign, each component in {-1, 0, 1}.
func (c Coord) Sign() Coord { return Coord{sign(c.X), sign(c.Y)} }

// Max returns the larger component magnitude (the king distance of an offset).
func (c Coord) Max() int {
	a := c.Abs()
	if a.X > a.Y {
		return a.X
	}
	return a.Y
}

// IsZero reports whether c is the zero offset.
func (c Coord) IsZero() bool { return c.X == 0 && c.Y == 0 }

// Float returns the components as floats.
func (c Coord) Float() (float64, float64) { return float64(c.X), float64(c.Y) }

// String renders squares on the board in algebraic form (e4) and anything
// else as a raw pair.
func (c Coord) String() string {
	if BoardExtent.Contains(c) {
		return string([]byte{byte('a' + c.X - 1), byte('0' + c.Y)})
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Coord, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Coord{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Coord{int(s[0]-'a') + 1, int(s[1]-'0')}, nil
}

// MustSquare is like ParseSquare but panics on bad input.
// Intended for tests and fixed tables.
func MustSquare(s string) Coord {
	c, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Rect is an inclusive rectangle of squares.
type Rect struct {
	Min, Max Coord
}

// BoardExtent covers a1-h8.
var BoardExtent = Rect{Min: Coord{1, 1}, Max: Coord{BoardSize, BoardSize}}

// Unbounded accepts any target; off-board moves are left to the validator.
var Unbounded = Rect{Min: Coord{-999, -999}, Max: Coord{999, 999}}

// Square returns the rectangle holding the single square c.
func Square(c Coord) Rect {
	return Rect{Min: c, Max: c}
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

// Span returns the longest distance a piece can travel inside r.
func (r Rect) Span() int {
	return r.Max.Sub(r.Min).Max()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
