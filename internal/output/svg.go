package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SVGOptions controls board rendering.
type SVGOptions struct {
	SquareSize int           // pixels per square, default 45
	Highlight  []chess.Coord // squares to mark, e.g. legal targets
	Light      string        // light square fill
	Dark       string        // dark square fill
}

func (o SVGOptions) withDefaults() SVGOptions {
	if o.SquareSize <= 0 {
		o.SquareSize = 45
	}
	if o.Light == "" {
		o.Light = "#f0d9b5"
	}
	if o.Dark == "" {
		o.Dark = "#b58863"
	}
	return o
}

// unicodeGlyphs maps FEN letters to chess symbols.
var unicodeGlyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// RenderSVG draws board as an SVG image, white at the bottom.
func RenderSVG(w io.Writer, board *chess.Board, opts SVGOptions) {
	opts = opts.withDefaults()
	sq := opts.SquareSize
	size := sq * chess.BoardSize

	marked := make(map[chess.Coord]bool, len(opts.Highlight))
	for _, c := range opts.Highlight {
		marked[c] = true
	}

	canvas := svg.New(w)
	canvas.Start(size, size)
	for y := chess.BoardSize; y >= 1; y-- {
		for x := 1; x <= chess.BoardSize; x++ {
			px, py := (x-1)*sq, (chess.BoardSize-y)*sq
			fill := opts.Light
			if (x+y)%2 == 0 {
				fill = opts.Dark
			}
			canvas.Rect(px, py, sq, sq, "fill:"+fill)

			c := chess.C(x, y)
			if marked[c] {
				canvas.Circle(px+sq/2, py+sq/2, sq/6, "fill:#3a7d44;fill-opacity:0.6")
			}
			if p, ok := board.Lookup(c); ok {
				canvas.Text(px+sq/2, py+sq*3/4, unicodeGlyphs[p.Char()],
					fmt.Sprintf("text-anchor:middle;font-size:%dpx", sq*3/4))
			}
		}
	}
	canvas.End()
}
