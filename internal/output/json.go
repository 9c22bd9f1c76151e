package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// JSONBoard represents a position in JSON format.
type JSONBoard struct {
	Label    string      `json:"label,omitempty"`
	FEN      string      `json:"fen,omitempty"`
	ToMove   string      `json:"toMove"`
	InCheck  bool        `json:"inCheck"`
	Pieces   []JSONPiece `json:"pieces"`
	Captured []JSONPiece `json:"captured,omitempty"`
	Moves    []JSONMove  `json:"moves,omitempty"`
}

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	Kind   string `json:"kind"`
	Color  string `json:"color"` // "white" or "black"
	Square string `json:"square"`
	Moved  bool   `json:"moved,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Color    string `json:"color"`
	UCI      string `json:"uci"`
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece,omitempty"`
	Captured string `json:"captured,omitempty"`
	Castling bool   `json:"castling,omitempty"`
}

// PieceToJSON converts a piece.
func PieceToJSON(p *chess.Piece) JSONPiece {
	return JSONPiece{
		Kind:   strings.ToLower(p.Kind.String()),
		Color:  strings.ToLower(p.Colour.String()),
		Square: p.Position.String(),
		Moved:  p.Moved,
	}
}

// MoveToJSON converts a resolved move.
func MoveToJSON(m *chess.Move) JSONMove {
	jm := JSONMove{
		Color:    strings.ToLower(m.Colour.String()),
		UCI:      m.UCI(),
		From:     m.Source.String(),
		To:       m.Target.String(),
		Castling: m.Flags.Castling,
	}
	if m.Moved != nil && m.Moved.Kind != chess.None {
		jm.Piece = strings.ToLower(m.Moved.Kind.String())
	}
	if m.IsCapture() {
		jm.Captured = strings.ToLower(m.Captured.Kind.String())
	}
	return jm
}

// MovesToJSON converts a move list.
func MovesToJSON(moves []*chess.Move) []JSONMove {
	out := make([]JSONMove, len(moves))
	for i, m := range moves {
		out[i] = MoveToJSON(m)
	}
	return out
}

// ReportToJSON converts a report.
func ReportToJSON(r *Report) *JSONBoard {
	jb := &JSONBoard{
		Label:   r.Label,
		FEN:     r.FEN,
		InCheck: r.InCheck,
		Moves:   MovesToJSON(r.Moves),
	}
	if r.Board != nil {
		jb.ToMove = strings.ToLower(r.Board.CurrentPlayer().String())
		for _, p := range r.Board.Pieces() {
			jb.Pieces = append(jb.Pieces, PieceToJSON(p))
		}
		for _, p := range r.Board.Captured() {
			jb.Captured = append(jb.Captured, PieceToJSON(p))
		}
	}
	return jb
}

// WriteJSON encodes v with two-space indentation.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
