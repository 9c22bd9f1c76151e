// Package engine decides move legality: it resolves moves against a board,
// generates legal moves lazily, detects check and applies validated moves.
package engine

import (
	"fmt"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/logging"
)

// Validator resolves moves to a legal or illegal verdict. It holds no board
// state; the only thing it keeps is where to send diagnostics.
type Validator struct {
	log log.Interface
}

// NewValidator returns a validator that reports rule failures to logger.
// A nil logger discards diagnostics.
func NewValidator(logger log.Interface) *Validator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Validator{log: logger}
}

// resolveOpts tunes a single resolution.
type resolveOpts struct {
	quiet bool // suppress diagnostics
	// attackOnly skips the self-check simulation. A piece pinned to its own
	// king still gives check, so attack probes must not require it.
	attackOnly bool
}

// Resolve fills in m.Moved, m.Captured and m.Flags from b and reports whether
// m is legal. Rule failures are a false verdict with a nil error; an error
// means the move has no piece at its source or the board is corrupt.
// The board is left exactly as it was found.
func (v *Validator) Resolve(b *chess.Board, m *chess.Move) (bool, error) {
	return v.resolve(b, m, resolveOpts{})
}

// ResolveQuiet is Resolve without diagnostics.
func (v *Validator) ResolveQuiet(b *chess.Board, m *chess.Move) (bool, error) {
	return v.resolve(b, m, resolveOpts{quiet: true})
}

func (v *Validator) resolve(b *chess.Board, m *chess.Move, opts resolveOpts) (bool, error) {
	m.Flags = chess.MoveFlags{}
	m.Moved = b.PieceAt(m.Source)
	m.Captured = b.PieceAt(m.Target)

	if b.IsNone(m.Moved) {
		if !opts.quiet {
			v.entry(RulePieceExists, m).Error("no piece at source")
		}
		return false, fmt.Errorf("move from %s: %w", m.Source, errors.ErrNoPiece)
	}

	for _, rc := range ruleChecks {
		if rc.check(b, m) {
			if rc.rule == RuleCastling && m.Flags.Castling && !opts.quiet {
				v.entry(RuleCastling, m).Info("castling")
			}
			continue
		}
		if !opts.quiet {
			v.entry(rc.rule, m).Warn("move rejected")
		}
		return false, nil
	}

	if !opts.attackOnly {
		safe, err := leavesKingSafe(b, m)
		if err != nil {
			return false, err
		}
		if !safe {
			if !opts.quiet {
				v.entry(RuleSelfCheck, m).Warn("move rejected")
			}
			return false, nil
		}
	}

	m.Flags.Legal = true
	return true, nil
}

func (v *Validator) entry(rule Rule, m *chess.Move) *log.Entry {
	return v.log.WithFields(log.Fields{
		logging.FieldRule:   string(rule),
		logging.FieldMove:   m.String(),
		logging.FieldPlayer: m.Colour.String(),
	})
}

// leavesKingSafe applies m to b without validation, checks whether any
// king of the mover's colour is attacked, and undoes the move on every path
// out of the function.
func leavesKingSafe(b *chess.Board, m *chess.Move) (safe bool, err error) {
	colour := m.Moved.Colour
	sim := *m
	if err := b.MakeMove(&sim); err != nil {
		return false, err
	}
	defer func() {
		if _, uerr := b.UndoMove(); uerr != nil && err == nil {
			safe, err = false, uerr
		}
	}()

	for _, king := range b.FindPieces(chess.King, colour) {
		if isSquareAttacked(b, king.Position, colour.Opposite()) {
			return false, nil
		}
	}
	return true, nil
}
