// Package errors provides sentinel errors and error types for chessrules.
// Rule rejections are never errors; only contract violations and corrupted
// state cross package boundaries as errors, and they can be inspected with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoPiece indicates a move whose source square is empty.
	ErrNoPiece = errors.New("no piece at source")

	// ErrIllegalMove indicates a validated apply rejected by the rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPlayer indicates the player to move is neither side.
	ErrInvalidPlayer = errors.New("invalid player state")

	// ErrEmptyHistory indicates an undo with no applied move.
	ErrEmptyHistory = errors.New("empty move history")

	// ErrKingNotFound indicates a colour has no king on the board.
	ErrKingNotFound = errors.New("king not found")

	// ErrMultipleKings indicates a colour has more than one king.
	ErrMultipleKings = errors.New("multiple kings")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square outside a1-h8 or bad notation.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPiece indicates a piece with no kind or colour.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrSquareOccupied indicates a piece added on top of another.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")
)

// IsContractViolation reports whether err signals caller misuse rather than
// a rules outcome.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrNoPiece) ||
		errors.Is(err, ErrKingNotFound) ||
		errors.Is(err, ErrMultipleKings)
}

// MoveError wraps errors with move context: the ply at which the move was
// attempted and its description. It supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // Ply the move would have been (1-based, 0 if unknown)
	MoveText string // The move that caused the error (if applicable)
	Player   string // Colour to move when the error occurred
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Player != "" {
		parts = append(parts, e.Player+" to move")
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is re-exports the standard library errors.Is so callers importing this
// package under the name errors keep access to it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As re-exports the standard library errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New re-exports the standard library errors.New.
func New(text string) error {
	return errors.New(text)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
