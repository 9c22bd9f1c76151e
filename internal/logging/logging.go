// Package logging builds the structured logger used for rule diagnostics
// and by the command-line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Format selects how log entries are rendered.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatDiscard Format = "discard"
)

// Field names shared by all diagnostics.
const (
	FieldRule   = "rule"
	FieldMove   = "move"
	FieldPlayer = "player"
	FieldGame   = "game"
)

// Options configures New.
type Options struct {
	Writer io.Writer // defaults to os.Stderr
	Format Format    // defaults to text
	Level  string    // apex level name, defaults to "warn"
}

// New returns a logger for the given options.
func New(opts Options) (*log.Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := log.WarnLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, errors.ErrInvalidConfig)
		}
		level = l
	}

	var handler log.Handler
	switch opts.Format {
	case FormatText, "":
		handler = text.New(w)
	case FormatJSON:
		handler = json.New(w)
	case FormatDiscard:
		handler = discard.New()
	default:
		return nil, fmt.Errorf("log format %q: %w", opts.Format, errors.ErrInvalidConfig)
	}

	return &log.Logger{Handler: handler, Level: level}, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return &log.Logger{Handler: discard.New(), Level: log.FatalLevel}
}
