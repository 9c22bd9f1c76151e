// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/logging"
)

var (
	// Position
	fenFlag   = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	movesFlag = flag.String("moves", "", "Space-separated UCI moves to play first, e.g. \"e2e4 e7e5\"")

	// Queries
	fromSquare = flag.String("from", "", "List only the legal moves of the piece on this square")
	tryMove    = flag.String("move", "", "Report whether this UCI move is legal")
	checkOnly  = flag.Bool("check", false, "Report only whether the side to move is in check")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth")
	divide     = flag.Bool("divide", false, "With -perft, break the count down by first move")

	// Output
	printBoard = flag.Bool("print", false, "Print a board diagram")
	svgFile    = flag.String("svg", "", "Write an SVG diagram to this file")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Batch
	batchFile  = flag.String("batch", "", "Analyse every FEN in this file (one per line, '-' for stdin)")
	workers    = flag.Int("j", 0, "Batch worker goroutines (default: number of CPUs)")
	bufferSize = flag.Int("buffer", 0, "Batch channel buffer size")

	// Diagnostics
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	logLevel  = flag.String("loglevel", "warn", "Diagnostics level: debug, info, warn, error")
	logFormat = flag.String("logformat", "text", "Diagnostics format: text, json, discard")
	quiet     = flag.Bool("quiet", false, "Suppress rule diagnostics")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyLogFlags(cfg)
	applyBatchFlags(cfg)

	cfg.Engine.Quiet = *quiet
	cfg.Output.JSON = *jsonOutput
}

// applyLogFlags configures the diagnostics sink.
func applyLogFlags(cfg *config.Config) {
	cfg.Log.Level = strings.ToLower(*logLevel)
	cfg.Log.Format = logging.Format(strings.ToLower(*logFormat))
}

// applyBatchFlags configures the batch worker pool.
func applyBatchFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if *bufferSize > 0 {
		cfg.Batch.BufferSize = *bufferSize
	}
	cfg.Batch.PerftDepth = *perftDepth
}

// splitMoves splits a -moves argument on spaces and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}
