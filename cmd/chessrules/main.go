// chessrules checks chess move legality, lists legal moves and analyses
// batches of positions from the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Log.Options())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("chessrules failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to batch or single-position mode.
func run(cfg *config.Config, logger *log.Logger) error {
	if *batchFile != "" {
		return runBatch(cfg, logger, *batchFile)
	}
	return runPosition(cfg, logger, positionRequest{
		FEN:        *fenFlag,
		Moves:      splitMoves(*movesFlag),
		From:       *fromSquare,
		Try:        *tryMove,
		CheckOnly:  *checkOnly,
		PerftDepth: *perftDepth,
		Divide:     *divide,
		Print:      *printBoard,
		SVGFile:    *svgFile,
	})
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.Log.Writer = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.Output.Writer = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Checks move legality and lists legal moves for a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessrules -print\n")
	fmt.Fprintf(os.Stderr, "  chessrules -moves \"e2e4 e7e5\" -from g1\n")
	fmt.Fprintf(os.Stderr, "  chessrules -fen \"4k3/8/8/8/8/8/8/4K2r w - - 0 1\" -check\n")
	fmt.Fprintf(os.Stderr, "  chessrules -perft 3 -divide\n")
	fmt.Fprintf(os.Stderr, "  chessrules -batch positions.txt -j 8 -json\n")
}
