package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// batchJSON is one line of batch output in JSON form.
type batchJSON struct {
	Index   int      `json:"index"`
	FEN     string   `json:"fen,omitempty"`
	InCheck bool     `json:"inCheck"`
	Legal   []string `json:"legal"`
	Perft   uint64   `json:"perft,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// readBatch parses one position per line: a FEN, optionally followed by
// "|" and UCI moves to play from it. Blank lines and lines starting with
// '#' are skipped. Index is the 1-based line number.
func readBatch(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		item := worker.WorkItem{Index: line}
		fen, moves, _ := strings.Cut(text, "|")
		item.FEN = strings.TrimSpace(fen)
		item.Moves = splitMoves(moves)
		items = append(items, item)
	}
	return items, scanner.Err()
}

// runBatch analyses every position in path on the worker pool.
func runBatch(cfg *config.Config, logger log.Interface, path string) error {
	in := io.Reader(os.Stdin)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	items, err := readBatch(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return analyseBatch(ctx, cfg, logger, items)
}

func analyseBatch(ctx context.Context, cfg *config.Config, logger log.Interface, items []worker.WorkItem) error {
	vlog := logger
	if cfg.Engine.Quiet {
		vlog = logging.Discard()
	}
	cache := hashing.NewThreadSafeMoveCache(cfg.Engine.CacheSize)
	analyzer := &worker.Analyzer{
		Validator:  engine.NewValidator(vlog),
		Cache:      cache,
		PerftDepth: cfg.Batch.PerftDepth,
	}

	results, err := worker.Run(ctx, items, analyzer.Process,
		worker.WithWorkers(cfg.Batch.Workers),
		worker.WithBufferSize(cfg.Batch.BufferSize))

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.WithFields(log.Fields{"line": r.Index}).WithError(r.Err).Warn("position rejected")
		}
	}
	hits, misses := cache.Stats()
	logger.WithFields(log.Fields{
		"positions":    len(results),
		"failed":       failed,
		"cache_hits":   hits,
		"cache_misses": misses,
	}).Info("batch complete")

	if werr := writeBatch(cfg.Output.Writer, cfg.Output.JSON, results); werr != nil {
		return werr
	}
	return err
}

func writeBatch(w io.Writer, asJSON bool, results []worker.ProcessResult) error {
	if asJSON {
		out := make([]batchJSON, len(results))
		for i, r := range results {
			out[i] = batchJSON{Index: r.Index, FEN: r.FEN, InCheck: r.InCheck, Legal: r.Legal, Perft: r.Perft}
			if r.Err != nil {
				out[i].Error = r.Err.Error()
			}
		}
		return output.WriteJSON(w, out)
	}

	for _, r := range results {
		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "%d\terror: %v\n", r.Index, r.Err); err != nil {
				return err
			}
			continue
		}
		line := fmt.Sprintf("%d\t%s\tcheck=%t\tmoves=%d", r.Index, r.FEN, r.InCheck, len(r.Legal))
		if r.Perft > 0 {
			line += fmt.Sprintf("\tperft=%d", r.Perft)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
