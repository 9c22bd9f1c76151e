// Package config holds the settings shared by the chessrules commands.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/logging"
)

// LogConfig controls the diagnostics sink.
type LogConfig struct {
	Writer io.Writer
	Format logging.Format
	Level  string // debug, info, warn, error, fatal
}

// NewLogConfig creates a LogConfig writing warnings and above as text to stderr.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Writer: os.Stderr,
		Format: logging.FormatText,
		Level:  "warn",
	}
}

// Validate checks the format name. Level names are checked by logging.New.
func (c *LogConfig) Validate() error {
	switch c.Format {
	case logging.FormatText, logging.FormatJSON, logging.FormatDiscard:
		return nil
	}
	return fmt.Errorf("log format %q: %w", c.Format, errors.ErrInvalidConfig)
}

// Options converts the config for logging.New.
func (c *LogConfig) Options() logging.Options {
	return logging.Options{Writer: c.Writer, Format: c.Format, Level: c.Level}
}

// EngineConfig controls move validation.
type EngineConfig struct {
	// Quiet suppresses per-rule diagnostics from the validator.
	Quiet bool

	// CacheSize bounds the legal-move cache; 0 means unlimited.
	CacheSize int
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{CacheSize: 4096}
}

// Validate checks the engine settings.
func (c *EngineConfig) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size %d: %w", c.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}

// ServerConfig controls the HTTP host.
type ServerConfig struct {
	Addr string
}

// NewServerConfig creates a ServerConfig listening on :8080.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{Addr: ":8080"}
}

// Validate checks the server settings.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// BatchConfig controls parallel analysis of position files.
type BatchConfig struct {
	Workers    int
	BufferSize int
	PerftDepth int
}

// NewBatchConfig creates a BatchConfig with one worker per CPU.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
	}
}

// Validate checks the batch settings.
func (c *BatchConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer size %d: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if c.PerftDepth < 0 {
		return fmt.Errorf("perft depth %d: %w", c.PerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Writer io.Writer
	JSON   bool
}

// NewOutputConfig creates an OutputConfig printing text to stdout.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{Writer: os.Stdout}
}

// Config holds all program configuration.
type Config struct {
	Log    *LogConfig
	Engine *EngineConfig
	Server *ServerConfig
	Batch  *BatchConfig
	Output *OutputConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log:    NewLogConfig(),
		Engine: NewEngineConfig(),
		Server: NewServerConfig(),
		Batch:  NewBatchConfig(),
		Output: NewOutputConfig(),
	}
}

// Validate checks every group and returns the first problem found.
func (c *Config) Validate() error {
	for _, v := range []interface{ Validate() error }{c.Log, c.Engine, c.Server, c.Batch} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
