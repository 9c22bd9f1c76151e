package config

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/logging"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithLogWriter sets where diagnostics go.
func (b *ConfigBuilder) WithLogWriter(w io.Writer) *ConfigBuilder {
	b.cfg.Log.Writer = w
	return b
}

// WithLogFormat sets the diagnostics format.
func (b *ConfigBuilder) WithLogFormat(format logging.Format) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithLogLevel sets the minimum diagnostics level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithQuiet suppresses validator diagnostics.
func (b *ConfigBuilder) WithQuiet(quiet bool) *ConfigBuilder {
	b.cfg.Engine.Quiet = quiet
	return b
}

// WithCacheSize bounds the legal-move cache.
func (b *ConfigBuilder) WithCacheSize(n int) *ConfigBuilder {
	b.cfg.Engine.CacheSize = n
	return b
}

// WithAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithBufferSize sets the batch channel buffer size.
func (b *ConfigBuilder) WithBufferSize(n int) *ConfigBuilder {
	b.cfg.Batch.BufferSize = n
	return b
}

// WithPerftDepth makes batch analysis count nodes to depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Batch.PerftDepth = depth
	return b
}

// WithOutput sets the result writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}
