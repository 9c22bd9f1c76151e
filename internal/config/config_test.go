package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/logging"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Log.Format != logging.FormatText {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Engine.Quiet {
		t.Error("Engine.Quiet should be false by default")
	}
	if cfg.Engine.CacheSize != 4096 {
		t.Errorf("Engine.CacheSize = %d, want 4096", cfg.Engine.CacheSize)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Batch.Workers < 1 {
		t.Errorf("Batch.Workers = %d, want at least 1", cfg.Batch.Workers)
	}
	if cfg.Output.JSON {
		t.Error("Output.JSON should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"json log", func(c *Config) { c.Log.Format = logging.FormatJSON }, false},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"negative cache", func(c *Config) { c.Engine.CacheSize = -1 }, true},
		{"unlimited cache", func(c *Config) { c.Engine.CacheSize = 0 }, false},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"zero workers", func(c *Config) { c.Batch.Workers = 0 }, true},
		{"zero buffer", func(c *Config) { c.Batch.BufferSize = 0 }, true},
		{"negative perft", func(c *Config) { c.Batch.PerftDepth = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigBuilder(t *testing.T) {
	var out, logs bytes.Buffer
	cfg, err := NewConfigBuilder().
		WithLogWriter(&logs).
		WithLogFormat(logging.FormatJSON).
		WithLogLevel("info").
		WithQuiet(true).
		WithCacheSize(10).
		WithAddr("127.0.0.1:9000").
		WithWorkers(3).
		WithBufferSize(7).
		WithPerftDepth(2).
		WithOutput(&out).
		WithJSONOutput(true).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if cfg.Log.Writer != &logs || cfg.Output.Writer != &out {
		t.Error("writers not applied")
	}
	if cfg.Log.Format != logging.FormatJSON || cfg.Log.Level != "info" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if !cfg.Engine.Quiet || cfg.Engine.CacheSize != 10 {
		t.Errorf("Engine = %+v", cfg.Engine)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Batch.Workers != 3 || cfg.Batch.BufferSize != 7 || cfg.Batch.PerftDepth != 2 {
		t.Errorf("Batch = %+v", cfg.Batch)
	}
	if !cfg.Output.JSON {
		t.Error("Output.JSON not applied")
	}
}

func TestConfigBuilder_InvalidBuild(t *testing.T) {
	_, err := NewConfigBuilder().WithWorkers(0).Build()
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Build() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLogConfig_Options(t *testing.T) {
	var buf bytes.Buffer
	lc := &LogConfig{Writer: &buf, Format: logging.FormatText, Level: "info"}

	logger, err := logging.New(lc.Options())
	if err != nil {
		t.Fatalf("logging.New() error = %v", err)
	}
	logger.Info("hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Errorf("log output = %q, want it to contain hello", buf.String())
	}
}
