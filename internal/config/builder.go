package config

import "io"

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

// WithBreadth sets how many first moves and replies the search explores.
func (b *ConfigBuilder) WithBreadth(gen1, gen2 int) *ConfigBuilder {
	b.cfg.Search.Gen1 = gen1
	b.cfg.Search.Gen2 = gen2
	return b
}

// WithWorkers sets the number of search goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithPolicy sets the leaf selection policy.
func (b *ConfigBuilder) WithPolicy(p Policy) *ConfigBuilder {
	b.cfg.Search.Policy = p
	return b
}

// WithBackupDivisor sets the backup bonus divisor.
func (b *ConfigBuilder) WithBackupDivisor(d float64) *ConfigBuilder {
	b.cfg.Eval.BackupDivisor = d
	return b
}

// WithKingValue sets the king's material value.
func (b *ConfigBuilder) WithKingValue(v float64) *ConfigBuilder {
	b.cfg.Eval.KingValue = v
	return b
}

// WithRecord enables leaf-table recording.
func (b *ConfigBuilder) WithRecord(path string, format RecordFormat) *ConfigBuilder {
	b.cfg.Record.Path = path
	b.cfg.Record.Format = format
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string, console bool) *ConfigBuilder {
	b.cfg.Log.Level = level
	b.cfg.Log.Console = console
	return b
}

// WithSeed selects a random starting position.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Seed = seed
	return b
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithEngineSide sets the colour the engine plays.
func (b *ConfigBuilder) WithEngineSide(side string) *ConfigBuilder {
	b.cfg.EngineSide = side
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
