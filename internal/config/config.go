// Package config provides configuration for the chessjerk engine and CLI.
package config

import "io"

// Config holds all program configuration, grouped by concern.
type Config struct {
	Search *SearchConfig
	Eval   *EvalConfig
	Record *RecordConfig
	Log    *LogConfig

	// Seed selects a random starting position when non-zero.
	Seed int64

	// FEN, when set, replaces the standard starting position.
	FEN string

	// EngineSide is the colour played by the engine ("white", "black" or
	// "none" for two human players).
	EngineSide string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Eval:       NewEvalConfig(),
		Record:     NewRecordConfig(),
		Log:        NewLogConfig(),
		EngineSide: "black",
	}
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Eval.Validate(); err != nil {
		return err
	}
	if err := c.Record.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return validateSide(c.EngineSide)
}
