package config

import (
	"fmt"

	"github.com/ilygor/chessjerk/internal/errors"
)

// RecordFormat names a leaf-table sink.
type RecordFormat string

const (
	RecordCSV    RecordFormat = "csv"
	RecordJSONL  RecordFormat = "jsonl"
	RecordBadger RecordFormat = "badger"
)

// RecordConfig holds settings for persisting search leaf tables.
type RecordConfig struct {
	// Path is the output file or, for badger, the database directory.
	// Empty disables recording.
	Path string

	Format RecordFormat
}

// NewRecordConfig creates a RecordConfig with recording disabled.
func NewRecordConfig() *RecordConfig {
	return &RecordConfig{Format: RecordCSV}
}

// Enabled reports whether leaf tables should be recorded.
func (r *RecordConfig) Enabled() bool {
	return r.Path != ""
}

// Validate checks that the record configuration is valid.
func (r *RecordConfig) Validate() error {
	switch r.Format {
	case RecordCSV, RecordJSONL, RecordBadger:
		return nil
	}
	return fmt.Errorf("unknown record format %q: %w", r.Format, errors.ErrInvalidConfig)
}
