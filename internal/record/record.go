// Package record persists the leaf-score tables produced by the search.
package record

import (
	"fmt"
	"io"
	"os"

	"github.com/ilygor/chessjerk/internal/config"
	"github.com/ilygor/chessjerk/internal/errors"
)

// Step is one move in a searched line.
type Step struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Score float64 `json:"score"`
}

// Row is one ply-3 leaf together with the line that reached it.
type Row struct {
	Ply1 Step   `json:"ply1"`
	Ply2 Step   `json:"ply2"`
	Ply3 Step   `json:"ply3"`
	Hash uint64 `json:"hash"` // fingerprint of the leaf position
}

// Table is the full leaf table of one search.
type Table struct {
	ID     string `json:"id"`
	FEN    string `json:"fen"`
	Turn   int    `json:"turn"`
	Policy string `json:"policy"`
	Chosen Step   `json:"chosen"`
	Rows   []Row  `json:"rows"`
}

// Key returns a table ID built from the root fingerprint and turn counter.
func Key(rootHash uint64, turn int) string {
	return fmt.Sprintf("%06d-%016x", turn, rootHash)
}

// Sink is the interface for writing leaf tables.
type Sink interface {
	// Write persists one table.
	Write(t *Table) error

	// Close flushes pending data and releases resources.
	Close() error
}

// Open creates the sink selected by cfg. A disabled config yields Discard.
func Open(cfg *config.RecordConfig) (Sink, error) {
	if cfg == nil || !cfg.Enabled() {
		return Discard{}, nil
	}

	switch cfg.Format {
	case config.RecordBadger:
		s, err := OpenBadger(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.RecordCSV, config.RecordJSONL:
		f, err := os.Create(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("create %s: %v: %w", cfg.Path, err, errors.ErrRecordSink)
		}
		if cfg.Format == config.RecordCSV {
			return &closingSink{Sink: NewCSVSink(f), c: f}, nil
		}
		return &closingSink{Sink: NewJSONLSink(f), c: f}, nil
	}
	return nil, fmt.Errorf("unknown record format %q: %w", cfg.Format, errors.ErrRecordSink)
}

// Discard drops every table.
type Discard struct{}

// Write discards t.
func (Discard) Write(*Table) error { return nil }

// Close is a no-op.
func (Discard) Close() error { return nil }

// closingSink closes the underlying file after the wrapped sink.
type closingSink struct {
	Sink
	c io.Closer
}

func (s *closingSink) Close() error {
	err := s.Sink.Close()
	if cerr := s.c.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close: %v: %w", cerr, errors.ErrRecordSink)
	}
	return err
}
