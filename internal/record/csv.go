package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ilygor/chessjerk/internal/errors"
)

var csvHeader = []string{
	"table", "ply1_from", "ply1_to", "ply1_score",
	"ply2_from", "ply2_to", "ply2_score",
	"ply3_from", "ply3_to", "ply3_score", "hash",
}

// CSVSink writes one line per leaf, with a header before the first table.
type CSVSink struct {
	w     *csv.Writer
	wrote bool
}

// NewCSVSink creates a CSV sink writing to w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

// Write writes the rows of t.
func (s *CSVSink) Write(t *Table) error {
	if !s.wrote {
		if err := s.w.Write(csvHeader); err != nil {
			return fmt.Errorf("csv header: %v: %w", err, errors.ErrRecordSink)
		}
		s.wrote = true
	}
	for _, r := range t.Rows {
		rec := []string{t.ID}
		for _, st := range []Step{r.Ply1, r.Ply2, r.Ply3} {
			rec = append(rec, st.From, st.To, strconv.FormatFloat(st.Score, 'f', 1, 64))
		}
		rec = append(rec, strconv.FormatUint(r.Hash, 16))
		if err := s.w.Write(rec); err != nil {
			return fmt.Errorf("csv row: %v: %w", err, errors.ErrRecordSink)
		}
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("csv flush: %v: %w", err, errors.ErrRecordSink)
	}
	return nil
}

// Close flushes buffered rows.
func (s *CSVSink) Close() error {
	s.w.Flush()
	return s.w.Error()
}
