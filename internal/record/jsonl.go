package record

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ilygor/chessjerk/internal/errors"
)

// JSONLSink writes each table as one JSON object per line.
type JSONLSink struct {
	enc *json.Encoder
}

// NewJSONLSink creates a JSON lines sink writing to w.
func NewJSONLSink(w io.Writer) *JSONLSink {
	return &JSONLSink{enc: json.NewEncoder(w)}
}

// Write encodes t.
func (s *JSONLSink) Write(t *Table) error {
	if err := s.enc.Encode(t); err != nil {
		return fmt.Errorf("encode table %s: %v: %w", t.ID, err, errors.ErrRecordSink)
	}
	return nil
}

// Close is a no-op; the encoder does not buffer.
func (s *JSONLSink) Close() error {
	return nil
}
