package config

import (
	"fmt"

	"github.com/ilygor/chessjerk/internal/errors"
)

// Policy selects how ply-3 leaves are folded into a ply-1 score.
type Policy string

const (
	// WorstLeaf scores a first move by the lowest leaf anywhere beneath it.
	WorstLeaf Policy = "worst-leaf"

	// Minimax scores a first move by the lowest of its replies, each reply
	// scored by the best answer to it.
	Minimax Policy = "minimax"
)

// SearchConfig holds settings for the three-ply search.
type SearchConfig struct {
	// Gen1 is how many top-scoring first moves are explored
	Gen1 int

	// Gen2 is how many top-scoring opponent replies are explored per first move
	Gen2 int

	// Workers is the number of goroutines exploring first moves (1 = sequential)
	Workers int

	Policy Policy
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Gen1:    3,
		Gen2:    2,
		Workers: 1,
		Policy:  WorstLeaf,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Gen1 < 1 || s.Gen2 < 1 {
		return fmt.Errorf("gen1 (%d) and gen2 (%d) must be at least 1: %w", s.Gen1, s.Gen2, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	switch s.Policy {
	case WorstLeaf, Minimax:
		return nil
	}
	return fmt.Errorf("unknown search policy %q: %w", s.Policy, errors.ErrInvalidConfig)
}
