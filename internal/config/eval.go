package config

import (
	"fmt"

	"github.com/ilygor/chessjerk/internal/errors"
)

// EvalConfig holds the evaluator's material table and weights.
type EvalConfig struct {
	PawnValue   float64
	KnightValue float64
	BishopValue float64
	RookValue   float64
	QueenValue  float64
	KingValue   float64

	// BackupDivisor scales a defended piece's value into its backup bonus
	BackupDivisor float64

	// CenterBonus is awarded per legal move onto d4, e4, d5 or e5
	CenterBonus float64

	// MobilityBonus is awarded per other legal move
	MobilityBonus float64

	// CheckPenalty replaces the total when the mover's king is attacked
	CheckPenalty float64

	// MateBonus is added when the opponent's king is attacked and cannot move
	MateBonus float64

	// TargetedWeight multiplies the penalty for the mover's attacked pieces
	TargetedWeight float64
}

// NewEvalConfig creates an EvalConfig with default values.
func NewEvalConfig() *EvalConfig {
	return &EvalConfig{
		PawnValue:      1,
		KnightValue:    3,
		BishopValue:    3,
		RookValue:      5,
		QueenValue:     9,
		KingValue:      9,
		BackupDivisor:  10,
		CenterBonus:    0.5,
		MobilityBonus:  0.1,
		CheckPenalty:   -1000,
		MateBonus:      500,
		TargetedWeight: 2,
	}
}

// Validate checks that the evaluation configuration is valid.
func (e *EvalConfig) Validate() error {
	if e.BackupDivisor <= 0 {
		return fmt.Errorf("backup divisor (%g) must be positive: %w", e.BackupDivisor, errors.ErrInvalidConfig)
	}
	for _, v := range []float64{e.PawnValue, e.KnightValue, e.BishopValue, e.RookValue, e.QueenValue, e.KingValue} {
		if v < 0 {
			return fmt.Errorf("piece value (%g) must not be negative: %w", v, errors.ErrInvalidConfig)
		}
	}
	return nil
}
