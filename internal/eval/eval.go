// Package eval scores a position from the point of view of the side that
// just moved.
package eval

import (
	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/config"
	"github.com/ilygor/chessjerk/internal/engine"
)

// Breakdown holds the rounded components of a score.
type Breakdown struct {
	Targeting float64 `json:"targeting"` // enemy pieces the mover attacks
	Targeted  float64 `json:"targeted"`  // mover pieces the enemy attacks
	Backup    float64 `json:"backup"`
	Center    float64 `json:"center"`
	Capture   float64 `json:"capture"` // net material in the graveyard
	Mate      float64 `json:"mate"`
}

// Sum adds the components.
func (b Breakdown) Sum() float64 {
	return b.Targeting + b.Targeted + b.Backup + b.Center + b.Capture + b.Mate
}

// Result is the outcome of evaluating one position.
type Result struct {
	Total     float64   `json:"total"`
	Breakdown Breakdown `json:"breakdown"`

	// InCheck is set when the mover left its own king attacked; Total is
	// then the check penalty.
	InCheck bool `json:"in_check"`

	// Checkmate is set when the side to move has an attacked king with no
	// legal king move, or no king at all.
	Checkmate bool `json:"checkmate"`
}

// Evaluator scores positions with a fixed set of weights.
type Evaluator struct {
	cfg    *config.EvalConfig
	values [chess.NumKinds]float64
}

// New creates an evaluator. A nil cfg uses the defaults.
func New(cfg *config.EvalConfig) *Evaluator {
	if cfg == nil {
		cfg = config.NewEvalConfig()
	}
	return &Evaluator{cfg: cfg, values: valueTable(cfg)}
}

// Value returns the material value of a kind.
func (e *Evaluator) Value(k chess.Kind) float64 {
	if k < 0 || k >= chess.NumKinds {
		return 0
	}
	return e.values[k]
}

// CheckPenalty returns the score given to a position that leaves the
// mover's king attacked.
func (e *Evaluator) CheckPenalty() float64 {
	return e.cfg.CheckPenalty
}

// Evaluate scores pos for the side that made the last move, which is the
// opposite of pos.Turn. Move sets and relations must be current.
func (e *Evaluator) Evaluate(pos *chess.Position) Result {
	mover := pos.Turn.Opposite()
	opponent := pos.Turn

	var b Breakdown
	for _, p := range pos.Live(opponent) {
		for _, id := range p.Threats {
			b.Targeting += e.exchange(p, pos.Piece(id))
		}
		for _, id := range p.Targets {
			b.Targeted -= e.cfg.TargetedWeight * e.exchange(pos.Piece(id), p)
		}
	}

	for _, p := range pos.Live(mover) {
		if p.Kind != chess.King {
			b.Backup += float64(len(p.Backups)) * e.Value(p.Kind) / e.cfg.BackupDivisor
		}
		for _, m := range p.Legal {
			if centre[m.To] {
				b.Center += e.cfg.CenterBonus
			} else {
				b.Center += e.cfg.MobilityBonus
			}
		}
	}

	for _, id := range pos.Graveyard {
		dead := pos.Piece(id)
		if dead.Colour == opponent {
			b.Capture += e.Value(dead.Kind)
		} else {
			b.Capture -= e.Value(dead.Kind)
		}
	}

	res := Result{Checkmate: engine.IsKingTrapped(pos, opponent)}
	if res.Checkmate {
		b.Mate = e.cfg.MateBonus
	}

	b = Breakdown{
		Targeting: round1(b.Targeting),
		Targeted:  round1(b.Targeted),
		Backup:    round1(b.Backup),
		Center:    round1(b.Center),
		Capture:   round1(b.Capture),
		Mate:      round1(b.Mate),
	}
	res.Breakdown = b
	res.Total = round1(b.Sum())

	if engine.IsInCheck(pos, mover) {
		res.InCheck = true
		res.Total = e.cfg.CheckPenalty
	}
	return res
}

// exchange is what attacker stands to win by taking target: the full value
// of an undefended target, otherwise the excess of target over attacker.
func (e *Evaluator) exchange(target, attacker *chess.Piece) float64 {
	gain := e.Value(target.Kind)
	if len(target.Backups) > 0 {
		gain = max(gain-e.Value(attacker.Kind), 0)
	}
	return gain
}
