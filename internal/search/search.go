// Package search picks a move by scoring three plies of breadth-limited
// lines: the engine's best first moves, the opponent's best replies to each
// and every engine answer to those.
package search

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/config"
	"github.com/ilygor/chessjerk/internal/engine"
	"github.com/ilygor/chessjerk/internal/errors"
	"github.com/ilygor/chessjerk/internal/eval"
	"github.com/ilygor/chessjerk/internal/hashing"
	"github.com/ilygor/chessjerk/internal/record"
	"github.com/ilygor/chessjerk/internal/worker"
)

// Choice is the result of a search.
type Choice struct {
	Piece int
	From  chess.Coord
	To    chess.Coord

	// Score is the chosen move's ply-1 evaluation; Worst is the value the
	// selection policy assigned to it.
	Score float64
	Worst float64

	Leaves       int // ply-3 positions scored
	UniqueLeaves int // distinct leaf positions by fingerprint

	Table *record.Table
}

// Searcher runs the three-ply search under one configuration.
type Searcher struct {
	cfg  *config.SearchConfig
	ev   *eval.Evaluator
	log  zerolog.Logger
	sink record.Sink
}

// New creates a Searcher. A nil cfg uses the defaults and a nil sink discards
// leaf tables.
func New(cfg *config.SearchConfig, ev *eval.Evaluator, log zerolog.Logger, sink record.Sink) *Searcher {
	if cfg == nil {
		cfg = config.NewSearchConfig()
	}
	if ev == nil {
		ev = eval.New(nil)
	}
	if sink == nil {
		sink = record.Discard{}
	}
	return &Searcher{cfg: cfg, ev: ev, log: log, sink: sink}
}

// branch is the explored subtree of one ply-1 move.
type branch struct {
	worst  float64 // policy value
	leaves int
	rows   []record.Row
}

// ChooseMove searches pos using the configured breadth.
func (s *Searcher) ChooseMove(ctx context.Context, pos *chess.Position) (Choice, error) {
	return s.Choose(ctx, pos, s.cfg.Gen1, s.cfg.Gen2)
}

// Choose searches pos keeping gen1 first moves and gen2 replies to each, and
// returns the first move whose policy value is highest. pos is not modified.
func (s *Searcher) Choose(ctx context.Context, pos *chess.Position, gen1, gen2 int) (Choice, error) {
	if gen1 < 1 || gen2 < 1 {
		return Choice{}, fmt.Errorf("breadth %d/%d: %w", gen1, gen2, errors.ErrInvalidConfig)
	}

	root := pos.Clone()
	first := top(expand(root, s.ev), gen1)
	if len(first) == 0 {
		return Choice{}, fmt.Errorf("%s to move: %w", root.Turn, errors.ErrNoLegalMoves)
	}
	s.log.Debug().Int("turn", root.TurnNum).Int("first_moves", len(first)).Int("gen2", gen2).Msg("search started")

	seen := hashing.NewSyncTable()
	branches, err := worker.Map(ctx, s.cfg.Workers, first, func(ctx context.Context, m ScoredMove) (branch, error) {
		return s.explore(ctx, m, gen2, seen)
	})
	if err != nil {
		return Choice{}, fmt.Errorf("search cancelled: %w", err)
	}

	best := 0
	for i := range branches {
		if branches[i].worst > branches[best].worst {
			best = i
		}
	}

	chosen := first[best]
	choice := Choice{
		Piece:        chosen.Piece,
		From:         chosen.From,
		To:           chosen.To,
		Score:        chosen.Score,
		Worst:        branches[best].worst,
		UniqueLeaves: seen.UniqueCount(),
	}

	table := &record.Table{
		ID:     record.Key(hashing.Hash(root), root.TurnNum),
		FEN:    engine.FEN(root),
		Turn:   root.TurnNum,
		Policy: string(s.cfg.Policy),
		Chosen: record.Step{From: chosen.From.String(), To: chosen.To.String(), Score: choice.Worst},
	}
	for _, b := range branches {
		choice.Leaves += b.leaves
		table.Rows = append(table.Rows, b.rows...)
	}
	choice.Table = table

	if err := s.sink.Write(table); err != nil {
		s.log.Error().Err(err).Str("table", table.ID).Msg("record leaf table")
	}

	s.log.Info().
		Str("from", choice.From.String()).
		Str("to", choice.To.String()).
		Float64("score", choice.Score).
		Float64("worst", choice.Worst).
		Int("leaves", choice.Leaves).
		Int("unique", choice.UniqueLeaves).
		Msg("move chosen")
	return choice, nil
}

// explore scores the replies to one first move and every answer to each
// reply. Positions are dropped as soon as their ply is done.
func (s *Searcher) explore(ctx context.Context, m ScoredMove, gen2 int, seen *hashing.SyncTable) (branch, error) {
	replies := top(expand(m.Position, s.ev), gen2)
	ply1 := step(m)
	if len(replies) == 0 {
		return branch{worst: m.Score}, nil
	}

	b := branch{worst: math.Inf(1)}
	for _, r := range replies {
		if err := ctx.Err(); err != nil {
			return branch{}, err
		}

		leaves := expand(r.Position, s.ev)
		r.Position = nil

		value := s.ev.CheckPenalty()
		if len(leaves) > 0 {
			value = s.fold(leaves)
		}
		b.worst = min(b.worst, value)

		for _, leaf := range leaves {
			b.rows = append(b.rows, record.Row{
				Ply1: ply1,
				Ply2: step(r),
				Ply3: step(leaf),
				Hash: hashing.Hash(leaf.Position),
			})
			seen.Add(leaf.Position)
		}
		b.leaves += len(leaves)
	}

	s.log.Debug().
		Str("from", m.From.String()).
		Str("to", m.To.String()).
		Int("replies", len(replies)).
		Int("leaves", b.leaves).
		Float64("worst", b.worst).
		Msg("branch explored")
	return b, nil
}

// fold reduces the answers to one reply to a single value. Leaves arrive
// sorted best first.
func (s *Searcher) fold(leaves []ScoredMove) float64 {
	if s.cfg.Policy == config.Minimax {
		return leaves[0].Score
	}
	return leaves[len(leaves)-1].Score
}

func step(m ScoredMove) record.Step {
	return record.Step{From: m.From.String(), To: m.To.String(), Score: m.Score}
}
