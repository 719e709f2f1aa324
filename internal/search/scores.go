package search

import (
	"cmp"
	"slices"

	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/engine"
	"github.com/ilygor/chessjerk/internal/eval"
)

// ScoredMove is one legal move with the evaluation of the position it leads to.
type ScoredMove struct {
	Piece     int
	From      chess.Coord
	To        chess.Coord
	Tag       chess.MoveTag
	Score     float64
	Breakdown eval.Breakdown

	// Position is the position after the move. Nil in lists returned to callers.
	Position *chess.Position
}

// ScoreMoves scores every legal move of the side to move, best first. Ties
// keep generation order.
func ScoreMoves(pos *chess.Position, ev *eval.Evaluator) []ScoredMove {
	moves := expand(pos, ev)
	for i := range moves {
		moves[i].Position = nil
	}
	return moves
}

// expand applies every legal move of the side to move to its own clone and
// scores the result. The returned moves keep their positions for the next
// ply, sorted by score descending.
func expand(pos *chess.Position, ev *eval.Evaluator) []ScoredMove {
	candidates := engine.MovesForTurn(pos)
	out := make([]ScoredMove, 0, len(candidates))
	for _, c := range candidates {
		next := pos.Clone()
		if _, err := engine.ApplyMove(next, c.Piece, c.Move.To, false); err != nil {
			continue
		}
		res := ev.Evaluate(next)
		out = append(out, ScoredMove{
			Piece:     c.Piece,
			From:      c.From,
			To:        c.Move.To,
			Tag:       c.Move.Tag,
			Score:     res.Total,
			Breakdown: res.Breakdown,
			Position:  next,
		})
	}
	slices.SortStableFunc(out, func(a, b ScoredMove) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// top keeps the first n moves and drops the positions of the rest.
func top(moves []ScoredMove, n int) []ScoredMove {
	if len(moves) <= n {
		return moves
	}
	for i := n; i < len(moves); i++ {
		moves[i].Position = nil
	}
	return moves[:n]
}
