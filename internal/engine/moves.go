package engine

import "github.com/ilygor/chessjerk/internal/chess"

// Candidate is one legal move available to the side to move.
type Candidate struct {
	Piece int
	From  chess.Coord
	Move  chess.Move
}

// MovesForTurn lists every legal move of the side to move, in live-list
// order and then each piece's generation order.
func MovesForTurn(pos *chess.Position) []Candidate {
	var out []Candidate
	for _, p := range pos.Live(pos.Turn) {
		for _, m := range p.Legal {
			out = append(out, Candidate{Piece: p.ID, From: p.Pos, Move: m})
		}
	}
	return out
}
