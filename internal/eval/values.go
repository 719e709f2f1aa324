package eval

import (
	"math"

	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/config"
)

var centre = map[chess.Coord]bool{
	{X: 3, Y: 3}: true,
	{X: 4, Y: 3}: true,
	{X: 3, Y: 4}: true,
	{X: 4, Y: 4}: true,
}

func valueTable(cfg *config.EvalConfig) [chess.NumKinds]float64 {
	return [chess.NumKinds]float64{
		chess.Pawn:   cfg.PawnValue,
		chess.Knight: cfg.KnightValue,
		chess.Bishop: cfg.BishopValue,
		chess.Rook:   cfg.RookValue,
		chess.Queen:  cfg.QueenValue,
		chess.King:   cfg.KingValue,
	}
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
