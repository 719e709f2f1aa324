package engine

import (
	"math/rand"

	"github.com/ilygor/chessjerk/internal/chess"
)

var backRankKinds = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewStandardPosition sets up the starting position with all move sets computed.
func NewStandardPosition() *chess.Position {
	pos := chess.NewPosition()
	for x, kind := range backRankKinds {
		mustPlace(pos, chess.Black, kind, chess.Coord{X: x, Y: 0})
		mustPlace(pos, chess.Black, chess.Pawn, chess.Coord{X: x, Y: 1})
		mustPlace(pos, chess.White, chess.Pawn, chess.Coord{X: x, Y: 6})
		mustPlace(pos, chess.White, kind, chess.Coord{X: x, Y: 7})
	}
	pos.SortAlive()
	Refresh(pos)
	return pos
}

// NewRandomPosition scatters a full set of 32 pieces over random squares.
// Every piece is marked as already moved, so neither castling nor a pawn's
// double advance is ever offered. The same seed yields the same position.
func NewRandomPosition(seed int64) *chess.Position {
	rng := rand.New(rand.NewSource(seed))
	squares := rng.Perm(chess.BoardSize * chess.BoardSize)[:32]

	kinds := make([]chess.Kind, 0, 16)
	kinds = append(kinds, backRankKinds...)
	for i := 0; i < 8; i++ {
		kinds = append(kinds, chess.Pawn)
	}

	colours := [2]chess.Colour{chess.Black, chess.White}
	if rng.Intn(2) == 1 {
		colours[0], colours[1] = colours[1], colours[0]
	}

	pos := chess.NewPosition()
	for i, sq := range squares {
		at := chess.Coord{X: sq % chess.BoardSize, Y: sq / chess.BoardSize}
		id := mustPlace(pos, colours[i/16], kinds[i%16], at)
		markPlaced(pos.Piece(id))
	}
	pos.SortAlive()
	Refresh(pos)
	return pos
}

func mustPlace(pos *chess.Position, colour chess.Colour, kind chess.Kind, at chess.Coord) int {
	id, err := pos.Place(colour, kind, at)
	if err != nil {
		panic(err)
	}
	return id
}

// markPlaced gives a piece one synthetic history entry so it counts as moved.
func markPlaced(p *chess.Piece) {
	p.History = append(p.History, chess.HistoryEntry{Tag: chess.Placement, From: p.Pos, To: p.Pos})
}
