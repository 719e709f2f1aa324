package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ilygor/chessjerk/internal/chess"
)

func TestNewStandardPosition(t *testing.T) {
	pos := NewStandardPosition()
	if got := len(pos.Filter([]chess.Kind{chess.Pawn}, []chess.Colour{chess.Black})); got != 8 {
		t.Errorf("black pawns = %d, want 8", got)
	}
	for x := 0; x < chess.BoardSize; x++ {
		if p := pos.PieceAt(chess.Coord{X: x, Y: 1}); p == nil || p.Colour != chess.Black || p.Kind != chess.Pawn {
			t.Errorf("(%d,1) holds %v, want a black pawn", x, p)
		}
	}
	if k := pos.King(chess.White); k.Pos != (chess.Coord{X: 4, Y: 7}) {
		t.Errorf("white king on %v, want e1", k.Pos)
	}

	// Live list is in scan order: file a top to bottom first.
	first := pos.Piece(pos.Alive[0])
	if first.Pos != (chess.Coord{X: 0, Y: 0}) {
		t.Errorf("first live piece on %v, want a8", first.Pos)
	}
}

func TestNewRandomPosition(t *testing.T) {
	a := NewRandomPosition(42)
	b := NewRandomPosition(42)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different positions (-a +b):\n%s", diff)
	}

	if got := len(a.Alive); got != 32 {
		t.Fatalf("alive = %d, want 32", got)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if got := len(a.Filter([]chess.Kind{chess.King}, []chess.Colour{colour})); got != 1 {
			t.Errorf("%s kings = %d, want 1", colour, got)
		}
		if got := len(a.Filter([]chess.Kind{chess.Pawn}, []chess.Colour{colour})); got != 8 {
			t.Errorf("%s pawns = %d, want 8", colour, got)
		}
	}
	for _, p := range a.Filter(nil, nil) {
		if !p.HasMoved() {
			t.Errorf("%s is not marked as moved", p)
		}
		for _, m := range p.Legal {
			if m.Tag.IsCastle() || m.Tag == chess.PawnDoubleAdvance {
				t.Errorf("%s offered %v", p, m.Tag)
			}
		}
	}
}
