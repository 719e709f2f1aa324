package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPosition_SquareColours(t *testing.T) {
	pos := NewPosition()
	if got := pos.At(Coord{0, 0}).Colour; got != White {
		t.Errorf("a8 colour = %v, want white", got)
	}
	if got := pos.At(Coord{0, 7}).Colour; got != Black {
		t.Errorf("a1 colour = %v, want black", got)
	}
	if got := pos.At(Coord{7, 7}).Colour; got != White {
		t.Errorf("h1 colour = %v, want white", got)
	}
	if pos.Turn != White || pos.TurnNum != 1 {
		t.Errorf("new position turn = %v/%d, want white/1", pos.Turn, pos.TurnNum)
	}
}

func TestPlace(t *testing.T) {
	pos := NewPosition()
	id, err := pos.Place(White, Rook, Coord{0, 7})
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if got := pos.PieceAt(Coord{0, 7}); got == nil || got.ID != id {
		t.Fatalf("PieceAt(a1) = %v, want rook %d", got, id)
	}
	if _, err := pos.Place(Black, Pawn, Coord{0, 7}); err == nil {
		t.Error("Place on occupied square succeeded")
	}
	if _, err := pos.Place(Black, Pawn, Coord{8, 0}); err == nil {
		t.Error("Place off the board succeeded")
	}
}

func TestCapture_MovesToGraveyard(t *testing.T) {
	pos := NewPosition()
	rook, _ := pos.Place(White, Rook, Coord{0, 7})
	pawn, _ := pos.Place(Black, Pawn, Coord{0, 3})

	pos.Capture(pawn, rook)

	if pos.Occupied(Coord{0, 3}) {
		t.Error("captured pawn still occupies its square")
	}
	if diff := cmp.Diff([]int{rook}, pos.Alive); diff != "" {
		t.Errorf("Alive mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{pawn}, pos.Graveyard); diff != "" {
		t.Errorf("Graveyard mismatch (-want +got):\n%s", diff)
	}
	if got := pos.Piece(pawn); got.Alive || got.KilledBy != rook {
		t.Errorf("victim state = alive %v killed by %d", got.Alive, got.KilledBy)
	}
	if diff := cmp.Diff([]int{pawn}, pos.Piece(rook).Kills); diff != "" {
		t.Errorf("Kills mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter(t *testing.T) {
	pos := NewPosition()
	pos.Place(White, Rook, Coord{0, 7})
	pos.Place(White, Pawn, Coord{0, 6})
	pos.Place(Black, Rook, Coord{0, 0})

	if got := len(pos.Filter([]Kind{Rook}, nil)); got != 2 {
		t.Errorf("rooks = %d, want 2", got)
	}
	if got := len(pos.Filter(nil, []Colour{White})); got != 2 {
		t.Errorf("white pieces = %d, want 2", got)
	}
	if got := len(pos.Filter([]Kind{Rook}, []Colour{Black})); got != 1 {
		t.Errorf("black rooks = %d, want 1", got)
	}
	if got := len(pos.Filter(nil, nil)); got != 3 {
		t.Errorf("all pieces = %d, want 3", got)
	}
}

func TestSortAlive_ScanOrder(t *testing.T) {
	pos := NewPosition()
	c, _ := pos.Place(White, Rook, Coord{3, 1})
	a, _ := pos.Place(White, Rook, Coord{0, 5})
	b, _ := pos.Place(White, Rook, Coord{0, 2})
	pos.SortAlive()
	if diff := cmp.Diff([]int{b, a, c}, pos.Alive); diff != "" {
		t.Errorf("Alive order mismatch (-want +got):\n%s", diff)
	}
}

func TestClone_Independent(t *testing.T) {
	pos := NewPosition()
	id, _ := pos.Place(White, Queen, Coord{3, 7})
	pos.Piece(id).Legal = []Move{{Step, Coord{3, 6}}}
	pos.Piece(id).Threats = []int{5}

	clone := pos.Clone()
	clone.Relocate(id, Coord{3, 3})
	clone.Piece(id).Legal[0].To = Coord{0, 0}
	clone.Piece(id).Threats = append(clone.Piece(id).Threats, 9)
	clone.TurnNum = 10

	if got := pos.Piece(id).Pos; got != (Coord{3, 7}) {
		t.Errorf("original queen moved to %v", got)
	}
	if pos.PieceAt(Coord{3, 7}) == nil || pos.Occupied(Coord{3, 3}) {
		t.Error("original squares changed")
	}
	if got := pos.Piece(id).Legal[0].To; got != (Coord{3, 6}) {
		t.Errorf("original legal moves aliased: %v", got)
	}
	if diff := cmp.Diff([]int{5}, pos.Piece(id).Threats); diff != "" {
		t.Errorf("original threats changed (-want +got):\n%s", diff)
	}
	if pos.TurnNum != 1 {
		t.Errorf("original TurnNum = %d", pos.TurnNum)
	}
}

func TestPieceLabels(t *testing.T) {
	p := Piece{Colour: White, Kind: Pawn, Pos: Coord{4, 6}}
	if got := p.String(); got != "white pawn at e2" {
		t.Errorf("String() = %q", got)
	}
	if got := p.Symbol(); got != "W_Pawn" {
		t.Errorf("Symbol() = %q", got)
	}
	b := Piece{Colour: Black, Kind: Knight}
	if got := b.Symbol(); got != "B_Knight" {
		t.Errorf("Symbol() = %q", got)
	}
}
