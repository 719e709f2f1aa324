package hashing

import (
	"sync"
	"testing"

	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/engine"
	"github.com/ilygor/chessjerk/internal/testutil"
)

func TestHash_Deterministic(t *testing.T) {
	a := engine.NewStandardPosition()
	b := testutil.MustFEN(t, engine.InitialFEN)
	if Hash(a) != Hash(b) {
		t.Error("standard setup and initial FEN hash differently")
	}
}

func TestHash_Distinguishes(t *testing.T) {
	base := testutil.MustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	tests := []struct {
		name string
		fen  string
	}{
		{"side to move", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1"},
		{"castling rights", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1"},
		{"placement", "r3k2r/8/8/8/8/8/8/R4K1R w kq - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Hash(base) == Hash(testutil.MustFEN(t, tt.fen)) {
				t.Errorf("%q hashes like the base position", tt.fen)
			}
		})
	}
}

func TestHash_EnPassantFile(t *testing.T) {
	open := testutil.MustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")
	closed := testutil.MustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 2")
	if Hash(open) == Hash(closed) {
		t.Error("en passant availability does not change the hash")
	}
}

func TestHash_CloneIsolation(t *testing.T) {
	pos := engine.NewStandardPosition()
	before := Hash(pos)

	clone := pos.Clone()
	testutil.MustPlay(t, clone, "e2", "e4")

	testutil.AssertEqual(t, Hash(pos), before, "original hash changed")
	testutil.AssertTrue(t, Hash(clone) != before, "clone hash unchanged after a move")
}

func TestTable_Repetition(t *testing.T) {
	pos := engine.NewStandardPosition()
	table := NewTable()
	testutil.AssertEqual(t, table.Add(pos), 1)

	// Knights out and back twice returns to the start position.
	for i := 0; i < 2; i++ {
		testutil.MustPlay(t, pos, "g1", "f3", "g8", "f6", "f3", "g1", "f6", "g8")
		table.Add(pos)
	}

	// Kings and rooks never moved, so castling options are unchanged.
	testutil.AssertEqual(t, table.Count(pos), 3)
	testutil.AssertEqual(t, table.UniqueCount(), 1)
	testutil.AssertEqual(t, table.TotalCount(), 3)

	table.Reset()
	testutil.AssertEqual(t, table.UniqueCount(), 0)
}

func TestSyncTable_Concurrent(t *testing.T) {
	table := NewSyncTable()
	positions := []*chess.Position{
		engine.NewStandardPosition(),
		engine.NewRandomPosition(1),
		engine.NewRandomPosition(2),
	}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(p *chess.Position) {
			defer wg.Done()
			table.Add(p)
		}(positions[i%len(positions)])
	}
	wg.Wait()

	testutil.AssertEqual(t, table.UniqueCount(), 3)
	testutil.AssertEqual(t, table.TotalCount(), 30)
}
