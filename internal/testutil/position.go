package testutil

import (
	"testing"

	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/engine"
)

// MustFEN loads a FEN position and fails the test if it does not parse.
func MustFEN(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) failed: %v", fen, err)
	}
	return pos
}

// MustPlay applies a sequence of validated moves given as origin and
// destination coordinate pairs, such as "e2", "e4", "e7", "e5".
func MustPlay(t *testing.T, pos *chess.Position, squares ...string) {
	t.Helper()
	if len(squares)%2 != 0 {
		t.Fatalf("MustPlay: odd number of squares %v", squares)
	}
	for i := 0; i < len(squares); i += 2 {
		from := chess.MustParseCoord(squares[i])
		to := chess.MustParseCoord(squares[i+1])
		if _, err := engine.ApplyFrom(pos, from, to, true); err != nil {
			t.Fatalf("move %s-%s failed: %v", squares[i], squares[i+1], err)
		}
	}
}

// Board renders the position as eight rows of piece letters, rank 8 first,
// with '.' for empty squares. Black pieces are lowercase.
func Board(pos *chess.Position) []string {
	rows := make([]string, chess.BoardSize)
	for y := 0; y < chess.BoardSize; y++ {
		row := make([]byte, chess.BoardSize)
		for x := 0; x < chess.BoardSize; x++ {
			row[x] = '.'
			if p := pos.PieceAt(chess.Coord{X: x, Y: y}); p != nil {
				row[x] = p.Kind.Letter()
				if p.Colour == chess.Black {
					row[x] += 'a' - 'A'
				}
			}
		}
		rows[y] = string(row)
	}
	return rows
}
