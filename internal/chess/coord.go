package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ilygor/chessjerk/internal/errors"
)

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Coord addresses a square: X is the file (0 = a), Y is the rank index with
// 0 being black's back rank (rank 8) and 7 white's (rank 1).
type Coord struct {
	X int
	Y int
}

// InBounds reports whether both coordinates lie in [0,7].
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String returns the algebraic name of the square, e.g. "e2".
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("%c%d", 'a'+c.X, BoardSize-c.Y)
}

// ParseCoord accepts algebraic squares ("e2", "E2", "e_2") and engine pairs
// ("4,6", "(4,6)").
func ParseCoord(s string) (Coord, error) {
	raw := strings.TrimSpace(s)
	if strings.Contains(raw, ",") {
		return parsePair(raw)
	}

	a := strings.ToLower(strings.ReplaceAll(raw, "_", ""))
	if len(a) != 2 || a[0] < 'a' || a[0] > 'h' || a[1] < '1' || a[1] > '8' {
		return Coord{}, fmt.Errorf("%q: %w", s, errors.ErrMalformedCoordinate)
	}
	return Coord{X: int(a[0] - 'a'), Y: BoardSize - int(a[1]-'0')}, nil
}

func parsePair(s string) (Coord, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%q: %w", s, errors.ErrMalformedCoordinate)
	}

	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	c := Coord{X: x, Y: y}
	if errX != nil || errY != nil || !c.InBounds() {
		return Coord{}, fmt.Errorf("%q: %w", s, errors.ErrMalformedCoordinate)
	}
	return c, nil
}

// MustParseCoord is ParseCoord for literals known to be valid; it panics otherwise.
func MustParseCoord(s string) Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}
