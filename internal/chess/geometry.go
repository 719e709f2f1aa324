package chess

// Offsets are listed clockwise from north, where north is toward y=0.
var (
	knightOffsets = [][2]int{{1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}}
	kingOffsets   = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// InBoundsMoves returns every destination a piece of the given kind and
// colour could reach from `from` on an empty board. Castling is not included;
// it is generated by the move generator from the king's history.
func InBoundsMoves(kind Kind, colour Colour, from Coord) []Move {
	switch kind {
	case Pawn:
		return pawnMoves(colour, from)
	case Knight:
		return offsetMoves(from, knightOffsets)
	case Bishop:
		return bishopMoves(from, nil)
	case Rook:
		return rookMoves(from, nil)
	case Queen:
		return rookMoves(from, bishopMoves(from, nil))
	case King:
		return offsetMoves(from, kingOffsets)
	}
	return nil
}

func pawnMoves(colour Colour, from Coord) []Move {
	dir := PawnDirection(colour)
	candidates := []Move{
		{Tag: PawnAdvance, To: from.Add(0, dir)},
		{Tag: PawnDoubleAdvance, To: from.Add(0, 2*dir)},
		{Tag: PawnCapture, To: from.Add(1, dir)},
		{Tag: PawnCapture, To: from.Add(-1, dir)},
	}

	moves := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		if m.To.InBounds() {
			moves = append(moves, m)
		}
	}
	return moves
}

func offsetMoves(from Coord, offsets [][2]int) []Move {
	moves := make([]Move, 0, len(offsets))
	for _, off := range offsets {
		to := from.Add(off[0], off[1])
		if to.InBounds() {
			moves = append(moves, Move{Tag: Step, To: to})
		}
	}
	return moves
}

// rookMoves appends every square sharing the file or rank of from.
func rookMoves(from Coord, moves []Move) []Move {
	for y := 0; y < from.Y; y++ {
		moves = append(moves, Move{Tag: Step, To: Coord{X: from.X, Y: y}})
	}
	for x := from.X + 1; x < BoardSize; x++ {
		moves = append(moves, Move{Tag: Step, To: Coord{X: x, Y: from.Y}})
	}
	for y := from.Y + 1; y < BoardSize; y++ {
		moves = append(moves, Move{Tag: Step, To: Coord{X: from.X, Y: y}})
	}
	for x := 0; x < from.X; x++ {
		moves = append(moves, Move{Tag: Step, To: Coord{X: x, Y: from.Y}})
	}
	return moves
}

// bishopMoves appends every square on the four diagonals through from.
func bishopMoves(from Coord, moves []Move) []Move {
	dirs := [][2]int{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	for _, d := range dirs {
		for i := 1; i < BoardSize; i++ {
			to := from.Add(d[0]*i, d[1]*i)
			if !to.InBounds() {
				break
			}
			moves = append(moves, Move{Tag: Step, To: to})
		}
	}
	return moves
}

// Between returns the squares strictly between from and to along a straight
// or diagonal line. A pure file or rank path repeats the fixed coordinate so
// both axes advance in lock step; the result length is the greater axis
// delta minus one.
func Between(from, to Coord) []Coord {
	dx, dy := to.X-from.X, to.Y-from.Y
	n := max(Abs(dx), Abs(dy)) - 1
	if n <= 0 {
		return nil
	}

	stepX, stepY := Sign(dx), Sign(dy)
	squares := make([]Coord, 0, n)
	for i := 1; i <= n; i++ {
		squares = append(squares, Coord{X: from.X + stepX*i, Y: from.Y + stepY*i})
	}
	return squares
}
