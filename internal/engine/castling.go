package engine

import "github.com/ilygor/chessjerk/internal/chess"

// castleRule describes one castling option on a back rank.
type castleRule struct {
	tag      chess.MoveTag
	rookFrom int   // file of the rook before castling
	rookTo   int   // file of the rook after castling
	kingTo   int   // file of the king after castling
	empty    []int // files that must be empty
	safe     []int // files the king transits, start and end included
}

const kingFile = 4

var castleRules = []castleRule{
	{tag: chess.QueensideCastle, rookFrom: 0, rookTo: 3, kingTo: 2, empty: []int{1, 2, 3}, safe: []int{2, 3, 4}},
	{tag: chess.KingsideCastle, rookFrom: 7, rookTo: 5, kingTo: 6, empty: []int{5, 6}, safe: []int{6, 5, 4}},
}

func ruleFor(tag chess.MoveTag) (castleRule, bool) {
	for _, r := range castleRules {
		if r.tag == tag {
			return r, true
		}
	}
	return castleRule{}, false
}

// generateCastles adds castle moves to any unmoved king on its home square.
// It must run after generateLegal, since safety is judged on the enemy's
// current legal moves.
func generateCastles(pos *chess.Position) {
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		y := chess.BackRank(colour)
		king := pos.PieceAt(chess.Coord{X: kingFile, Y: y})
		if king == nil || king.Kind != chess.King || king.Colour != colour || king.HasMoved() {
			continue
		}

		for _, rule := range castleRules {
			rook := pos.PieceAt(chess.Coord{X: rule.rookFrom, Y: y})
			if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved() {
				continue
			}
			if !filesEmpty(pos, y, rule.empty) {
				continue
			}
			if !squaresSafe(pos, y, rule.safe, colour.Opposite()) {
				continue
			}
			king.Legal = append(king.Legal, chess.Move{Tag: rule.tag, To: chess.Coord{X: rule.kingTo, Y: y}})
		}
	}
}

func filesEmpty(pos *chess.Position, y int, files []int) bool {
	for _, x := range files {
		if pos.Occupied(chess.Coord{X: x, Y: y}) {
			return false
		}
	}
	return true
}

func squaresSafe(pos *chess.Position, y int, files []int, by chess.Colour) bool {
	for _, x := range files {
		if IsSquareAttacked(pos, chess.Coord{X: x, Y: y}, by) {
			return false
		}
	}
	return true
}
