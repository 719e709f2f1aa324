package engine

import "github.com/ilygor/chessjerk/internal/chess"

// isPathClear checks that every square strictly between from and to is empty.
func isPathClear(pos *chess.Position, from, to chess.Coord) bool {
	for _, sq := range chess.Between(from, to) {
		if pos.Occupied(sq) {
			return false
		}
	}
	return true
}
