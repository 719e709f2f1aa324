package engine

import "github.com/ilygor/chessjerk/internal/chess"

// IsSquareAttacked returns true if any live piece of byColour could move to
// or capture on sq. Pawns attack their two diagonal squares whether or not
// anything stands there; every other piece attacks through its legal moves.
func IsSquareAttacked(pos *chess.Position, sq chess.Coord, byColour chess.Colour) bool {
	for _, p := range pos.Live(byColour) {
		if p.Kind == chess.Pawn {
			for _, m := range p.InBounds {
				if m.Tag == chess.PawnCapture && m.To == sq {
					return true
				}
			}
			continue
		}
		for _, m := range p.Legal {
			if !m.Tag.IsCastle() && m.To == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck returns true if the colour's king is threatened. A captured king
// counts as in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.King(colour)
	if king == nil {
		return false
	}
	if !king.Alive {
		return true
	}
	return len(king.Threats) > 0
}

// IsKingTrapped returns true if the colour's king is threatened and has no
// legal move of its own, or has already been captured. Interpositions and
// captures of the checking piece are not considered.
func IsKingTrapped(pos *chess.Position, colour chess.Colour) bool {
	king := pos.King(colour)
	if king == nil {
		return false
	}
	if !king.Alive {
		return true
	}
	return len(king.Threats) > 0 && len(king.Legal) == 0
}

// HasLegalMoves returns true if the colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for _, p := range pos.Live(colour) {
		if len(p.Legal) > 0 {
			return true
		}
	}
	return false
}
