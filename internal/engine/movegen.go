// Package engine generates moves for a chess.Position and applies them.
//
// Move sets are recomputed globally after every ply: a single move can open
// or close lines for sliding pieces anywhere on the board.
package engine

import "github.com/ilygor/chessjerk/internal/chess"

// Refresh computes every live piece's in-bounds moves and then all derived
// sets. Call it once after building a position by hand.
func Refresh(pos *chess.Position) {
	for _, id := range pos.Alive {
		updateInBounds(pos, id)
	}
	Update(pos)
}

// Update recomputes unobstructed moves, legal moves, relations and castling
// for every live piece, reusing each piece's current in-bounds set.
func Update(pos *chess.Position) {
	generateUnobstructed(pos)
	generateLegal(pos)
	generateCastles(pos)
}

func updateInBounds(pos *chess.Position, id int) {
	p := pos.Piece(id)
	p.InBounds = chess.InBoundsMoves(p.Kind, p.Colour, p.Pos)
}

// generateUnobstructed keeps the in-bounds moves of sliding pieces whose path
// is empty. Pawns, knights and kings cannot be blocked.
func generateUnobstructed(pos *chess.Position) {
	for _, id := range pos.Alive {
		p := pos.Piece(id)
		p.Unobstructed = p.Unobstructed[:0]
		if !p.Kind.Slides() {
			p.Unobstructed = append(p.Unobstructed, p.InBounds...)
			continue
		}
		for _, m := range p.InBounds {
			if isPathClear(pos, p.Pos, m.To) {
				p.Unobstructed = append(p.Unobstructed, m)
			}
		}
	}
}

// generateLegal filters unobstructed moves by occupancy and records targets,
// threats and backups. Moves leaving the mover's own king attacked are kept;
// the evaluator penalises them.
func generateLegal(pos *chess.Position) {
	for _, id := range pos.Alive {
		p := pos.Piece(id)
		p.Legal = p.Legal[:0]
		p.ResetRelations()
	}

	for _, id := range pos.Alive {
		p := pos.Piece(id)
		if p.Kind == chess.Pawn {
			legalPawnMoves(pos, p)
		} else {
			legalPieceMoves(pos, p)
		}
	}
}

func legalPieceMoves(pos *chess.Position, p *chess.Piece) {
	for _, m := range p.Unobstructed {
		occ := pos.PieceAt(m.To)
		switch {
		case occ == nil:
			p.Legal = append(p.Legal, m)
		case occ.Colour != p.Colour:
			p.Legal = append(p.Legal, m)
			attack(p, occ)
		default:
			occ.Backups = append(occ.Backups, p.ID)
		}
	}
}

func legalPawnMoves(pos *chess.Position, p *chess.Piece) {
	dir := chess.PawnDirection(p.Colour)
	for _, m := range p.Unobstructed {
		switch m.Tag {
		case chess.PawnAdvance:
			if !pos.Occupied(m.To) {
				p.Legal = append(p.Legal, m)
			}

		case chess.PawnDoubleAdvance:
			if !p.HasMoved() && !pos.Occupied(p.Pos.Add(0, dir)) && !pos.Occupied(m.To) {
				p.Legal = append(p.Legal, m)
			}

		case chess.PawnCapture:
			occ := pos.PieceAt(m.To)
			switch {
			case occ == nil:
				victim := pos.PieceAt(chess.Coord{X: m.To.X, Y: p.Pos.Y})
				if passedPawn(pos, p, victim) {
					p.Legal = append(p.Legal, chess.Move{Tag: chess.EnPassant, To: m.To})
					attack(p, victim)
				}
			case occ.Colour != p.Colour:
				p.Legal = append(p.Legal, m)
				attack(p, occ)
			default:
				occ.Backups = append(occ.Backups, p.ID)
			}
		}
	}
}

// passedPawn reports whether victim is an enemy pawn that double-advanced as
// its only move, on the ply immediately before this one.
func passedPawn(pos *chess.Position, p, victim *chess.Piece) bool {
	if victim == nil || victim.Colour == p.Colour || victim.Kind != chess.Pawn {
		return false
	}
	if len(victim.History) != 1 {
		return false
	}
	last := victim.History[0]
	return last.Tag == chess.PawnDoubleAdvance && last.Turn == pos.TurnNum-1
}

func attack(attacker, target *chess.Piece) {
	attacker.Targets = append(attacker.Targets, target.ID)
	target.Threats = append(target.Threats, attacker.ID)
}
