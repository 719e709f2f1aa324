package engine

import (
	"fmt"

	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/errors"
)

// Outcome describes a move that has been applied.
type Outcome struct {
	Piece    int
	From     chess.Coord
	To       chess.Coord
	Tag      chess.MoveTag
	Captured int // ID of the captured piece, chess.NoPiece if none

	// Rook fields are set for castles only.
	Rook     int
	RookFrom chess.Coord
	RookTo   chess.Coord

	InCheck    bool // the mover's own king is attacked after the move
	GivesCheck bool // the opponent's king is attacked after the move
}

// ApplyFrom applies the move of whatever piece stands on from.
func ApplyFrom(pos *chess.Position, from, to chess.Coord, validate bool) (Outcome, error) {
	piece := pos.PieceAt(from)
	if piece == nil {
		return Outcome{}, &errors.MoveError{
			Err:  errors.ErrNoPieceAtOrigin,
			From: from.String(),
			To:   to.String(),
			Turn: pos.TurnNum,
		}
	}
	return ApplyMove(pos, piece.ID, to, validate)
}

// ApplyMove moves piece id to to and recomputes every move set.
// With validate set the destination must be in the piece's legal set and the
// piece must belong to the side to move. Validation completes before any
// mutation, so a rejected move leaves pos untouched.
func ApplyMove(pos *chess.Position, id int, to chess.Coord, validate bool) (Outcome, error) {
	piece := pos.Piece(id)
	if piece == nil || !piece.Alive {
		return Outcome{}, &errors.MoveError{Err: errors.ErrNoPieceAtOrigin, To: to.String(), Turn: pos.TurnNum}
	}

	move, err := resolveMove(pos, piece, to, validate)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		Piece:    id,
		From:     piece.Pos,
		To:       to,
		Tag:      move.Tag,
		Captured: chess.NoPiece,
		Rook:     chess.NoPiece,
	}

	if victim := capturedBy(pos, piece, move); victim != nil {
		out.Captured = victim.ID
		pos.Capture(victim.ID, id)
	}
	pos.Relocate(id, to)
	piece.History = append(piece.History, chess.HistoryEntry{
		Tag:  move.Tag,
		From: out.From,
		To:   to,
		Turn: pos.TurnNum,
	})
	pos.LastMoved = append(pos.LastMoved[:0], id)

	if move.Tag.IsCastle() {
		castleRook(pos, piece, move.Tag, &out)
	}

	pos.Turn = pos.Turn.Opposite()
	pos.TurnNum++

	for _, moved := range pos.LastMoved {
		updateInBounds(pos, moved)
	}
	Update(pos)

	out.InCheck = IsInCheck(pos, piece.Colour)
	out.GivesCheck = IsInCheck(pos, piece.Colour.Opposite())
	return out, nil
}

// resolveMove finds the descriptor for moving piece to to. Unvalidated moves
// outside the legal set are described from geometry alone.
func resolveMove(pos *chess.Position, piece *chess.Piece, to chess.Coord, validate bool) (chess.Move, error) {
	reject := func(err error) error {
		return &errors.MoveError{
			Err:   err,
			Piece: fmt.Sprintf("%s %s", piece.Colour, piece.Kind),
			From:  piece.Pos.String(),
			To:    to.String(),
			Turn:  pos.TurnNum,
		}
	}

	if !to.InBounds() || to == piece.Pos {
		return chess.Move{}, reject(errors.ErrIllegalMove)
	}

	move, ok := piece.LegalTo(to)
	if validate {
		if !ok {
			return chess.Move{}, reject(errors.ErrIllegalMove)
		}
		if piece.Colour != pos.Turn {
			return chess.Move{}, reject(errors.ErrWrongTurn)
		}
	}
	if !ok {
		move = describe(piece, to)
	}

	if occ := pos.PieceAt(to); occ != nil && occ.Colour == piece.Colour {
		return chess.Move{}, reject(errors.ErrIllegalMove)
	}
	if move.Tag.IsCastle() {
		rule, _ := ruleFor(move.Tag)
		rook := pos.PieceAt(chess.Coord{X: rule.rookFrom, Y: piece.Pos.Y})
		if rook == nil || rook.Kind != chess.Rook || rook.Colour != piece.Colour {
			return chess.Move{}, reject(errors.ErrIllegalMove)
		}
	}
	return move, nil
}

// describe tags an arbitrary relocation by its shape.
func describe(piece *chess.Piece, to chess.Coord) chess.Move {
	dx, dy := to.X-piece.Pos.X, to.Y-piece.Pos.Y
	switch piece.Kind {
	case chess.Pawn:
		dir := chess.PawnDirection(piece.Colour)
		switch {
		case dx == 0 && dy == 2*dir:
			return chess.Move{Tag: chess.PawnDoubleAdvance, To: to}
		case dx == 0:
			return chess.Move{Tag: chess.PawnAdvance, To: to}
		default:
			return chess.Move{Tag: chess.PawnCapture, To: to}
		}
	case chess.King:
		if dy == 0 && piece.Pos.X == kingFile && piece.Pos.Y == chess.BackRank(piece.Colour) {
			if dx == 2 {
				return chess.Move{Tag: chess.KingsideCastle, To: to}
			}
			if dx == -2 {
				return chess.Move{Tag: chess.QueensideCastle, To: to}
			}
		}
	}
	return chess.Move{Tag: chess.Step, To: to}
}

// capturedBy returns the piece removed by move, taking en passant into account.
func capturedBy(pos *chess.Position, piece *chess.Piece, move chess.Move) *chess.Piece {
	if move.Tag == chess.EnPassant {
		return pos.PieceAt(chess.Coord{X: move.To.X, Y: piece.Pos.Y})
	}
	return pos.PieceAt(move.To)
}

// castleRook relocates the rook that accompanies a castling king. The rook's
// move shares the king's turn number so castling counts as a single ply.
func castleRook(pos *chess.Position, king *chess.Piece, tag chess.MoveTag, out *Outcome) {
	rule, _ := ruleFor(tag)
	y := king.Pos.Y
	from := chess.Coord{X: rule.rookFrom, Y: y}
	to := chess.Coord{X: rule.rookTo, Y: y}

	rook := pos.PieceAt(from)
	pos.Relocate(rook.ID, to)
	rook.History = append(rook.History, chess.HistoryEntry{
		Tag:  chess.Step,
		From: from,
		To:   to,
		Turn: pos.TurnNum,
	})
	pos.LastMoved = append(pos.LastMoved, rook.ID)

	out.Rook = rook.ID
	out.RookFrom = from
	out.RookTo = to
}
