package game

import (
	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/engine"
)

// PieceInfo describes one piece for inspection.
type PieceInfo struct {
	Label    string
	Colour   chess.Colour
	Kind     chess.Kind
	At       chess.Coord
	Legal    []chess.Coord
	Targets  []string
	Threats  []string
	Backups  []string
	Moves    int
	Kills    []string
	LastMove string
}

// PieceAt describes the piece on c. The second result is false on an empty
// square.
func (g *Game) PieceAt(c chess.Coord) (PieceInfo, bool) {
	p := g.pos.PieceAt(c)
	if p == nil {
		return PieceInfo{}, false
	}

	info := PieceInfo{
		Label:   p.Symbol(),
		Colour:  p.Colour,
		Kind:    p.Kind,
		At:      p.Pos,
		Moves:   len(p.History),
		Targets: g.describe(p.Targets),
		Threats: g.describe(p.Threats),
		Backups: g.describe(p.Backups),
		Kills:   g.describe(p.Kills),
	}
	for _, m := range p.Legal {
		info.Legal = append(info.Legal, m.To)
	}
	if last, ok := p.LastEntry(); ok {
		info.LastMove = last.From.String() + "-" + last.To.String()
	}
	return info, true
}

func (g *Game) describe(ids []int) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.pos.Piece(id).String())
	}
	return out
}

// Status summarises the side to move's situation.
type Status struct {
	Turn        chess.Colour
	TurnNum     int
	InCheck     bool
	Checkmate   bool
	Stalemate   bool
	SafeMoves   int // legal moves that do not leave the king attacked
	Repetitions int // times the current position has occurred
}

// Over reports whether the side to move can no longer play.
func (s Status) Over() bool {
	return s.Checkmate || s.Stalemate
}

// Status inspects the live position.
func (g *Game) Status() Status {
	s := Status{
		Turn:        g.pos.Turn,
		TurnNum:     g.pos.TurnNum,
		InCheck:     engine.IsInCheck(g.pos, g.pos.Turn),
		Repetitions: g.seen.Count(g.pos),
	}
	for _, c := range engine.MovesForTurn(g.pos) {
		next := g.pos.Clone()
		out, err := engine.ApplyMove(next, c.Piece, c.Move.To, false)
		if err == nil && !out.InCheck {
			s.SafeMoves++
		}
	}
	if s.SafeMoves == 0 {
		s.Checkmate = s.InCheck
		s.Stalemate = !s.InCheck
	}
	return s
}
