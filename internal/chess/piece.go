package chess

import "fmt"

// NoPiece marks an empty square or an absent piece reference.
const NoPiece = -1

// Piece is one chess man together with the move sets and relations derived
// for it in the current position. Relations hold piece IDs, which index the
// owning Position's arena, so a cloned position never aliases another.
type Piece struct {
	ID     int
	Colour Colour
	Kind   Kind
	Pos    Coord
	Alive  bool

	KilledBy int   // ID of the capturing piece, NoPiece while alive
	Kills    []int // IDs captured by this piece, in capture order

	InBounds     []Move // destinations on an empty board
	Unobstructed []Move // InBounds with a clear path
	Legal        []Move // Unobstructed filtered by occupancy, plus castles

	Targets []int // enemy pieces this piece attacks
	Threats []int // enemy pieces attacking this piece
	Backups []int // allied pieces defending this piece's square

	History []HistoryEntry
}

// String returns a description such as "white pawn at e2".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Colour, p.Kind, p.Pos)
}

// Symbol returns a short label such as "W_Pawn".
func (p *Piece) Symbol() string {
	prefix := "B"
	if p.Colour == White {
		prefix = "W"
	}
	name := p.Kind.String()
	return prefix + "_" + string(name[0]-'a'+'A') + name[1:]
}

// HasMoved reports whether the piece has any history entry.
func (p *Piece) HasMoved() bool {
	return len(p.History) > 0
}

// LastEntry returns the most recent history entry.
func (p *Piece) LastEntry() (HistoryEntry, bool) {
	if len(p.History) == 0 {
		return HistoryEntry{}, false
	}
	return p.History[len(p.History)-1], true
}

// LegalTo returns the legal move landing on to, if any.
func (p *Piece) LegalTo(to Coord) (Move, bool) {
	for _, m := range p.Legal {
		if m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

// ResetRelations clears Targets, Threats and Backups ahead of a recompute.
func (p *Piece) ResetRelations() {
	p.Targets = p.Targets[:0]
	p.Threats = p.Threats[:0]
	p.Backups = p.Backups[:0]
}

func (p *Piece) clone() Piece {
	c := *p
	c.Kills = cloneSlice(p.Kills)
	c.InBounds = cloneSlice(p.InBounds)
	c.Unobstructed = cloneSlice(p.Unobstructed)
	c.Legal = cloneSlice(p.Legal)
	c.Targets = cloneSlice(p.Targets)
	c.Threats = cloneSlice(p.Threats)
	c.Backups = cloneSlice(p.Backups)
	c.History = cloneSlice(p.History)
	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
