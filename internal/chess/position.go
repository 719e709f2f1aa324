package chess

import (
	"fmt"
	"slices"
)

// Square is one cell of the board. Occupant is the ID of the piece standing
// on it, or NoPiece.
type Square struct {
	Colour   Colour
	Occupant int
}

// Position holds the board, the piece arena and turn state. Squares is
// indexed [x][y].
type Position struct {
	Squares [BoardSize][BoardSize]Square

	// Pieces is the arena of every piece ever placed, indexed by ID.
	// Captured pieces stay here so their history survives for scoring.
	Pieces    []Piece
	Alive     []int
	Graveyard []int // in capture order

	Turn      Colour
	TurnNum   int
	LastMoved []int
}

// NewPosition creates an empty board with white to move on turn 1.
func NewPosition() *Position {
	p := &Position{
		Turn:    White,
		TurnNum: 1,
	}
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			colour := Black
			if (x+y)%2 == 0 {
				colour = White
			}
			p.Squares[x][y] = Square{Colour: colour, Occupant: NoPiece}
		}
	}
	return p
}

// Place puts a new live piece on an empty square and returns its ID.
func (p *Position) Place(colour Colour, kind Kind, at Coord) (int, error) {
	if !at.InBounds() {
		return NoPiece, fmt.Errorf("place %s %s: square %s off the board", colour, kind, at)
	}
	if occ := p.Squares[at.X][at.Y].Occupant; occ != NoPiece {
		return NoPiece, fmt.Errorf("place %s %s: %s already holds %s", colour, kind, at, p.Pieces[occ].Symbol())
	}

	id := len(p.Pieces)
	p.Pieces = append(p.Pieces, Piece{
		ID:       id,
		Colour:   colour,
		Kind:     kind,
		Pos:      at,
		Alive:    true,
		KilledBy: NoPiece,
	})
	p.Squares[at.X][at.Y].Occupant = id
	p.Alive = append(p.Alive, id)
	return id, nil
}

// SortAlive orders the live list by board scan order (file-major).
func (p *Position) SortAlive() {
	slices.SortFunc(p.Alive, func(a, b int) int {
		pa, pb := p.Pieces[a].Pos, p.Pieces[b].Pos
		if pa.X != pb.X {
			return pa.X - pb.X
		}
		return pa.Y - pb.Y
	})
}

// Piece returns the piece with the given ID, or nil.
func (p *Position) Piece(id int) *Piece {
	if id < 0 || id >= len(p.Pieces) {
		return nil
	}
	return &p.Pieces[id]
}

// At returns the square at c.
func (p *Position) At(c Coord) Square {
	return p.Squares[c.X][c.Y]
}

// PieceAt returns the live piece on c, or nil when c is empty or off the board.
func (p *Position) PieceAt(c Coord) *Piece {
	if !c.InBounds() {
		return nil
	}
	return p.Piece(p.Squares[c.X][c.Y].Occupant)
}

// Occupied reports whether a piece stands on c.
func (p *Position) Occupied(c Coord) bool {
	return c.InBounds() && p.Squares[c.X][c.Y].Occupant != NoPiece
}

// Live returns the live pieces of a colour in live-list order.
func (p *Position) Live(colour Colour) []*Piece {
	var out []*Piece
	for _, id := range p.Alive {
		if p.Pieces[id].Colour == colour {
			out = append(out, &p.Pieces[id])
		}
	}
	return out
}

// Filter returns live pieces matching any of kinds and any of colours.
// An empty filter matches everything.
func (p *Position) Filter(kinds []Kind, colours []Colour) []*Piece {
	var out []*Piece
	for _, id := range p.Alive {
		piece := &p.Pieces[id]
		if len(kinds) > 0 && !slices.Contains(kinds, piece.Kind) {
			continue
		}
		if len(colours) > 0 && !slices.Contains(colours, piece.Colour) {
			continue
		}
		out = append(out, piece)
	}
	return out
}

// King returns the colour's king, dead or alive, or nil if none was placed.
func (p *Position) King(colour Colour) *Piece {
	for i := range p.Pieces {
		if p.Pieces[i].Kind == King && p.Pieces[i].Colour == colour {
			return &p.Pieces[i]
		}
	}
	return nil
}

// Relocate moves a piece to an empty square, keeping Squares and Pos in step.
func (p *Position) Relocate(id int, to Coord) {
	piece := &p.Pieces[id]
	p.Squares[piece.Pos.X][piece.Pos.Y].Occupant = NoPiece
	p.Squares[to.X][to.Y].Occupant = id
	piece.Pos = to
}

// Capture removes victim from the board and the live list, appends it to the
// graveyard and records the killer on both pieces.
func (p *Position) Capture(victim, killer int) {
	v := &p.Pieces[victim]
	if p.Squares[v.Pos.X][v.Pos.Y].Occupant == victim {
		p.Squares[v.Pos.X][v.Pos.Y].Occupant = NoPiece
	}
	v.Alive = false
	v.KilledBy = killer
	p.Alive = slices.DeleteFunc(p.Alive, func(id int) bool { return id == victim })
	p.Graveyard = append(p.Graveyard, victim)
	if killer != NoPiece {
		p.Pieces[killer].Kills = append(p.Pieces[killer].Kills, victim)
	}
}

// Clone returns a deep copy: squares, arena, lists and every move set.
func (p *Position) Clone() *Position {
	c := &Position{
		Squares:   p.Squares,
		Pieces:    make([]Piece, len(p.Pieces)),
		Alive:     cloneSlice(p.Alive),
		Graveyard: cloneSlice(p.Graveyard),
		Turn:      p.Turn,
		TurnNum:   p.TurnNum,
		LastMoved: cloneSlice(p.LastMoved),
	}
	for i := range p.Pieces {
		c.Pieces[i] = p.Pieces[i].clone()
	}
	return c
}
