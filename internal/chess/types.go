// Package chess provides the board geometry and the position model shared by
// the move generator, the evaluator and the search.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the rank-index step of a pawn advance: black pawns
// walk toward y=7, white pawns toward y=0.
func PawnDirection(c Colour) int {
	if c == White {
		return -1
	}
	return 1
}

// BackRank returns the rank index of the colour's home rank.
func BackRank(c Colour) int {
	if c == White {
		return 7
	}
	return 0
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && k < NumKinds {
		return letters[k]
	}
	return '?'
}

// Slides reports whether the kind moves along open lines and can be blocked.
func (k Kind) Slides() bool {
	return k == Bishop || k == Rook || k == Queen
}

// MoveTag classifies a move descriptor so that move application can
// special-case pawn pushes, en passant and castling.
type MoveTag int

const (
	Step MoveTag = iota // ordinary move of a knight, bishop, rook, queen or king
	PawnAdvance
	PawnDoubleAdvance
	PawnCapture
	EnPassant
	KingsideCastle
	QueensideCastle
	Placement // synthetic history entry written by setup code
)

var tagNames = []string{
	"step", "advance", "double-advance", "capture", "en-passant",
	"castle-kingside", "castle-queenside", "placement",
}

// String returns the string representation of a move tag.
func (t MoveTag) String() string {
	if t >= 0 && int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// IsCastle reports whether the tag is one of the two castling tags.
func (t MoveTag) IsCastle() bool {
	return t == KingsideCastle || t == QueensideCastle
}

// Move is a destination reachable by a piece together with the kind of move
// that reaches it.
type Move struct {
	Tag MoveTag
	To  Coord
}

// HistoryEntry records one move made by a piece.
type HistoryEntry struct {
	Tag  MoveTag
	From Coord
	To   Coord
	Turn int // turn counter value when the move was made
}
