// Package hashing fingerprints positions and counts repeated positions.
package hashing

import (
	"math/rand"

	"github.com/ilygor/chessjerk/internal/chess"
)

const squares = chess.BoardSize * chess.BoardSize

var (
	pieceKeys     [2][chess.NumKinds][squares]uint64
	castleKeys    [4]uint64 // white kingside, white queenside, black kingside, black queenside
	enPassantKeys [chess.BoardSize]uint64
	sideKey       uint64 // XORed in when black is to move
)

func init() {
	// Fixed seed so fingerprints are stable across runs and record stores.
	rnd := rand.New(rand.NewSource(0x5EED))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rnd.Uint64()
			}
		}
	}
	for i := range castleKeys {
		castleKeys[i] = rnd.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rnd.Uint64()
	}
	sideKey = rnd.Uint64()
}

// Hash computes the Zobrist fingerprint of a position: piece placement, side
// to move, surviving castling options and an open en passant file.
func Hash(pos *chess.Position) uint64 {
	var key uint64
	for _, id := range pos.Alive {
		p := pos.Piece(id)
		key ^= pieceKeys[p.Colour][p.Kind][p.Pos.Y*chess.BoardSize+p.Pos.X]
	}

	if pos.Turn == chess.Black {
		key ^= sideKey
	}

	for i, colour := range []chess.Colour{chess.White, chess.Black} {
		kingside, queenside := castleOptions(pos, colour)
		if kingside {
			key ^= castleKeys[2*i]
		}
		if queenside {
			key ^= castleKeys[2*i+1]
		}
	}

	if file, ok := enPassantFile(pos); ok {
		key ^= enPassantKeys[file]
	}
	return key
}

func castleOptions(pos *chess.Position, colour chess.Colour) (kingside, queenside bool) {
	y := chess.BackRank(colour)
	if !unmoved(pos, colour, chess.King, chess.Coord{X: 4, Y: y}) {
		return false, false
	}
	kingside = unmoved(pos, colour, chess.Rook, chess.Coord{X: 7, Y: y})
	queenside = unmoved(pos, colour, chess.Rook, chess.Coord{X: 0, Y: y})
	return kingside, queenside
}

func unmoved(pos *chess.Position, colour chess.Colour, kind chess.Kind, at chess.Coord) bool {
	p := pos.PieceAt(at)
	return p != nil && p.Colour == colour && p.Kind == kind && !p.HasMoved()
}

// enPassantFile returns the file of a pawn that double-advanced on the
// previous ply as its only move.
func enPassantFile(pos *chess.Position) (int, bool) {
	for _, p := range pos.Live(pos.Turn.Opposite()) {
		if p.Kind != chess.Pawn || len(p.History) != 1 {
			continue
		}
		h := p.History[0]
		if h.Tag == chess.PawnDoubleAdvance && h.Turn == pos.TurnNum-1 {
			return p.Pos.X, true
		}
	}
	return 0, false
}
