package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenKinds = map[rune]chess.Kind{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// NewPositionFromFEN creates a position from a FEN string. Piece histories
// are synthesised from the record: missing castling rights mark the king or
// rook as moved, pawns off their start rank count as moved, and an en passant
// square gives the passed pawn a double advance on the previous ply.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := chess.NewPosition()
	if err := parsePlacement(pos, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseFullmove(pos, parts); err != nil {
		return nil, err
	}
	markPawns(pos)
	if err := parseCastling(pos, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}

	pos.SortAlive()
	Refresh(pos)
	return pos, nil
}

// parsePlacement parses the piece placement field. The first FEN row is rank
// 8, which is y=0.
func parsePlacement(pos *chess.Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("want 8 ranks, got %d: %w", len(rows), errors.ErrInvalidFEN)
	}

	for y, row := range rows {
		x := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			kind, ok := fenKinds[unicode.ToLower(c)]
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if x >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-y, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if _, err := pos.Place(colour, kind, chess.Coord{X: x, Y: y}); err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			x++
		}
		if x != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-y, x, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.Turn = chess.White
	case "b":
		pos.Turn = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseFullmove converts the fullmove number into the ply counter.
func parseFullmove(pos *chess.Position, parts []string) error {
	fullmove := 1
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		fullmove = n
	}
	pos.TurnNum = 2*(fullmove-1) + 1
	if pos.Turn == chess.Black {
		pos.TurnNum++
	}
	return nil
}

func markPawns(pos *chess.Position) {
	for _, p := range pos.Filter([]chess.Kind{chess.Pawn}, nil) {
		start := chess.BackRank(p.Colour) + chess.PawnDirection(p.Colour)
		if p.Pos.Y != start {
			markPlaced(p)
		}
	}
}

// parseCastling marks kings and rooks that have lost their castling rights.
func parseCastling(pos *chess.Position, parts []string) error {
	field := "-"
	if len(parts) >= 3 {
		field = parts[2]
	}

	rights := map[rune]bool{}
	if field != "-" {
		for _, c := range field {
			if !strings.ContainsRune("KQkq", c) {
				return fmt.Errorf("invalid castling field: %s: %w", field, errors.ErrInvalidFEN)
			}
			rights[c] = true
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kingside, queenside := 'K', 'Q'
		if colour == chess.Black {
			kingside, queenside = 'k', 'q'
		}
		y := chess.BackRank(colour)

		for _, p := range pos.Filter([]chess.Kind{chess.King, chess.Rook}, []chess.Colour{colour}) {
			home := p.Pos.Y == y
			switch {
			case p.Kind == chess.King:
				if !home || p.Pos.X != kingFile || (!rights[kingside] && !rights[queenside]) {
					markPlaced(p)
				}
			case home && p.Pos.X == 7:
				if !rights[kingside] {
					markPlaced(p)
				}
			case home && p.Pos.X == 0:
				if !rights[queenside] {
					markPlaced(p)
				}
			default:
				markPlaced(p)
			}
		}
	}
	return nil
}

// parseEnPassant records the double advance implied by the en passant field.
func parseEnPassant(pos *chess.Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseCoord(parts[3])
	if err != nil {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	colour := pos.Turn.Opposite()
	dir := chess.PawnDirection(colour)
	pawn := pos.PieceAt(target.Add(0, dir))
	if pawn == nil || pawn.Kind != chess.Pawn || pawn.Colour != colour {
		return fmt.Errorf("no passed pawn beyond %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	pawn.History = []chess.HistoryEntry{{
		Tag:  chess.PawnDoubleAdvance,
		From: target.Add(0, -dir),
		To:   pawn.Pos,
		Turn: pos.TurnNum - 1,
	}}
	return nil
}

// FEN renders the position. Castling rights and the en passant square are
// derived from piece histories; the halfmove clock is not tracked and is
// always 0.
func FEN(pos *chess.Position) string {
	var sb strings.Builder
	for y := 0; y < chess.BoardSize; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < chess.BoardSize; x++ {
			p := pos.PieceAt(chess.Coord{X: x, Y: y})
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := p.Kind.Letter()
			if p.Colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	side := "w"
	if pos.Turn == chess.Black {
		side = "b"
	}
	fullmove := (pos.TurnNum + 1) / 2
	return fmt.Sprintf("%s %s %s %s 0 %d", sb.String(), side, castlingField(pos), enPassantField(pos), fullmove)
}

func castlingField(pos *chess.Position) string {
	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		y := chess.BackRank(colour)
		king := pos.PieceAt(chess.Coord{X: kingFile, Y: y})
		if king == nil || king.Kind != chess.King || king.Colour != colour || king.HasMoved() {
			continue
		}
		for _, side := range []struct {
			file   int
			letter rune
		}{{7, 'K'}, {0, 'Q'}} {
			rook := pos.PieceAt(chess.Coord{X: side.file, Y: y})
			if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved() {
				continue
			}
			letter := side.letter
			if colour == chess.Black {
				letter = unicode.ToLower(letter)
			}
			sb.WriteRune(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func enPassantField(pos *chess.Position) string {
	for _, p := range pos.Live(pos.Turn.Opposite()) {
		if p.Kind != chess.Pawn || len(p.History) != 1 {
			continue
		}
		last := p.History[0]
		if last.Tag == chess.PawnDoubleAdvance && last.Turn == pos.TurnNum-1 {
			return p.Pos.Add(0, -chess.PawnDirection(p.Colour)).String()
		}
	}
	return "-"
}
