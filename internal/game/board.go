package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/ilygor/chessjerk/internal/chess"
)

// WriteBoard prints the live position as a plain text diagram, rank 8 at
// the top. White pieces are uppercase.
func (g *Game) WriteBoard(w io.Writer) error {
	var b strings.Builder
	for y := 0; y < chess.BoardSize; y++ {
		fmt.Fprintf(&b, "%d ", chess.BoardSize-y)
		for x := 0; x < chess.BoardSize; x++ {
			b.WriteByte(' ')
			b.WriteByte(squareChar(g.pos, chess.Coord{X: x, Y: y}))
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a b c d e f g h\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func squareChar(pos *chess.Position, c chess.Coord) byte {
	p := pos.PieceAt(c)
	if p == nil {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == chess.Black {
		return letter - 'A' + 'a'
	}
	return letter
}
