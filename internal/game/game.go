// Package game is the in-process surface of the chess core: it owns the
// live position, applies and narrates moves, and exposes the inspection and
// engine calls a front end needs.
package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/config"
	"github.com/ilygor/chessjerk/internal/engine"
	"github.com/ilygor/chessjerk/internal/errors"
	"github.com/ilygor/chessjerk/internal/eval"
	"github.com/ilygor/chessjerk/internal/hashing"
	"github.com/ilygor/chessjerk/internal/record"
	"github.com/ilygor/chessjerk/internal/search"
)

// Game is a single game in progress. It is not safe for concurrent use.
type Game struct {
	pos      *chess.Position
	ev       *eval.Evaluator
	searcher *search.Searcher
	log      zerolog.Logger
	seen     *hashing.Table

	// Silent suppresses move narration.
	Silent bool
}

// New starts a game from cfg: the FEN position if set, otherwise a random
// position when Seed is non-zero, otherwise the standard setup. A nil sink
// discards search tables.
func New(cfg *config.Config, log zerolog.Logger, sink record.Sink) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	var pos *chess.Position
	switch {
	case cfg.FEN != "":
		p, err := engine.NewPositionFromFEN(cfg.FEN)
		if err != nil {
			return nil, err
		}
		pos = p
	case cfg.Seed != 0:
		pos = engine.NewRandomPosition(cfg.Seed)
	default:
		pos = engine.NewStandardPosition()
	}

	ev := eval.New(cfg.Eval)
	g := &Game{
		pos:      pos,
		ev:       ev,
		searcher: search.New(cfg.Search, ev, log, sink),
		log:      log,
		seen:     hashing.NewTable(),
	}
	g.seen.Add(pos)
	return g, nil
}

// Position returns the live position. Callers must not mutate it.
func (g *Game) Position() *chess.Position {
	return g.pos
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.pos.Turn
}

// FEN renders the live position.
func (g *Game) FEN() string {
	return engine.FEN(g.pos)
}

// Move plays the piece on from to to. The move must be legal for the side
// to move and must not leave the mover's king attacked; a rejected move
// leaves the game unchanged.
func (g *Game) Move(from, to chess.Coord) (engine.Outcome, error) {
	before := g.pos.Clone()
	out, err := engine.ApplyFrom(g.pos, from, to, true)
	if err != nil {
		return engine.Outcome{}, err
	}
	if out.InCheck {
		piece := before.PieceAt(from)
		g.pos = before
		return engine.Outcome{}, &errors.MoveError{
			Err:   errors.ErrKingInCheck,
			Piece: piece.Colour.String() + " " + piece.Kind.String(),
			From:  from.String(),
			To:    to.String(),
			Turn:  before.TurnNum,
		}
	}
	g.record(before, out)
	return out, nil
}

// MoveText parses two coordinates and plays them.
func (g *Game) MoveText(from, to string) (engine.Outcome, error) {
	f, err := chess.ParseCoord(from)
	if err != nil {
		return engine.Outcome{}, err
	}
	t, err := chess.ParseCoord(to)
	if err != nil {
		return engine.Outcome{}, err
	}
	return g.Move(f, t)
}

// Scores lists every legal move of the side to move with its evaluation,
// best first.
func (g *Game) Scores() []search.ScoredMove {
	return search.ScoreMoves(g.pos, g.ev)
}

// ChooseMove runs the search on the live position without playing the result.
func (g *Game) ChooseMove(ctx context.Context) (search.Choice, error) {
	return g.searcher.ChooseMove(ctx, g.pos)
}

// PlayEngine searches the live position and plays the chosen move. Unlike
// Move it accepts a choice that leaves the engine's own king attacked, since
// the search already prefers every alternative.
func (g *Game) PlayEngine(ctx context.Context) (search.Choice, engine.Outcome, error) {
	choice, err := g.searcher.ChooseMove(ctx, g.pos)
	if err != nil {
		return search.Choice{}, engine.Outcome{}, err
	}
	before := g.pos.Clone()
	out, err := engine.ApplyMove(g.pos, choice.Piece, choice.To, true)
	if err != nil {
		return choice, engine.Outcome{}, err
	}
	g.record(before, out)
	return choice, out, nil
}

// record narrates an applied move and counts the resulting position.
func (g *Game) record(before *chess.Position, out engine.Outcome) {
	n := g.seen.Add(g.pos)
	if g.Silent {
		return
	}

	mover := before.Piece(out.Piece)
	entry := g.log.Info().
		Int("turn", before.TurnNum).
		Str("piece", mover.Symbol()).
		Str("from", out.From.String()).
		Str("to", out.To.String())
	if out.Captured != chess.NoPiece {
		entry = entry.Str("captured", before.Piece(out.Captured).Symbol())
	}
	if out.Rook != chess.NoPiece {
		entry = entry.Str("rook", out.RookFrom.String()+"-"+out.RookTo.String())
	}
	if out.GivesCheck {
		entry = entry.Bool("check", true)
	}
	if n > 1 {
		entry = entry.Int("repetition", n)
	}
	entry.Msg(narrate(mover, out))
}

func narrate(mover *chess.Piece, out engine.Outcome) string {
	var b strings.Builder
	switch {
	case out.Tag.IsCastle():
		fmt.Fprintf(&b, "%s castles", mover.Colour)
	case out.Captured != chess.NoPiece:
		fmt.Fprintf(&b, "%s %s takes on %s", mover.Colour, mover.Kind, out.To)
	default:
		fmt.Fprintf(&b, "%s %s to %s", mover.Colour, mover.Kind, out.To)
	}
	if out.GivesCheck {
		b.WriteString(", check")
	}
	return b.String()
}
