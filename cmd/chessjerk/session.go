// session.go - Interactive command loop
package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/config"
	"github.com/ilygor/chessjerk/internal/errors"
	"github.com/ilygor/chessjerk/internal/game"
)

// session drives one game from text commands.
type session struct {
	g      *game.Game
	out    io.Writer
	engine map[chess.Colour]bool
}

func newSession(g *game.Game, out io.Writer, engine map[chess.Colour]bool) *session {
	return &session{g: g, out: out, engine: engine}
}

// engineSides resolves which colours the engine plays.
func engineSides(cfg *config.Config, auto bool) map[chess.Colour]bool {
	if auto {
		return map[chess.Colour]bool{chess.White: true, chess.Black: true}
	}
	switch cfg.EngineSide {
	case "white":
		return map[chess.Colour]bool{chess.White: true}
	case "black":
		return map[chess.Colour]bool{chess.Black: true}
	}
	return map[chess.Colour]bool{}
}

var errQuit = stderrors.New("quit")

// run reads commands until quit, end of input or the end of the game.
func (s *session) run(ctx context.Context, in io.Reader) error {
	if err := s.g.WriteBoard(s.out); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if over, err := s.engineTurns(ctx); err != nil || over {
			return err
		}

		fmt.Fprintf(s.out, "%s> ", s.g.Turn())
		if !scanner.Scan() {
			return scanner.Err()
		}
		err := s.execute(ctx, scanner.Text())
		switch {
		case stderrors.Is(err, errQuit):
			return nil
		case isRetryable(err):
			fmt.Fprintf(s.out, "%v\n", err)
		case err != nil:
			return err
		}
	}
}

// autoplay lets the engine play until the game ends or maxTurns plies.
func (s *session) autoplay(ctx context.Context, maxTurns int) error {
	for i := 0; i < maxTurns; i++ {
		if over, err := s.engineMove(ctx); err != nil || over {
			return err
		}
	}
	return s.g.WriteBoard(s.out)
}

// engineTurns plays while the side to move belongs to the engine.
func (s *session) engineTurns(ctx context.Context) (bool, error) {
	for s.engine[s.g.Turn()] {
		over, err := s.engineMove(ctx)
		if err != nil || over {
			return over, err
		}
	}
	return s.reportOver(), nil
}

func (s *session) engineMove(ctx context.Context) (bool, error) {
	if s.reportOver() {
		return true, nil
	}
	choice, _, err := s.g.PlayEngine(ctx)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(s.out, "engine plays %s %s (%.1f)\n", choice.From, choice.To, choice.Worst)
	return false, s.g.WriteBoard(s.out)
}

// reportOver prints and reports a finished game.
func (s *session) reportOver() bool {
	st := s.g.Status()
	switch {
	case st.Checkmate:
		fmt.Fprintf(s.out, "checkmate, %s wins\n", st.Turn.Opposite())
	case st.Stalemate:
		fmt.Fprintf(s.out, "stalemate\n")
	default:
		return false
	}
	return true
}

func (s *session) execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return errQuit
	case "board":
		return s.g.WriteBoard(s.out)
	case "fen":
		fmt.Fprintln(s.out, s.g.FEN())
		return nil
	case "scores":
		for _, m := range s.g.Scores() {
			b := m.Breakdown
			fmt.Fprintf(s.out, "%s %s %6.1f  targeting %.1f targeted %.1f backup %.1f center %.1f capture %.1f mate %.1f\n",
				m.From, m.To, m.Score, b.Targeting, b.Targeted, b.Backup, b.Center, b.Capture, b.Mate)
		}
		return nil
	case "ai":
		choice, err := s.g.ChooseMove(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s %s  score %.1f worst %.1f  (%d leaves, %d unique)\n",
			choice.From, choice.To, choice.Score, choice.Worst, choice.Leaves, choice.UniqueLeaves)
		return nil
	case "info":
		if len(fields) != 2 {
			return fmt.Errorf("usage: info <square>: %w", errors.ErrMalformedCoordinate)
		}
		return s.info(fields[1])
	}

	if len(fields) != 2 {
		return fmt.Errorf("unknown command %q: %w", line, errors.ErrMalformedCoordinate)
	}
	out, err := s.g.MoveText(fields[0], fields[1])
	if err != nil {
		return err
	}
	if out.GivesCheck {
		fmt.Fprintln(s.out, "check")
	}
	return s.g.WriteBoard(s.out)
}

func (s *session) info(square string) error {
	c, err := chess.ParseCoord(square)
	if err != nil {
		return err
	}
	info, ok := s.g.PieceAt(c)
	if !ok {
		fmt.Fprintf(s.out, "%s is empty\n", c)
		return nil
	}

	legal := make([]string, len(info.Legal))
	for i, to := range info.Legal {
		legal[i] = to.String()
	}
	fmt.Fprintf(s.out, "%s at %s, %d moves made\n", info.Label, info.At, info.Moves)
	fmt.Fprintf(s.out, "  legal:   %s\n", strings.Join(legal, " "))
	fmt.Fprintf(s.out, "  targets: %s\n", strings.Join(info.Targets, ", "))
	fmt.Fprintf(s.out, "  threats: %s\n", strings.Join(info.Threats, ", "))
	fmt.Fprintf(s.out, "  backups: %s\n", strings.Join(info.Backups, ", "))
	return nil
}

// isRetryable reports whether err is a rejected command the user can retry.
func isRetryable(err error) bool {
	for _, target := range []error{
		errors.ErrIllegalMove,
		errors.ErrWrongTurn,
		errors.ErrNoPieceAtOrigin,
		errors.ErrMalformedCoordinate,
		errors.ErrKingInCheck,
	} {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}
