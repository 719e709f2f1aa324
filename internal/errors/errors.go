// Package errors provides sentinel errors and error types for the chess core.
// It defines the move-rejection taxonomy and a structured error type that
// preserves move context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a destination outside the mover's legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongTurn indicates a piece moved out of turn.
	ErrWrongTurn = errors.New("wrong turn")

	// ErrNoPieceAtOrigin indicates a move request from an empty square.
	ErrNoPieceAtOrigin = errors.New("no piece at origin")

	// ErrKingInCheck indicates a move that would leave the mover's king attacked.
	ErrKingInCheck = errors.New("king left in check")

	// ErrMalformedCoordinate indicates a square that could not be parsed.
	ErrMalformedCoordinate = errors.New("malformed coordinate")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoLegalMoves indicates the side to move has nothing to play.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrRecordSink indicates a failure persisting the search record table.
	ErrRecordSink = errors.New("record sink failure")
)

// MoveError wraps a rejection with the move that caused it. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Piece string // Description of the acting piece, e.g. "white pawn"
	From  string // Origin square in algebraic form
	To    string // Destination square in algebraic form
	Turn  int    // Turn counter when the move was attempted (0 if unknown)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}

	move := e.From + "->" + e.To
	if e.Piece != "" {
		move = e.Piece + " " + move
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, move)
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
