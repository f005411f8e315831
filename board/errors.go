package board

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrInvalidFEN indicates malformed notation text.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidMove indicates malformed UCI move text.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrIllegalMove indicates a move that cannot be applied to the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnsupportedMove indicates a move category that has no board effect yet.
	ErrUnsupportedMove = errors.New("unsupported move")
)

// Reasons carried by a MoveError.
var (
	ErrEmptySquare       = errors.New("no piece on source square")
	ErrWrongSide         = errors.New("piece does not belong to the side to move")
	ErrOwnCapture        = errors.New("destination holds a piece of the mover")
	ErrBadGeometry       = errors.New("move shape does not match its category")
	ErrPromotionRequired = errors.New("pawn reaching the last rank must promote")
)

// FENError describes which FEN field failed to parse.
type FENError struct {
	Field  string // placement, side, castling, en-passant, halfmove, fullmove or fields
	Value  string
	Reason string
}

func (e *FENError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%v: %s: %s", ErrInvalidFEN, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: %s %q: %s", ErrInvalidFEN, e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidFEN.
func (e *FENError) Unwrap() error { return ErrInvalidFEN }

func fenError(field, value, reason string) error {
	return &FENError{Field: field, Value: value, Reason: reason}
}

// MoveError reports a move rejected by MakeMove. Err is ErrIllegalMove or
// ErrUnsupportedMove; Reason is one of the detail sentinels above, if any.
type MoveError struct {
	Move   Move
	Err    error
	Reason error
}

func (e *MoveError) Error() string {
	if e.Reason == nil {
		return fmt.Sprintf("%v %s (%s)", e.Err, e.Move, e.Move.Kind())
	}
	return fmt.Sprintf("%v %s (%s): %v", e.Err, e.Move, e.Move.Kind(), e.Reason)
}

// Unwrap exposes both the category and the reason to errors.Is.
func (e *MoveError) Unwrap() []error {
	if e.Reason == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Reason}
}

func illegal(m Move, reason error) error {
	return &MoveError{Move: m, Err: ErrIllegalMove, Reason: reason}
}
