package board

import (
	"fmt"
	"strings"
)

// ParseMove converts UCI text (e2e4, e7e8q, 0000) into a Move. Without a
// position it can only tell promotions from normal moves; see ClassifyMove.
func ParseMove(text string) (Move, error) {
	s := strings.TrimSpace(text)
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return NullMove, fmt.Errorf("%w %q: want 4 or 5 characters", ErrInvalidMove, text)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("%w %q: %v", ErrInvalidMove, text, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("%w %q: %v", ErrInvalidMove, text, err)
	}
	if from == to {
		// also keeps "a1a1" from decoding to NullMove
		return NullMove, fmt.Errorf("%w %q: source and destination are the same square", ErrInvalidMove, text)
	}
	if len(s) == 4 {
		return NewMove(from, to, Normal), nil
	}
	pt, ok := PieceTypeFromLetter(s[4])
	if !ok || pt < Knight || pt > Queen {
		return NullMove, fmt.Errorf("%w %q: invalid promotion piece", ErrInvalidMove, text)
	}
	return NewPromotion(from, to, pt), nil
}

// ClassifyMove fills in the category that move text cannot express, using
// the piece on the source square:
//
//   - a pawn moving two ranks is a DoublePush;
//   - a pawn changing file onto an empty square is EnPassant;
//   - a king moving more than one file is a Castle.
//
// This is a best-effort reading of moves assumed to be valid, not a legality
// check; MakeMove still validates the result. Only an empty source square is
// reported as an error.
func (p *Position) ClassifyMove(m Move) (Move, error) {
	from, to := m.From(), m.To()
	pc := p.pieces[from]
	if pc == NoPiece {
		return m, illegal(m, ErrEmptySquare)
	}
	switch pc.Type() {
	case Pawn:
		if abs(int(from.Rank())-int(to.Rank())) == 2 {
			return m.WithKind(DoublePush), nil
		}
		if from.File() != to.File() && p.pieces[to] == NoPiece {
			return m.WithKind(EnPassant), nil
		}
	case King:
		if abs(int(from.File())-int(to.File())) > 1 {
			return m.WithKind(Castle), nil
		}
	}
	return m, nil
}

// ParseMoveFor parses UCI text and classifies it against p.
func (p *Position) ParseMoveFor(text string) (Move, error) {
	m, err := ParseMove(text)
	if err != nil {
		return NullMove, err
	}
	return p.ClassifyMove(m)
}
