package board

// MoveKind is the category of a move.
type MoveKind uint8

const (
	Normal MoveKind = iota
	DoublePush
	EnPassant
	Castle
	Promotion
)

func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case DoublePush:
		return "double-push"
	case EnPassant:
		return "en-passant"
	case Castle:
		return "castle"
	case Promotion:
		return "promotion"
	}
	return "unknown"
}

// Move encodes a chess move in a 16-bit value.
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift = 0  // 6 bits
	moveToShift   = 6  // 6 bits
	moveFlagShift = 12 // 4 bits
)

// Flag values 4..7 are promotions to Knight, Bishop, Rook and Queen.
const (
	flagNormal     = 0
	flagDoublePush = 1
	flagEnPassant  = 2
	flagCastle     = 3
	flagPromoBase  = 4
)

// NullMove is the zero Move; UCI prints it as "0000". Its bits coincide with
// a1a1, which ParseMove never produces.
const NullMove Move = 0

// PromotionTypes lists the legal promotion targets, strongest first.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func newMove(from, to Square, flag uint16) Move {
	return Move(uint16(from&0x3F)<<moveFromShift | uint16(to&0x3F)<<moveToShift | flag<<moveFlagShift)
}

// NewMove constructs a non-promotion move of the given kind. Promotion falls
// back to a queen; use NewPromotion to choose the target.
func NewMove(from, to Square, kind MoveKind) Move {
	switch kind {
	case DoublePush:
		return newMove(from, to, flagDoublePush)
	case EnPassant:
		return newMove(from, to, flagEnPassant)
	case Castle:
		return newMove(from, to, flagCastle)
	case Promotion:
		return NewPromotion(from, to, Queen)
	}
	return newMove(from, to, flagNormal)
}

// NewPromotion constructs a promotion to pt, which must be one of
// Knight, Bishop, Rook or Queen.
func NewPromotion(from, to Square, pt PieceType) Move {
	if pt < Knight || pt > Queen {
		panic("board: invalid promotion target " + pt.String())
	}
	return newMove(from, to, flagPromoBase+uint16(pt-Knight))
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint16(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint16(m) >> moveToShift) & 0x3F) }

func (m Move) flag() uint16 { return (uint16(m) >> moveFlagShift) & 0xF }

// Kind returns the move category.
func (m Move) Kind() MoveKind {
	f := m.flag()
	if f >= flagPromoBase {
		return Promotion
	}
	return MoveKind(f)
}

// PromotionType returns the promotion target, or NoPieceType.
func (m Move) PromotionType() PieceType {
	f := m.flag()
	if f < flagPromoBase {
		return NoPieceType
	}
	return Knight + PieceType(f-flagPromoBase)
}

// WithKind returns m with its category replaced, keeping any promotion target
// when kind is Promotion.
func (m Move) WithKind(kind MoveKind) Move {
	if kind == Promotion && m.Kind() == Promotion {
		return m
	}
	return NewMove(m.From(), m.To(), kind)
}

// String produces the UCI long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if pt := m.PromotionType(); pt != NoPieceType {
		s += string(pt.Letter())
	}
	return s
}
