package board

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Rank is a board row, 0 for rank 1 up to 7 for rank 8.
type Rank int8

// File is a board column, 0 for the a-file up to 7 for the h-file.
type File int8

// NoFile marks an absent file (e.g. no en passant target).
const NoFile File = -1

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Valid reports whether r is one of the eight ranks.
func (r Rank) Valid() bool { return r >= Rank1 && r <= Rank8 }

// Valid reports whether f is one of the eight files.
func (f File) Valid() bool { return f >= FileA && f <= FileH }

// Byte returns '1'..'8'.
func (r Rank) Byte() byte { return '1' + byte(r) }

// Byte returns 'a'..'h'.
func (f File) Byte() byte { return 'a' + byte(f) }

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(r.Byte())
}

func (f File) String() string {
	if !f.Valid() {
		return "-"
	}
	return string(f.Byte())
}

// ParseRank converts '1'..'8' into a Rank.
func ParseRank(c byte) (Rank, bool) {
	if c < '1' || c > '8' {
		return 0, false
	}
	return Rank(c - '1'), true
}

// ParseFile converts 'a'..'h' into a File.
func ParseFile(c byte) (File, bool) {
	if c < 'a' || c > 'h' {
		return NoFile, false
	}
	return File(c - 'a'), true
}

// Square represents a board position (0-63), index = rank*8 + file.
type Square int8

// NoSquare marks an absent square.
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// SquareAt combines a rank and a file. Out-of-range input yields ok=false;
// values are never wrapped onto the board.
func SquareAt(r Rank, f File) (Square, bool) {
	if !r.Valid() || !f.Valid() {
		return NoSquare, false
	}
	return Square(int(r)*8 + int(f)), true
}

// SquareFromIndex converts a 0-63 index into a Square.
func SquareFromIndex(i int) (Square, bool) {
	if i < 0 || i > 63 {
		return NoSquare, false
	}
	return Square(i), true
}

// ParseSquare parses two-character algebraic text such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: want two characters", s)
	}
	f, okf := ParseFile(s[0])
	r, okr := ParseRank(s[1])
	if !okf || !okr {
		return NoSquare, fmt.Errorf("square %q: out of range", s)
	}
	sq, _ := SquareAt(r, f)
	return sq, nil
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool { return s >= A1 && s <= H8 }

// Index returns the 0-63 index of the square.
func (s Square) Index() int { return int(s) }

// Rank returns the row of the square.
func (s Square) Rank() Rank { return Rank(s / 8) }

// File returns the column of the square.
func (s Square) File() File { return File(s % 8) }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File().Byte(), s.Rank().Byte()})
}

// Offset steps dRank ranks and dFile files from s.
func (s Square) Offset(dRank, dFile int) (Square, bool) {
	return SquareAt(s.Rank()+Rank(dRank), s.File()+File(dFile))
}

// forward is the rank delta that moves a piece of color c towards the
// opponent's back rank.
func forward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// Up steps one rank towards c's opponent.
func (s Square) Up(c Color) (Square, bool) { return s.Offset(forward(c), 0) }

// Down steps one rank towards c's own back rank.
func (s Square) Down(c Color) (Square, bool) { return s.Offset(-forward(c), 0) }

// Left steps one file to the left as seen from c's side of the board.
func (s Square) Left(c Color) (Square, bool) { return s.Offset(0, -forward(c)) }

// Right steps one file to the right as seen from c's side of the board.
func (s Square) Right(c Color) (Square, bool) { return s.Offset(0, forward(c)) }

// RelativeRank returns the rank as counted from c's own back rank.
func (s Square) RelativeRank(c Color) Rank {
	if c == White {
		return s.Rank()
	}
	return Rank8 - s.Rank()
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
