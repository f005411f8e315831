package board

import "strings"

// CastlingRights holds the four castling permissions as bit flags.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	NoCastling  CastlingRights = 0
	AllCastling                = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

var castlingLetters = [4]struct {
	flag   CastlingRights
	letter byte
}{
	{CastlingWhiteK, 'K'},
	{CastlingWhiteQ, 'Q'},
	{CastlingBlackK, 'k'},
	{CastlingBlackQ, 'q'},
}

// NewCastlingRights builds rights from the four individual permissions.
func NewCastlingRights(whiteK, whiteQ, blackK, blackQ bool) CastlingRights {
	var cr CastlingRights
	for i, on := range [4]bool{whiteK, whiteQ, blackK, blackQ} {
		if on {
			cr |= castlingLetters[i].flag
		}
	}
	return cr
}

// Has reports whether every flag in f is set.
func (cr CastlingRights) Has(f CastlingRights) bool { return cr&f == f }

// String prints the FEN form: K, Q, k, q in that order, or "-" when empty.
func (cr CastlingRights) String() string {
	if cr&AllCastling == 0 {
		return "-"
	}
	var sb strings.Builder
	for _, cl := range castlingLetters {
		if cr.Has(cl.flag) {
			sb.WriteByte(cl.letter)
		}
	}
	return sb.String()
}

// ParseCastlingRights accepts "-" or one to four of the letters K, Q, k, q in
// any order.
func ParseCastlingRights(s string) (CastlingRights, bool) {
	if s == "-" {
		return NoCastling, true
	}
	if len(s) == 0 || len(s) > 4 {
		return NoCastling, false
	}
	var cr CastlingRights
next:
	for i := 0; i < len(s); i++ {
		for _, cl := range castlingLetters {
			if s[i] == cl.letter {
				cr |= cl.flag
				continue next
			}
		}
		return NoCastling, false
	}
	return cr, true
}

// rightsLostAt maps the home squares of kings and rooks to the rights that
// disappear once a piece leaves or is captured on them.
var rightsLostAt = map[Square]CastlingRights{
	E1: CastlingWhiteK | CastlingWhiteQ,
	H1: CastlingWhiteK,
	A1: CastlingWhiteQ,
	E8: CastlingBlackK | CastlingBlackQ,
	H8: CastlingBlackK,
	A8: CastlingBlackQ,
}
