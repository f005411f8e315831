package board

// Color is the side that owns a piece or is to move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

var pieceTypeLetters = [...]byte{'?', 'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the lowercase letter used in FEN and UCI promotions.
func (pt PieceType) Letter() byte {
	if int(pt) >= len(pieceTypeLetters) {
		return '?'
	}
	return pieceTypeLetters[pt]
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// PieceTypeFromLetter accepts p/n/b/r/q/k in either case.
func PieceTypeFromLetter(c byte) (PieceType, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	for pt := Pawn; pt <= King; pt++ {
		if pieceTypeLetters[pt] == c {
			return pt, true
		}
	}
	return NoPieceType, false
}

// Piece is a (type, color) pair. Black pieces are encoded as (type | 8) so that
// piece & 7 gives the type and piece & 8 the color. The zero value is an
// empty cell.
type Piece uint8

const NoPiece Piece = 0

const (
	WhitePawn   = Piece(Pawn)
	WhiteKnight = Piece(Knight)
	WhiteBishop = Piece(Bishop)
	WhiteRook   = Piece(Rook)
	WhiteQueen  = Piece(Queen)
	WhiteKing   = Piece(King)
	BlackPawn   = Piece(Pawn) | 8
	BlackKnight = Piece(Knight) | 8
	BlackBishop = Piece(Bishop) | 8
	BlackRook   = Piece(Rook) | 8
	BlackQueen  = Piece(Queen) | 8
	BlackKing   = Piece(King) | 8
)

// NewPiece combines a type and a side.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

// Type returns the colorless type; NoPieceType for an empty cell.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the owner. Only meaningful when p is not NoPiece.
func (p Piece) Color() Color { return Color(p >> 3 & 1) }

// Empty reports whether the cell holds no piece.
func (p Piece) Empty() bool { return p == NoPiece }

// Char returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Char() byte {
	if p == NoPiece {
		return '.'
	}
	c := p.Type().Letter()
	if p.Color() == White {
		c -= 'a' - 'A'
	}
	return c
}

var glyphs = [2][7]string{
	{" ", "♙", "♘", "♗", "♖", "♕", "♔"},
	{" ", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// Glyph returns the Unicode chess symbol for the piece.
func (p Piece) Glyph() string {
	if p == NoPiece || p.Type() > King {
		return " "
	}
	return glyphs[p.Color()][p.Type()]
}

func (p Piece) String() string { return string(p.Char()) }

// pieceFromChar converts a FEN character to the corresponding Piece.
func pieceFromChar(ch byte) Piece {
	pt, ok := PieceTypeFromLetter(ch)
	if !ok {
		return NoPiece
	}
	if ch >= 'a' && ch <= 'z' {
		return NewPiece(pt, Black)
	}
	return NewPiece(pt, White)
}
