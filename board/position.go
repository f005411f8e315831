// Package board models a chess position: the 64-cell board, FEN encoding,
// reversible move application and pseudo-legal move generation.
package board

import "strings"

// Position represents the chess board state, including piece placement and game state.
type Position struct {
	// Piece placement array for each square (NoPiece when empty)
	pieces [64]Piece

	// Side to move (which player's turn it is)
	sideToMove Color

	// File of the en passant target, or NoFile. The rank follows from the
	// side to move: rank 6 when White is to move, rank 3 when Black is.
	epFile File

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// Zobrist hash key for the current position
	zobristKey uint64
}

// NewEmptyPosition returns a board with no pieces, White to move, move 1.
func NewEmptyPosition() *Position {
	p := &Position{epFile: NoFile, fullmoveNumber: 1}
	p.zobristKey = p.ComputeZobrist()
	return p
}

// NewPosition returns the standard starting position.
func NewPosition() *Position { return MustParseFEN(StartFEN) }

// Clone returns an independent copy.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// PieceAt returns the piece on a square.
func (p *Position) PieceAt(sq Square) Piece { return p.pieces[sq] }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling permissions.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantFile returns the file of the en passant target or NoFile.
func (p *Position) EnPassantFile() File { return p.epFile }

// EnPassantSquare returns the en passant target square or NoSquare.
func (p *Position) EnPassantSquare() Square {
	if p.epFile == NoFile {
		return NoSquare
	}
	return epSquare(p.epFile, p.sideToMove)
}

// epSquare resolves an en passant file against the side to move.
func epSquare(f File, toMove Color) Square {
	r := Rank6
	if toMove == Black {
		r = Rank3
	}
	sq, _ := SquareAt(r, f)
	return sq
}

// HalfmoveClock accessor for consumers that want read-only access.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Hash returns the current Zobrist hash key.
func (p *Position) Hash() uint64 { return p.zobristKey }

// setPiece places pc on sq, replacing whatever was there, and keeps the
// Zobrist key in sync.
func (p *Position) setPiece(sq Square, pc Piece) {
	if old := p.pieces[sq]; old != NoPiece {
		p.zobristKey ^= zobristPiece[old][sq]
	}
	p.pieces[sq] = pc
	if pc != NoPiece {
		p.zobristKey ^= zobristPiece[pc][sq]
	}
}

func (p *Position) setEnPassant(f File) {
	if p.epFile != NoFile {
		p.zobristKey ^= zobristEnPassant[p.epFile]
	}
	p.epFile = f
	if f != NoFile {
		p.zobristKey ^= zobristEnPassant[f]
	}
}

func (p *Position) setCastling(cr CastlingRights) {
	if cr == p.castlingRights {
		return
	}
	p.zobristKey ^= zobristCastle[p.castlingRights]
	p.zobristKey ^= zobristCastle[cr]
	p.castlingRights = cr
}

// String renders an 8x8 diagram with piece glyphs, rank 8 on top.
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteByte(r.Byte())
		for f := FileA; f <= FileH; f++ {
			sq, _ := SquareAt(r, f)
			sb.WriteByte(' ')
			if pc := p.pieces[sq]; pc != NoPiece {
				sb.WriteString(pc.Glyph())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
