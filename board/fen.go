package board

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses the six whitespace-separated FEN fields. It checks structure
// only (no king counts, no reachability). On error no Position is returned.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fenError("fields", fen, "want 6 fields, got "+strconv.Itoa(len(fields)))
	}

	p := &Position{epFile: NoFile}

	// 1. Piece placement
	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fenError("side", fields[1], "must be 'w' or 'b'")
	}

	// 3. Castling rights
	cr, ok := ParseCastlingRights(fields[2])
	if !ok {
		return nil, fenError("castling", fields[2], "want '-' or letters from KQkq")
	}
	p.castlingRights = cr

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fenError("en-passant", fields[3], "not a square")
		}
		if sq != epSquare(sq.File(), p.sideToMove) {
			return nil, fenError("en-passant", fields[3], "rank does not match side to move")
		}
		p.epFile = sq.File()
	}

	// 5. Halfmove clock
	halfmove, err := strconv.ParseUint(fields[4], 10, 31)
	if err != nil {
		return nil, fenError("halfmove", fields[4], "not a non-negative integer")
	}
	p.halfmoveClock = int(halfmove)

	// 6. Fullmove number
	fullmove, err := strconv.ParseUint(fields[5], 10, 31)
	if err != nil {
		return nil, fenError("fullmove", fields[5], "not a non-negative integer")
	}
	p.fullmoveNumber = int(fullmove)

	p.zobristKey = p.ComputeZobrist()
	return p, nil
}

// MustParseFEN is ParseFEN for known-good input; it panics on error.
func MustParseFEN(fen string) *Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenError("placement", placement, "want 8 ranks")
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				if j > 0 && rankStr[j-1] >= '0' && rankStr[j-1] <= '9' {
					return fenError("placement", rankStr, "adjacent digits")
				}
				f += File(ch - '0')
				if f > FileH+1 {
					return fenError("placement", rankStr, "rank has more than 8 squares")
				}
				continue
			}
			pc := pieceFromChar(ch)
			if pc == NoPiece {
				return fenError("placement", rankStr, "unrecognized character "+strconv.QuoteRune(rune(ch)))
			}
			if f > FileH {
				return fenError("placement", rankStr, "rank has more than 8 squares")
			}
			sq, _ := SquareAt(r, f)
			p.pieces[sq] = pc
			f++
		}
		if f != FileH+1 {
			return fenError("placement", rankStr, "rank does not have 8 squares")
		}
	}
	return nil
}

// FEN produces the FEN string representation of the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			sq, _ := SquareAt(r, f)
			pc := p.pieces[sq]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r > Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(p.EnPassantSquare().String())
	sb.WriteByte(' ')

	// 5. Halfmove clock and 6. fullmove number
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}
