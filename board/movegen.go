package board

// Offsets are (rank, file) deltas.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Rook directions: N, S, E, W
var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Bishop directions: NE, NW, SE, SW
var bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// GeneratePseudoMoves returns all pseudo-legal moves (allocates a new slice).
func (p *Position) GeneratePseudoMoves() []Move {
	return p.GeneratePseudoMovesInto(make([]Move, 0, 64))
}

// GeneratePseudoMovesInto appends all pseudo-legal moves for the side to move
// into dst and returns it. The dst slice is truncated (len=0) and reused when
// capacity suffices.
//
// Pseudo-legal obeys piece movement and blockers but never checks whether the
// mover's king is left in check. Castling is not generated. Order is
// unspecified.
func (p *Position) GeneratePseudoMovesInto(dst []Move) []Move {
	dst = dst[:0]
	us := p.sideToMove
	for sq := A1; sq <= H8; sq++ {
		pc := p.pieces[sq]
		if pc == NoPiece || pc.Color() != us {
			continue
		}
		switch pc.Type() {
		case Pawn:
			dst = p.pawnMoves(dst, sq)
		case Knight:
			dst = p.stepMoves(dst, sq, knightOffsets[:])
		case King:
			dst = p.stepMoves(dst, sq, kingOffsets[:])
		case Bishop:
			dst = p.slideMoves(dst, sq, bishopDirections[:])
		case Rook:
			dst = p.slideMoves(dst, sq, rookDirections[:])
		case Queen:
			dst = p.slideMoves(dst, sq, rookDirections[:])
			dst = p.slideMoves(dst, sq, bishopDirections[:])
		}
	}
	return dst
}

// canLand reports whether a piece of the side to move may end on sq.
func (p *Position) canLand(sq Square) bool {
	pc := p.pieces[sq]
	return pc == NoPiece || pc.Color() != p.sideToMove
}

func (p *Position) stepMoves(dst []Move, from Square, offsets [][2]int) []Move {
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if ok && p.canLand(to) {
			dst = append(dst, NewMove(from, to, Normal))
		}
	}
	return dst
}

func (p *Position) slideMoves(dst []Move, from Square, directions [][2]int) []Move {
	for _, dir := range directions {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			pc := p.pieces[to]
			if pc != NoPiece {
				if pc.Color() != p.sideToMove {
					dst = append(dst, NewMove(from, to, Normal))
				}
				break
			}
			dst = append(dst, NewMove(from, to, Normal))
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return dst
}

var pawnCaptureSteps = [2]func(Square, Color) (Square, bool){Square.Left, Square.Right}

func (p *Position) pawnMoves(dst []Move, from Square) []Move {
	us := p.sideToMove
	up, ok := from.Up(us)
	if !ok {
		return dst
	}

	if p.pieces[up] == NoPiece {
		dst = appendPawnMove(dst, from, up, us)
		if from.RelativeRank(us) == Rank2 {
			if two, ok := up.Up(us); ok && p.pieces[two] == NoPiece {
				dst = append(dst, NewMove(from, two, DoublePush))
			}
		}
	}

	ep := p.EnPassantSquare()
	for _, step := range pawnCaptureSteps {
		to, ok := step(up, us)
		if !ok {
			continue
		}
		target := p.pieces[to]
		switch {
		case target != NoPiece && target.Color() != us:
			dst = appendPawnMove(dst, from, to, us)
		case target == NoPiece && to == ep && p.hasEnPassantVictim(to):
			dst = append(dst, NewMove(from, to, EnPassant))
		}
	}
	return dst
}

// hasEnPassantVictim reports whether an enemy pawn sits behind the en passant
// target. FEN input may name a target with nothing to capture.
func (p *Position) hasEnPassantVictim(target Square) bool {
	victim, ok := target.Down(p.sideToMove)
	return ok && p.pieces[victim] == NewPiece(Pawn, p.sideToMove.Opposite())
}

// appendPawnMove emits one move, or one promotion per target on the last rank.
func appendPawnMove(dst []Move, from, to Square, us Color) []Move {
	if to.RelativeRank(us) != Rank8 {
		return append(dst, NewMove(from, to, Normal))
	}
	for _, pt := range PromotionTypes {
		dst = append(dst, NewPromotion(from, to, pt))
	}
	return dst
}
