package board

// MoveState holds the minimal state needed to undo a move.
type MoveState struct {
	move          Move
	captured      Piece // for en passant, the pawn taken behind the target square
	prevEnPassant File
	prevCastling  CastlingRights
	prevHalfmove  int
	prevZobrist   uint64
}

// Move returns the move this state undoes.
func (st MoveState) Move() Move { return st.move }

// Captured returns the piece removed by the move, or NoPiece.
func (st MoveState) Captured() Piece { return st.captured }

// PrevEnPassantFile returns the en passant file before the move.
func (st MoveState) PrevEnPassantFile() File { return st.prevEnPassant }

// PrevCastlingRights returns the castling rights before the move.
func (st MoveState) PrevCastlingRights() CastlingRights { return st.prevCastling }

// MakeMove applies m for the side to move and returns the state needed to
// undo it. Moves that break the board contract (empty source, wrong side, own
// capture, a path the piece cannot take or a shape that does not match the
// move category, castling)
// are rejected with a *MoveError and leave the position unchanged. Leaving the
// mover's king in check is not detected.
func (p *Position) MakeMove(m Move) (MoveState, error) {
	if err := p.checkMove(m); err != nil {
		return MoveState{}, err
	}

	us := p.sideToMove
	from, to := m.From(), m.To()
	moved := p.pieces[from]

	st := MoveState{
		move:          m,
		captured:      p.pieces[to],
		prevEnPassant: p.epFile,
		prevCastling:  p.castlingRights,
		prevHalfmove:  p.halfmoveClock,
		prevZobrist:   p.zobristKey,
	}

	p.setPiece(from, NoPiece)
	p.setPiece(to, moved)
	p.setEnPassant(NoFile)

	switch m.Kind() {
	case DoublePush:
		p.setEnPassant(to.File())
	case EnPassant:
		// Captured pawn is behind 'to'
		victim, _ := to.Down(us)
		st.captured = p.pieces[victim]
		p.setPiece(victim, NoPiece)
	case Promotion:
		p.setPiece(to, NewPiece(m.PromotionType(), us))
	}

	p.setCastling(p.castlingRights &^ rightsLostAt[from] &^ rightsLostAt[to])

	if moved.Type() == Pawn || st.captured != NoPiece {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if us == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = us.Opposite()
	p.zobristKey ^= zobristSide
	return st, nil
}

// UnmakeMove undoes the move recorded in st. States must be undone in the
// reverse order they were made; anything else corrupts the position.
func (p *Position) UnmakeMove(st MoveState) {
	m := st.move
	p.sideToMove = p.sideToMove.Opposite()
	us := p.sideToMove
	if us == Black {
		p.fullmoveNumber--
	}

	from, to := m.From(), m.To()
	moved := p.pieces[to]
	if m.Kind() == Promotion {
		moved = NewPiece(Pawn, us)
	}
	p.pieces[from] = moved
	if m.Kind() == EnPassant {
		victim, _ := to.Down(us)
		p.pieces[to] = NoPiece
		p.pieces[victim] = st.captured
	} else {
		p.pieces[to] = st.captured
	}

	p.epFile = st.prevEnPassant
	p.castlingRights = st.prevCastling
	p.halfmoveClock = st.prevHalfmove
	// Ensure exact Zobrist restoration
	p.zobristKey = st.prevZobrist
}

// Apply plays a move and returns an undo closure. It panics if MakeMove
// rejects the move.
func (p *Position) Apply(m Move) func() {
	st, err := p.MakeMove(m)
	if err != nil {
		panic("board.Apply: " + err.Error())
	}
	return func() { p.UnmakeMove(st) }
}

func (p *Position) checkMove(m Move) error {
	us := p.sideToMove
	from, to := m.From(), m.To()
	moved := p.pieces[from]
	target := p.pieces[to]

	switch {
	case moved == NoPiece:
		return illegal(m, ErrEmptySquare)
	case moved.Color() != us:
		return illegal(m, ErrWrongSide)
	case target != NoPiece && target.Color() == us:
		return illegal(m, ErrOwnCapture)
	}

	kind := m.Kind()
	if kind == Castle {
		// TODO: move the rook and validate the king's path once castling is generated.
		return &MoveError{Move: m, Err: ErrUnsupportedMove}
	}
	if moved.Type() != Pawn {
		if kind != Normal || !p.reaches(moved.Type(), from, to) {
			return illegal(m, ErrBadGeometry)
		}
		return nil
	}

	up, ok := from.Up(us)
	if !ok {
		return illegal(m, ErrBadGeometry)
	}
	fileDelta := abs(int(to.File()) - int(from.File()))
	lastRank := to.RelativeRank(us) == Rank8

	switch kind {
	case Normal, Promotion:
		if lastRank != (kind == Promotion) {
			if lastRank {
				return illegal(m, ErrPromotionRequired)
			}
			return illegal(m, ErrBadGeometry)
		}
		if to.Rank() != up.Rank() {
			return illegal(m, ErrBadGeometry)
		}
		switch fileDelta {
		case 0:
			if target != NoPiece {
				return illegal(m, ErrBadGeometry)
			}
		case 1:
			if target == NoPiece {
				return illegal(m, ErrBadGeometry)
			}
		default:
			return illegal(m, ErrBadGeometry)
		}
	case DoublePush:
		two, ok := up.Up(us)
		if !ok || from.RelativeRank(us) != Rank2 || to != two ||
			p.pieces[up] != NoPiece || target != NoPiece {
			return illegal(m, ErrBadGeometry)
		}
	case EnPassant:
		victim, _ := to.Down(us)
		if p.epFile == NoFile || to != p.EnPassantSquare() || target != NoPiece || fileDelta != 1 ||
			to.Rank() != up.Rank() || p.pieces[victim] != NewPiece(Pawn, us.Opposite()) {
			return illegal(m, ErrBadGeometry)
		}
	}
	return nil
}

// reaches reports whether a piece of type pt on from moves onto to in one
// step or along an unobstructed line.
func (p *Position) reaches(pt PieceType, from, to Square) bool {
	dr := int(to.Rank()) - int(from.Rank())
	df := int(to.File()) - int(from.File())
	switch pt {
	case Knight:
		return hasOffset(knightOffsets[:], dr, df)
	case King:
		return hasOffset(kingOffsets[:], dr, df)
	case Bishop:
		return p.slidesTo(from, to, bishopDirections[:])
	case Rook:
		return p.slidesTo(from, to, rookDirections[:])
	case Queen:
		return p.slidesTo(from, to, rookDirections[:]) || p.slidesTo(from, to, bishopDirections[:])
	}
	return false
}

func hasOffset(offsets [][2]int, dr, df int) bool {
	for _, off := range offsets {
		if off[0] == dr && off[1] == df {
			return true
		}
	}
	return false
}

func (p *Position) slidesTo(from, to Square, directions [][2]int) bool {
	for _, dir := range directions {
		sq, ok := from.Offset(dir[0], dir[1])
		for ok {
			if sq == to {
				return true
			}
			if p.pieces[sq] != NoPiece {
				break
			}
			sq, ok = sq.Offset(dir[0], dir[1])
		}
	}
	return false
}
