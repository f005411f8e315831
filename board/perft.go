package board

// Perft counts leaf nodes (move sequences) of the pseudo-legal move tree to
// the given depth. Per-depth buffers are reused to avoid allocations.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(p, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	if pc.bufs[depth] == nil {
		pc.bufs[depth] = make([]Move, 0, 64)
	}
	return pc.bufs[depth]
}

func perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	moves := p.GeneratePseudoMovesInto(pc.bufFor(depth))
	pc.bufs[depth] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st, err := p.MakeMove(m)
		if err != nil {
			// Generated moves must always be applicable.
			panic("board.Perft: " + err.Error())
		}
		nodes += perftRec(p, depth-1, pc)
		p.UnmakeMove(st)
	}
	return nodes
}

// PerftDivide returns a map from each pseudo-legal root move to the number of
// leaf nodes below it.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range p.GeneratePseudoMoves() {
		undo := p.Apply(m)
		out[m] = Perft(p, depth-1)
		undo()
	}
	return out
}
