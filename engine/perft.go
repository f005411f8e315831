package engine

import (
	"sort"

	"golang.org/x/exp/maps"

	"qchess/board"
)

// DivideEntry is one root move of a perft divide.
type DivideEntry struct {
	Move  board.Move
	Nodes uint64
}

// Divide runs a perft divide on the game's position and returns the root
// moves sorted by their UCI text, along with the total node count.
func Divide(g *Game, depth int) ([]DivideEntry, uint64) {
	div := board.PerftDivide(g.Position(), depth)
	moves := maps.Keys(div)
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })

	out := make([]DivideEntry, 0, len(moves))
	var total uint64
	for _, m := range moves {
		out = append(out, DivideEntry{Move: m, Nodes: div[m]})
		total += div[m]
	}
	return out, total
}
