// Package engine holds the session layer above the board: a Game that keeps
// the undo history of a Position, and a Worker that owns a Game behind a
// command channel.
package engine

import (
	"fmt"

	"qchess/board"
)

const initialHistory = 32

// entry is one played move: the undo record and the key of the position the
// move was played from.
type entry struct {
	state board.MoveState
	hash  uint64
}

// Game wraps a Position with the LIFO stack of moves played on it.
type Game struct {
	pos     *board.Position
	history []entry
}

// NewGame starts a game from the standard initial position.
func NewGame() *Game {
	return NewGameFromPosition(board.NewPosition())
}

// NewGameFromFEN starts a game from FEN text.
func NewGameFromFEN(fen string) (*Game, error) {
	p, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewGameFromPosition(p), nil
}

// NewGameFromPosition takes ownership of p.
func NewGameFromPosition(p *board.Position) *Game {
	return &Game{pos: p, history: make([]entry, 0, initialHistory)}
}

// Position returns the live position. Moves must go through the Game so the
// history stays in step.
func (g *Game) Position() *board.Position { return g.pos }

// MakeMove applies m and records it for UndoMove.
func (g *Game) MakeMove(m board.Move) error {
	hash := g.pos.Hash()
	st, err := g.pos.MakeMove(m)
	if err != nil {
		return err
	}
	g.history = append(g.history, entry{state: st, hash: hash})
	return nil
}

// UndoMove takes back the last move. It reports false when nothing was played.
func (g *Game) UndoMove() (board.MoveState, bool) {
	if len(g.history) == 0 {
		return board.MoveState{}, false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.pos.UnmakeMove(last.state)
	return last.state, true
}

// PlayUCI parses move text, classifies it against the current position and
// plays it.
func (g *Game) PlayUCI(text string) error {
	m, err := g.pos.ParseMoveFor(text)
	if err != nil {
		return fmt.Errorf("move %q: %w", text, err)
	}
	if err := g.MakeMove(m); err != nil {
		return fmt.Errorf("move %q: %w", text, err)
	}
	return nil
}

// Ply is the number of moves played since the game was created.
func (g *Game) Ply() int { return len(g.history) }

// Moves returns the played moves, oldest first.
func (g *Game) Moves() []board.Move {
	out := make([]board.Move, len(g.history))
	for i, e := range g.history {
		out[i] = e.state.Move()
	}
	return out
}

func (g *Game) FEN() string { return g.pos.FEN() }

// Clone returns an independent copy, history included.
func (g *Game) Clone() *Game {
	h := make([]entry, len(g.history), max(cap(g.history), initialHistory))
	copy(h, g.history)
	return &Game{pos: g.pos.Clone(), history: h}
}

// RepetitionCount reports how many earlier positions of this game share the
// current Zobrist key. Only positions since the last capture or pawn move are
// scanned; nothing before them can repeat.
func (g *Game) RepetitionCount() int {
	hash := g.pos.Hash()
	start := len(g.history) - g.pos.HalfmoveClock()
	if start < 0 {
		start = 0
	}
	count := 0
	for i := start; i < len(g.history); i++ {
		if g.history[i].hash == hash {
			count++
		}
	}
	return count
}
