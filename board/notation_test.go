package board_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qchess/board"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		text string
		want board.Move
	}{
		{"e2e4", board.NewMove(board.E2, board.E4, board.Normal)},
		{"g8f6", board.NewMove(board.G8, board.F6, board.Normal)},
		{"e7e8q", board.NewPromotion(board.E7, board.E8, board.Queen)},
		{"a2a1N", board.NewPromotion(board.A2, board.A1, board.Knight)},
		{"b7c8r", board.NewPromotion(board.B7, board.C8, board.Rook)},
		{"h7h8B", board.NewPromotion(board.H7, board.H8, board.Bishop)},
		{"0000", board.NullMove},
	}
	for _, tt := range tests {
		got, err := board.ParseMove(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, text := range []string{"", "e2", "e2e", "e2e4qq", "e9e4", "i2e4", "e2e4k", "e2e4p", "e2e4x", "a1a1", "e4e4", "h8h8q"} {
		_, err := board.ParseMove(text)
		require.Error(t, err, text)
		assert.True(t, errors.Is(err, board.ErrInvalidMove), text)
		assert.False(t, errors.Is(err, board.ErrInvalidFEN), text)
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	for _, text := range []string{"a1b1", "b1a1", "a1h8", "h8a1", "e7e8q", "a2a1n", "0000"} {
		m, err := board.ParseMove(text)
		require.NoError(t, err, text)
		assert.Equal(t, text, m.String())
	}
}

func TestClassifyMove(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
		want board.MoveKind
	}{
		{"double push", board.StartFEN, "e2e4", board.DoublePush},
		{"single push", board.StartFEN, "e2e3", board.Normal},
		{"knight", board.StartFEN, "g1f3", board.Normal},
		{"black double push", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "c7c5", board.DoublePush},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", "e5d6", board.EnPassant},
		{"pawn capture", "7k/8/8/8/8/2P1p3/3P4/7K w - - 0 1", "d2e3", board.Normal},
		{"castle kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", board.Castle},
		{"castle queenside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", board.Castle},
		{"king step", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1f1", board.Normal},
		{"promotion kept", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7b8n", board.Promotion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := board.MustParseFEN(tt.fen)
			m, err := p.ParseMoveFor(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Kind())
			assert.Equal(t, tt.text, m.String())
		})
	}
}

func TestClassifyMoveEmptySource(t *testing.T) {
	p := board.NewPosition()
	_, err := p.ParseMoveFor("e4e5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, board.ErrEmptySquare))

	_, err = p.ParseMoveFor("e2e")
	assert.True(t, errors.Is(err, board.ErrInvalidMove))
}

func TestParsedMovesApply(t *testing.T) {
	p := board.NewPosition()
	for _, text := range []string{"e2e4", "d7d5", "e4e5", "f7f5", "e5f6", "g8h6", "f6g7", "h6g8", "g7h8q"} {
		m, err := p.ParseMoveFor(text)
		require.NoError(t, err, text)
		_, err = p.MakeMove(m)
		require.NoError(t, err, text)
	}
	assert.Equal(t, "rnbqkbnQ/ppp1p2p/8/3p4/8/8/PPPP1PPP/RNBQKBNR b KQq - 0 5", p.FEN())
}
