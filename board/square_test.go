package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareIndexBijection(t *testing.T) {
	seen := make(map[Square]bool)
	for i := 0; i < 64; i++ {
		sq, ok := SquareFromIndex(i)
		require.True(t, ok, "index %d", i)
		assert.Equal(t, i, sq.Index())
		assert.False(t, seen[sq], "square %v produced twice", sq)
		seen[sq] = true
	}
	for _, i := range []int{-1, 64, 100} {
		_, ok := SquareFromIndex(i)
		assert.False(t, ok, "index %d should be rejected", i)
	}
}

func TestSquareAlgebraicRoundTrip(t *testing.T) {
	for f := byte('a'); f <= 'h'; f++ {
		for r := byte('1'); r <= '8'; r++ {
			text := string([]byte{f, r})
			sq, err := ParseSquare(text)
			require.NoError(t, err, text)
			assert.Equal(t, text, sq.String())
		}
	}
	for _, bad := range []string{"", "a", "a0", "a9", "i1", "A1", "e44"} {
		_, err := ParseSquare(bad)
		assert.Error(t, err, "%q should not parse", bad)
	}
}

func TestSquareAtRejectsOutOfRange(t *testing.T) {
	sq, ok := SquareAt(Rank4, FileE)
	require.True(t, ok)
	assert.Equal(t, E4, sq)
	assert.Equal(t, Rank4, sq.Rank())
	assert.Equal(t, FileE, sq.File())

	for _, rf := range [][2]int{{-1, 0}, {8, 0}, {0, -1}, {0, 8}} {
		_, ok := SquareAt(Rank(rf[0]), File(rf[1]))
		assert.False(t, ok, "rank %d file %d", rf[0], rf[1])
	}
	// h4 + one file must not wrap onto a5
	_, ok = H4.Offset(0, 1)
	assert.False(t, ok)
}

func TestSideRelativeSteps(t *testing.T) {
	tests := []struct {
		name  string
		step  func(Square, Color) (Square, bool)
		color Color
		from  Square
		want  Square
	}{
		{"white up", Square.Up, White, E2, E3},
		{"black up", Square.Up, Black, E7, E6},
		{"white down", Square.Down, White, E2, E1},
		{"black down", Square.Down, Black, E7, E8},
		{"white left", Square.Left, White, E4, D4},
		{"black left", Square.Left, Black, E4, F4},
		{"white right", Square.Right, White, E4, F4},
		{"black right", Square.Right, Black, E4, D4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.step(tt.from, tt.color)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := E8.Up(White)
	assert.False(t, ok)
	_, ok = E1.Up(Black)
	assert.False(t, ok)
	_, ok = A4.Left(White)
	assert.False(t, ok)
	_, ok = A4.Right(Black)
	assert.False(t, ok)
}

func TestRelativeRank(t *testing.T) {
	assert.Equal(t, Rank2, E2.RelativeRank(White))
	assert.Equal(t, Rank2, E7.RelativeRank(Black))
	assert.Equal(t, Rank8, A1.RelativeRank(Black))
}

func TestColorOpposite(t *testing.T) {
	for _, c := range []Color{White, Black} {
		assert.NotEqual(t, c, c.Opposite())
		assert.Equal(t, c, c.Opposite().Opposite())
	}
}

func TestPieceEncoding(t *testing.T) {
	seen := make(map[Piece]bool)
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			pc := NewPiece(pt, c)
			assert.Equal(t, pt, pc.Type())
			assert.Equal(t, c, pc.Color())
			assert.False(t, pc.Empty())
			assert.Equal(t, pc, pieceFromChar(pc.Char()))
			assert.NotEqual(t, " ", pc.Glyph())
			seen[pc] = true
		}
	}
	assert.Len(t, seen, 12)
	assert.Equal(t, byte('N'), WhiteKnight.Char())
	assert.Equal(t, byte('q'), BlackQueen.Char())
	assert.Equal(t, "♚", BlackKing.Glyph())
	assert.True(t, NoPiece.Empty())
	assert.Equal(t, NoPiece, pieceFromChar('x'))
}

func TestMoveEncoding(t *testing.T) {
	for _, kind := range []MoveKind{Normal, DoublePush, EnPassant, Castle} {
		m := NewMove(E2, E4, kind)
		assert.Equal(t, E2, m.From())
		assert.Equal(t, E4, m.To())
		assert.Equal(t, kind, m.Kind())
		assert.Equal(t, NoPieceType, m.PromotionType())
		assert.Equal(t, "e2e4", m.String())
	}
	for _, pt := range PromotionTypes {
		m := NewPromotion(H7, H8, pt)
		assert.Equal(t, Promotion, m.Kind())
		assert.Equal(t, pt, m.PromotionType())
		assert.Equal(t, "h7h8"+string(pt.Letter()), m.String())
	}
	assert.Panics(t, func() { NewPromotion(H7, H8, King) })
	assert.Equal(t, "0000", NullMove.String())
	assert.Equal(t, EnPassant, NewPromotion(E5, D6, Queen).WithKind(EnPassant).Kind())
}
