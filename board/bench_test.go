package board_test

import (
	"testing"

	"qchess/board"
)

func benchGenerateMoves(b *testing.B, fen string) {
	p, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]board.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = p.GeneratePseudoMovesInto(buf)
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, board.StartFEN)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	benchGenerateMoves(b, kiwipeteFEN)
}

func BenchmarkGenerateMoves_Pos6(b *testing.B) {
	benchGenerateMoves(b, "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10")
}

func BenchmarkMakeUnmake_AllMoves_Kiwipete(b *testing.B) {
	p := board.MustParseFEN(kiwipeteFEN)
	moves := p.GeneratePseudoMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			st, err := p.MakeMove(m)
			if err != nil {
				b.Fatalf("cached move rejected: %v", err)
			}
			p.UnmakeMove(st)
		}
	}
}

func benchPerft(b *testing.B, fen string, depth int) {
	p, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(p, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.StartFEN, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipeteFEN, 3)
}

func BenchmarkParseFEN(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := board.ParseFEN(kiwipeteFEN); err != nil {
			b.Fatal(err)
		}
	}
}
