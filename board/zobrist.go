package board

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [15][64]uint64 // indexed by piece code and square
var zobristCastle [16]uint64    // one key per castling rights state
var zobristEnPassant [8]uint64  // en passant file
var zobristSide uint64          // Black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed keeps hashes stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for pc := 0; pc < 15; pc++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[pc][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist calculates the Zobrist hash from scratch. MakeMove and
// UnmakeMove keep Hash() equal to this value incrementally.
func (p *Position) ComputeZobrist() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if pc := p.pieces[sq]; pc != NoPiece {
			key ^= zobristPiece[pc][sq]
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castlingRights]
	if p.epFile != NoFile {
		key ^= zobristEnPassant[p.epFile]
	}
	return key
}
