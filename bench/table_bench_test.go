package bench

import (
	"io"
	"testing"

	eng "github.com/Oliverans/GooseEngineMG/goosemg"

	"knight-tables/attacks"
)

var sink attacks.Bitboard

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		t := attacks.Build()
		sink = t[27]
	}
}

func BenchmarkWrite(b *testing.B) {
	t := attacks.Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := attacks.Write(io.Discard, t, attacks.Options{}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAttackedBy_Table and BenchmarkAttackedBy_Goose answer the same
// question, "which squares does a knight on d4 attack", two ways.
func BenchmarkAttackedBy_Table(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var bb attacks.Bitboard
		for d := attacks.Square(0); d < attacks.NumSquares; d++ {
			if attacks.KnightAttacks[27].Has(d) {
				bb |= attacks.Bit(d)
			}
		}
		sink = bb
	}
}

func BenchmarkAttackedBy_Goose(b *testing.B) {
	board, err := eng.ParseFEN("8/8/8/8/3n4/8/8/8 w - - 0 1")
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var bb attacks.Bitboard
		for d := attacks.Square(0); d < attacks.NumSquares; d++ {
			if board.IsSquareAttacked(eng.Square(d), eng.Black) {
				bb |= attacks.Bit(d)
			}
		}
		sink = bb
	}
}
