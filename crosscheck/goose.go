package crosscheck

import (
	"fmt"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"

	"knight-tables/attacks"
)

const emptyFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

// Goose checks t against goosemg attack detection: a lone black knight on
// each source square must attack exactly the squares its table entry lists.
func Goose(t attacks.Table) error {
	m := mismatches{source: "goosemg"}
	for s := attacks.Square(0); s < attacks.NumSquares; s++ {
		b, err := gm.ParseFEN(emptyFEN)
		if err != nil {
			return fmt.Errorf("goosemg: parse empty board: %w", err)
		}
		b.SetPiece(gm.Square(s), gm.BlackKnight)
		var want attacks.Bitboard
		for d := attacks.Square(0); d < attacks.NumSquares; d++ {
			if b.IsSquareAttacked(gm.Square(d), gm.Black) {
				want |= attacks.Bit(d)
			}
		}
		if t[s] != want {
			m.add(s, t[s], want)
		}
	}
	return m.err()
}
