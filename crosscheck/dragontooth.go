package crosscheck

import (
	"github.com/dylhunn/dragontoothmg"

	"knight-tables/attacks"
)

// Dragontooth checks t against dragontoothmg legal move generation. Each
// position holds a white knight on the source square and both kings parked
// where they neither block the knight nor touch each other. King squares
// come from knightReach, never from t.
func Dragontooth(t attacks.Table) error {
	m := mismatches{source: "dragontoothmg"}
	for s := attacks.Square(0); s < attacks.NumSquares; s++ {
		wk, bk := parkKings(s)
		board := dragontoothmg.ParseFen(fen(map[attacks.Square]byte{s: 'N', wk: 'K', bk: 'k'}))
		var want attacks.Bitboard
		for _, mv := range board.GenerateLegalMoves() {
			if attacks.Square(mv.From()) == s {
				want |= attacks.Bit(attacks.Square(mv.To()))
			}
		}
		if t[s] != want {
			m.add(s, t[s], want)
		}
	}
	return m.err()
}

// knightReach derives the knight's destinations from the offsets alone.
func knightReach(sq attacks.Square) attacks.Bitboard {
	var reach attacks.Bitboard
	for _, off := range attacks.Offsets {
		x, y := sq.File()+off.DX, sq.Rank()+off.DY
		if x >= 0 && x < attacks.NumFiles && y >= 0 && y < attacks.NumRanks {
			reach |= attacks.Bit(attacks.NewSquare(x, y))
		}
	}
	return reach
}

// parkKings picks the lowest squares for both kings outside the knight's
// square and reach, with the kings at least two files or ranks apart.
func parkKings(knight attacks.Square) (wk, bk attacks.Square) {
	blocked := knightReach(knight) | attacks.Bit(knight)
	for wk = 0; blocked.Has(wk); wk++ {
	}
	for bk = 0; bk < attacks.NumSquares; bk++ {
		if blocked.Has(bk) || adjacent(wk, bk) {
			continue
		}
		break
	}
	return wk, bk
}

func adjacent(a, b attacks.Square) bool {
	dx, dy := a.File()-b.File(), a.Rank()-b.Rank()
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}
